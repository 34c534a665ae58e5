package cooldown

import (
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

const DefaultCapacity = 1024

// Tracker 는 (category, search) 키별 마지막 외부 호출 시각을 기억한다.
// 용량을 넘으면 가장 오래 사용되지 않은 키부터 제거되어 메모리가 무한히 늘지 않는다.
// 제거된 키는 "한 번도 호출한 적 없음" 으로 취급된다.
type Tracker struct {
	cache *lru.Cache[string, time.Time]
}

func NewTracker(capacity int) *Tracker {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c, err := lru.New[string, time.Time](capacity)
	if err != nil {
		// lru.New only fails for a non-positive size
		panic(err)
	}
	return &Tracker{cache: c}
}

// Key 는 카테고리와 검색어를 정규화한 캐시 키를 만든다.
func Key(category, search string) string {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		category = "all"
	}
	return category + "_" + strings.ToLower(strings.TrimSpace(search))
}

// LastFetch 는 key 의 마지막 호출 시각과 존재 여부를 반환한다.
func (t *Tracker) LastFetch(key string) (time.Time, bool) {
	return t.cache.Get(key)
}

// Since 는 마지막 호출 이후 경과 시간을 반환한다. 기록이 없으면 ok 가 false 다.
func (t *Tracker) Since(key string, now time.Time) (time.Duration, bool) {
	last, ok := t.cache.Get(key)
	if !ok {
		return 0, false
	}
	return now.Sub(last), true
}

// Record 는 key 의 호출 시각을 at 으로 기록한다.
func (t *Tracker) Record(key string, at time.Time) {
	t.cache.Add(key, at)
}

func (t *Tracker) Len() int { return t.cache.Len() }
