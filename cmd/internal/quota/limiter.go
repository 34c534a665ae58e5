package quota

import (
	"context"
	"sync"
	"time"
)

// Limiter 는 LLM 호출에 분당 간격과 일일 상한을 적용한다.
// 프로세스 하나 기준의 인메모리 카운터라 재시작하면 초기화된다.
type Limiter struct {
	mu sync.Mutex

	dailyLimit int
	usedToday  int
	dayKey     string

	interval time.Duration
	lastCall time.Time

	now func() time.Time
}

// New 는 limiter 를 만든다. 0 이하의 값은 해당 방향의 제한을 두지 않는다.
func New(requestsPerMinute, requestsPerDay int) *Limiter {
	var interval time.Duration
	if requestsPerMinute > 0 {
		interval = time.Minute / time.Duration(requestsPerMinute)
	}
	return &Limiter{
		dailyLimit: max(0, requestsPerDay),
		interval:   interval,
		now:        time.Now,
	}
}

// Reserve 는 다음 호출 슬롯을 예약한다.
// 일일 상한을 다 쓰면 (false, nil) 이고 호출자는 LLM 호출을 건너뛴다.
// 간격이 남아 있으면 기다리며, 그 사이 ctx 가 끝나면 (false, ctx.Err()) 를 반환한다.
func (l *Limiter) Reserve(ctx context.Context) (bool, error) {
	for {
		l.mu.Lock()
		now := l.now().UTC()
		if day := now.Format("2006-01-02"); l.dayKey != day {
			l.dayKey = day
			l.usedToday = 0
		}
		if l.dailyLimit > 0 && l.usedToday >= l.dailyLimit {
			l.mu.Unlock()
			return false, nil
		}

		var delay time.Duration
		if l.interval > 0 && !l.lastCall.IsZero() {
			delay = l.lastCall.Add(l.interval).Sub(now)
		}
		if delay <= 0 {
			l.usedToday++
			l.lastCall = now
			l.mu.Unlock()
			return true, nil
		}
		l.mu.Unlock()

		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return false, ctx.Err()
		}
	}
}

// Remaining 은 오늘 남은 호출 수다. 일일 상한이 없으면 -1.
func (l *Limiter) Remaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.dailyLimit == 0 {
		return -1
	}
	if l.dayKey != l.now().UTC().Format("2006-01-02") {
		return l.dailyLimit
	}
	return l.dailyLimit - l.usedToday
}
