package tui

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"

	"github.com/adrg/xdg"
)

// DefaultMirrorPath 는 로컬 북마크 미러 파일 위치다.
func DefaultMirrorPath() string {
	return filepath.Join(xdg.DataHome, "tech-pulse", "bookmarks.json")
}

// bookmarkMirror 는 북마크된 기사 id 의 로컬 사본이다. 표시용일 뿐이고 서버가 기준이다.
type bookmarkMirror struct {
	path string
	ids  map[string]struct{}
}

// loadMirror 는 path 의 미러를 읽는다. 파일이 없으면 빈 미러를 반환한다.
func loadMirror(path string) (*bookmarkMirror, error) {
	m := &bookmarkMirror{path: path, ids: map[string]struct{}{}}
	if path == "" {
		return m, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return m, nil
	}
	if err != nil {
		return m, err
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return m, err
	}
	for _, id := range ids {
		m.ids[id] = struct{}{}
	}
	return m, nil
}

func (m *bookmarkMirror) Has(id string) bool {
	_, ok := m.ids[id]
	return ok
}

func (m *bookmarkMirror) Set(id string, bookmarked bool) error {
	if bookmarked {
		m.ids[id] = struct{}{}
	} else {
		delete(m.ids, id)
	}
	return m.save()
}

// Replace 는 서버 목록으로 미러 전체를 덮어쓴다.
func (m *bookmarkMirror) Replace(ids []string) error {
	m.ids = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		m.ids[id] = struct{}{}
	}
	return m.save()
}

func (m *bookmarkMirror) IDs() []string {
	ids := make([]string, 0, len(m.ids))
	for id := range m.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (m *bookmarkMirror) save() error {
	if m.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(m.IDs())
	if err != nil {
		return err
	}
	tmp := m.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, m.path)
}
