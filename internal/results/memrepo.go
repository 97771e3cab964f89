package results

import (
	"context"
	"sort"
	"sync"
)

// memrepo is the in-memory repository used when no database is configured.
type memrepo struct {
	mu sync.RWMutex

	nextID   int64
	byGameID map[string]*Record
	all      []*Record
}

func NewMemoryRepository() Repository {
	return &memrepo{byGameID: make(map[string]*Record)}
}

func (m *memrepo) Close() error { return nil }

func (m *memrepo) Insert(ctx context.Context, rec *Record) (int64, error) {
	if rec == nil {
		return 0, ErrDuplicate
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byGameID[rec.GameID]; exists {
		return 0, ErrDuplicate
	}
	m.nextID++
	cp := *rec
	cp.ID = m.nextID
	cp.Moves = append([]string(nil), rec.Moves...)
	m.byGameID[cp.GameID] = &cp
	m.all = append(m.all, &cp)
	return cp.ID, nil
}

func (m *memrepo) RecentByPlayer(ctx context.Context, playerID string, limit int) ([]*Record, error) {
	if limit <= 0 {
		limit = 10
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	var items []*Record
	for _, rec := range m.all {
		if rec.WhiteID == playerID || rec.BlackID == playerID {
			cp := *rec
			cp.Moves = append([]string(nil), rec.Moves...)
			items = append(items, &cp)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].EndedAt.Equal(items[j].EndedAt) {
			return items[i].EndedAt.After(items[j].EndedAt)
		}
		return items[i].ID > items[j].ID
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}
