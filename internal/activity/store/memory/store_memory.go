// Package memory provides the in-memory audit store used by tests and by
// deployments that delegate durable persistence to an outer layer.
package memory

import (
	"context"
	"sort"
	"sync"

	"adms/internal/activity/models"
	id "adms/pkg/domain"
)

type InMemoryStore struct {
	mu   sync.RWMutex
	rows map[id.SubjectRef][]models.Association
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{rows: make(map[id.SubjectRef][]models.Association)}
}

func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = make(map[id.SubjectRef][]models.Association)
}

// Append stores one association under its subject. Duplicates (same
// composite key) are dropped so re-recorded activities do not inflate the
// trail.
func (s *InMemoryStore) Append(_ context.Context, a models.Association) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.rows[a.Subject()] {
		if existing.Equal(a) {
			return nil
		}
	}
	s.rows[a.Subject()] = append(s.rows[a.Subject()], a)
	return nil
}

// ListBySubject returns the subject's associations in chronological order.
func (s *InMemoryStore) ListBySubject(_ context.Context, subject id.SubjectRef) ([]models.Association, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := append([]models.Association(nil), s.rows[subject]...)
	sortChronological(out)
	return out, nil
}

// ListAll returns every association across all subjects, chronologically.
func (s *InMemoryStore) ListAll(_ context.Context) ([]models.Association, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Association
	for _, rows := range s.rows {
		out = append(out, rows...)
	}
	sortChronological(out)
	return out, nil
}

func sortChronological(rows []models.Association) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Compare(rows[j]) < 0
	})
}
