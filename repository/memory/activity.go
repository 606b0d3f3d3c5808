package memory

import (
	"context"

	"github.com/worknest-hr/workforce-go/domain/activity"
)

func (s *Store) Recent(ctx context.Context) []activity.ActivityItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]activity.ActivityItem, len(s.activities))
	copy(out, s.activities)
	return out
}

// appendActivityLocked prepends a feed entry and evicts past the retention
// cap. Callers must hold s.mu.
func (s *Store) appendActivityLocked(kind activity.ActivityType, description, employeeID string) {
	item := activity.ActivityItem{
		ID:          newID("act"),
		Type:        kind,
		Description: description,
		Timestamp:   s.now(),
		EmployeeID:  employeeID,
	}

	s.activities = append([]activity.ActivityItem{item}, s.activities...)
	if len(s.activities) > s.retention {
		s.activities = s.activities[:s.retention]
	}
}
