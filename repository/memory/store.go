// Package memory implements the workforce store: an in-memory aggregate of
// employees, leave requests and the derived activity feed. State lives for
// the process lifetime only; there is no persistence layer behind it.
package memory

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/worknest-hr/workforce-go/domain/activity"
	"github.com/worknest-hr/workforce-go/domain/employee"
	"github.com/worknest-hr/workforce-go/domain/leave"
)

// Store holds all three collections behind one mutex. Activity appends read
// the employee collection for descriptions, so every operation takes the
// same lock and sees a consistent snapshot.
type Store struct {
	mu sync.Mutex

	employees     []employee.Employee
	leaveRequests []leave.LeaveRequest
	activities    []activity.ActivityItem // newest first

	retention int
	now       func() time.Time
	rng       *rand.Rand
}

type Option func(*Store)

// WithRetention overrides how many activity items the feed keeps.
func WithRetention(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.retention = n
		}
	}
}

// WithClock overrides the timestamp source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithAvatarSeed fixes the randomness behind placeholder avatar colors so
// derivation is reproducible.
func WithAvatarSeed(seed int64) Option {
	return func(s *Store) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSeedData preloads the collections without generating activity entries.
// Activities are expected newest first, as the feed stores them.
func WithSeedData(employees []employee.Employee, requests []leave.LeaveRequest, activities []activity.ActivityItem) Option {
	return func(s *Store) {
		s.employees = append(s.employees, employees...)
		s.leaveRequests = append(s.leaveRequests, requests...)
		s.activities = append(s.activities, activities...)
	}
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		retention: activity.DefaultRetention,
		now:       time.Now,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	if len(s.activities) > s.retention {
		s.activities = s.activities[:s.retention]
	}
	return s
}

func newID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}

var (
	_ employee.EmployeeService = (*Store)(nil)
	_ leave.LeaveService       = (*Store)(nil)
	_ activity.Feed            = (*Store)(nil)
)
