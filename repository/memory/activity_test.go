package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worknest-hr/workforce-go/domain/activity"
	"github.com/worknest-hr/workforce-go/domain/employee"
)

// ===== ACTIVITY FEED TESTS =====

func TestStore_RecentOnSeedData(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := seededStore()

	recent := store.Recent(ctx)

	require.Len(t, recent, 3)
	assert.Equal(t, "Added new employee: David Rodriguez", recent[0].Description)
	assert.Equal(t, "Approved leave request for Michael Chen", recent[1].Description)
	assert.Equal(t, "Updated details for Emily Johnson", recent[2].Description)
}

func TestStore_FeedBoundedNewestFirst(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewStore()

	for i := 1; i <= 15; i++ {
		_, err := store.AddEmployee(ctx, employee.CreateEmployeeRequest{
			Name:       fmt.Sprintf("Employee %d", i),
			Email:      fmt.Sprintf("employee%d@worknest.com", i),
			Department: "Engineering",
			Position:   "Developer",
			Status:     employee.StatusActive,
		})
		require.NoError(t, err)
	}

	recent := store.Recent(ctx)

	require.Len(t, recent, activity.DefaultRetention)
	for i, item := range recent {
		want := fmt.Sprintf("Added new employee: Employee %d", 15-i)
		assert.Equal(t, want, item.Description)
		assert.Equal(t, activity.TypeEmployeeAdded, item.Type)
	}
}

func TestStore_RetentionOverride(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewStore(WithRetention(3))

	for i := 1; i <= 5; i++ {
		_, err := store.AddEmployee(ctx, employee.CreateEmployeeRequest{
			Name:       fmt.Sprintf("Employee %d", i),
			Email:      fmt.Sprintf("employee%d@worknest.com", i),
			Department: "Design",
			Position:   "Designer",
			Status:     employee.StatusActive,
		})
		require.NoError(t, err)
	}

	recent := store.Recent(ctx)

	require.Len(t, recent, 3)
	assert.Equal(t, "Added new employee: Employee 5", recent[0].Description)
	assert.Equal(t, "Added new employee: Employee 3", recent[2].Description)
}

func TestStore_RecentReturnsSnapshot(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := seededStore()

	recent := store.Recent(ctx)
	require.NotEmpty(t, recent)
	recent[0].Description = "mutated by caller"

	fresh := store.Recent(ctx)
	assert.Equal(t, "Added new employee: David Rodriguez", fresh[0].Description)
}

func TestStore_ActivityIDsAreDistinct(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewStore()

	for i := 0; i < 8; i++ {
		_, err := store.AddEmployee(ctx, employee.CreateEmployeeRequest{
			Name:       fmt.Sprintf("Employee %d", i),
			Email:      fmt.Sprintf("employee%d@worknest.com", i),
			Department: "HR",
			Position:   "Recruiter",
			Status:     employee.StatusActive,
		})
		require.NoError(t, err)
	}

	seen := make(map[string]struct{})
	for _, item := range store.Recent(ctx) {
		_, dup := seen[item.ID]
		require.False(t, dup, "duplicate activity id %q", item.ID)
		seen[item.ID] = struct{}{}
	}
}
