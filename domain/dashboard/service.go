package dashboard

import (
	"context"

	"github.com/worknest-hr/workforce-go/domain/activity"
)

// DashboardService aggregates the derived views the admin dashboard renders.
type DashboardService interface {
	// Summary returns the headline counts
	Summary(ctx context.Context) (SummaryResponse, error)

	// RecentActivities returns the retained activity feed, newest first
	RecentActivities(ctx context.Context) []activity.ActivityItem
}
