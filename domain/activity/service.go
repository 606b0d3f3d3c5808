package activity

import (
	"context"
)

// Feed exposes the retained activity items. The feed has no mutation API of
// its own; items are appended only as a side effect of employee and leave
// mutations.
type Feed interface {
	// Recent returns the retained items, newest first
	Recent(ctx context.Context) []ActivityItem
}
