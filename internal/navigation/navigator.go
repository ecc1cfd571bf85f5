package navigation

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Hooks are called when the corresponding view is left
type Hooks struct {
	LeavePractice func(ctx context.Context)
	LeaveVideo    func(ctx context.Context)
	LeaveGame     func(ctx context.Context)
}

// Navigator tracks the active view
type Navigator struct {
	mu      sync.Mutex
	current View
	hooks   Hooks
	logger  *zap.Logger
}

// NewNavigator creates a navigator that starts at Home
func NewNavigator(hooks Hooks, logger *zap.Logger) *Navigator {
	return &Navigator{
		current: Home{},
		hooks:   hooks,
		logger:  logger,
	}
}

// Current returns the active view
func (n *Navigator) Current() View {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Navigate makes view the active view.
// The exit hook of the previous view runs unless the view does not change.
func (n *Navigator) Navigate(ctx context.Context, view View) View {
	n.mu.Lock()
	defer n.mu.Unlock()

	if view == nil || view == n.current {
		return n.current
	}

	n.leaveLocked(ctx)
	n.logger.Debug("navigated", zap.String("from", n.current.Name()), zap.String("to", view.Name()))
	n.current = view
	return n.current
}

// Reset leaves the active view and returns to Home
func (n *Navigator) Reset(ctx context.Context) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.leaveLocked(ctx)
	n.current = Home{}
}

func (n *Navigator) leaveLocked(ctx context.Context) {
	var hook func(ctx context.Context)

	switch n.current.(type) {
	case Practice:
		hook = n.hooks.LeavePractice
	case Video:
		hook = n.hooks.LeaveVideo
	case Game:
		hook = n.hooks.LeaveGame
	case Home, SelfCheck, Stats:
	default:
		n.logger.Warn("unknown view", zap.String("view", n.current.Name()))
	}

	if hook != nil {
		hook(ctx)
	}
}
