package usecase

import (
	"context"

	"github.com/ngnetgroupmall/KDV-Kontrol-PRO-Sistemi-sub002/internal/domain"
)

// StateRepository persists reconciliation workspace state. The usecase layer
// depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go StateRepository
type StateRepository interface {
	// LoadState returns the stored state for a workspace, or an empty state
	// when the workspace does not exist yet.
	LoadState(ctx context.Context, workspaceID string) (*domain.WorkspaceState, error)
	// SaveState stores the whole workspace state.
	SaveState(ctx context.Context, workspaceID string, state *domain.WorkspaceState) error
	// SaveRowReviews replaces only the row-review map of a workspace.
	SaveRowReviews(ctx context.Context, workspaceID string, reviews map[string]domain.ReviewEntry) error
	// SaveManualMatches replaces only the manual-match map of a workspace.
	SaveManualMatches(ctx context.Context, workspaceID string, matches map[string]string) error
}
