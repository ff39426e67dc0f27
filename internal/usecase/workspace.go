package usecase

import (
	"context"
	"fmt"

	"github.com/ngnetgroupmall/KDV-Kontrol-PRO-Sistemi-sub002/internal/domain"
)

// WorkspaceUseCase applies review and manual-match updates against the
// persisted workspace state. Each call merges in memory first and persists
// the merged view in one store operation: on a storage failure nothing is
// returned, so the in-memory and persisted views never diverge. Retrying is
// the caller's business.
type WorkspaceUseCase struct {
	repo    StateRepository
	overlay *ReviewOverlay
}

// NewWorkspaceUseCase creates a workspace usecase over the given store.
func NewWorkspaceUseCase(repo StateRepository) *WorkspaceUseCase {
	return &WorkspaceUseCase{repo: repo, overlay: NewReviewOverlay()}
}

// ApplyReviewPatches merges the patches into the stored row reviews and
// returns the merged map after it has been persisted.
func (uc *WorkspaceUseCase) ApplyReviewPatches(ctx context.Context, workspaceID string, patches []domain.KeyedReviewPatch) (map[string]domain.ReviewEntry, error) {
	state, err := uc.repo.LoadState(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("could not load workspace %s: %w", workspaceID, err)
	}
	merged := uc.overlay.ApplyBulk(state.RowReviews, patches)
	if err := uc.repo.SaveRowReviews(ctx, workspaceID, merged); err != nil {
		return nil, fmt.Errorf("could not save row reviews for workspace %s: %w", workspaceID, err)
	}
	return merged, nil
}

// SetManualMatch declares that an SMMM account corresponds to a Firma
// account, replacing any previous declaration for that SMMM code. The target
// need not exist in the current upload; the next comparison run will surface
// an unresolvable target as an annotated unmatched result rather than an
// error.
func (uc *WorkspaceUseCase) SetManualMatch(ctx context.Context, workspaceID, smmmCode, firmaCode string) (map[string]string, error) {
	if smmmCode == "" {
		return nil, fmt.Errorf("smmm account code is required")
	}
	state, err := uc.repo.LoadState(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("could not load workspace %s: %w", workspaceID, err)
	}
	matches := make(map[string]string, len(state.ManualMatches)+1)
	for k, v := range state.ManualMatches {
		matches[k] = v
	}
	if firmaCode == "" {
		delete(matches, smmmCode)
	} else {
		matches[smmmCode] = firmaCode
	}
	if err := uc.repo.SaveManualMatches(ctx, workspaceID, matches); err != nil {
		return nil, fmt.Errorf("could not save manual matches for workspace %s: %w", workspaceID, err)
	}
	return matches, nil
}

// RemoveManualMatch drops the declaration for an SMMM code.
func (uc *WorkspaceUseCase) RemoveManualMatch(ctx context.Context, workspaceID, smmmCode string) (map[string]string, error) {
	return uc.SetManualMatch(ctx, workspaceID, smmmCode, "")
}
