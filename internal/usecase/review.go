package usecase

import (
	"strings"
	"time"

	"github.com/ngnetgroupmall/KDV-Kontrol-PRO-Sistemi-sub002/internal/domain"
)

// ReviewOverlay merges user review patches into a row-review map. The merge
// is pure: it never mutates the base map, and a key whose merged state is
// corrected=false with an empty note is pruned so that absence stays the one
// and only representation of "unreviewed".
type ReviewOverlay struct {
	// Now stamps UpdatedAt on surviving entries. Overridable in tests.
	Now func() time.Time
}

// NewReviewOverlay returns an overlay using the wall clock.
func NewReviewOverlay() *ReviewOverlay {
	return &ReviewOverlay{Now: time.Now}
}

// Apply merges a single patch and returns the new map.
func (o *ReviewOverlay) Apply(base map[string]domain.ReviewEntry, key string, patch domain.ReviewPatch) map[string]domain.ReviewEntry {
	return o.ApplyBulk(base, []domain.KeyedReviewPatch{{Key: key, Patch: patch}})
}

// ApplyBulk merges patches in the given order. Every patch reads from the
// shared base snapshot, not from the output of earlier patches, so when two
// patches target the same key the later one wins outright.
func (o *ReviewOverlay) ApplyBulk(base map[string]domain.ReviewEntry, patches []domain.KeyedReviewPatch) map[string]domain.ReviewEntry {
	merged := make(map[string]domain.ReviewEntry, len(base)+len(patches))
	for k, v := range base {
		merged[k] = v
	}
	for _, p := range patches {
		existing := base[p.Key]

		corrected := existing.Corrected
		if p.Patch.Corrected != nil {
			corrected = *p.Patch.Corrected
		}
		note := existing.Note
		if p.Patch.Note != nil {
			note = *p.Patch.Note
		}
		note = strings.TrimSpace(note)

		if !corrected && note == "" {
			delete(merged, p.Key)
			continue
		}
		merged[p.Key] = domain.ReviewEntry{
			Corrected: corrected,
			Note:      note,
			UpdatedAt: o.Now().UTC().Format(time.RFC3339),
		}
	}
	return merged
}
