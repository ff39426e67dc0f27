package domain

import "encoding/json"

// WorkspaceState is the persisted shape one reconciliation workspace is
// stored under. The engine reads SmmmData/FirmaData, ManualMatches and
// RowReviews and writes back only the latter two; the full/raw uploads and
// column mappings belong to the uploader and pass through untouched.
type WorkspaceState struct {
	SmmmData      []Account              `json:"smmmData"`
	FirmaData     []Account              `json:"firmaData"`
	SmmmFullData  json.RawMessage        `json:"smmmFullData,omitempty"`
	FirmaFullData json.RawMessage        `json:"firmaFullData,omitempty"`
	Mappings      json.RawMessage        `json:"mappings,omitempty"`
	ManualMatches map[string]string      `json:"manualMatches"`
	RowReviews    map[string]ReviewEntry `json:"rowReviews"`
}

// NewWorkspaceState returns an empty state with its maps initialized.
func NewWorkspaceState() *WorkspaceState {
	return &WorkspaceState{
		ManualMatches: make(map[string]string),
		RowReviews:    make(map[string]ReviewEntry),
	}
}
