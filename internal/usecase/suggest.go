package usecase

import (
	"sort"

	"github.com/schollz/closestmatch"

	"github.com/ngnetgroupmall/KDV-Kontrol-PRO-Sistemi-sub002/internal/domain"
	"github.com/ngnetgroupmall/KDV-Kontrol-PRO-Sistemi-sub002/internal/normalize"
)

// MatchSuggestion is one advisory Firma candidate for an unmatched SMMM
// account, ranked by the same blended score the matcher uses. No threshold
// applies: the list feeds the manual-match workflow, where a human decides.
type MatchSuggestion struct {
	Account domain.Account `json:"account"`
	Score   float64        `json:"score"`
}

// shortlistFactor widens the n-gram shortlist so bag-of-words misses still
// reach the exact rescoring step.
const shortlistFactor = 5

// SuggestMatches returns up to limit Firma candidates for one SMMM account.
// Large candidate sets are pre-filtered with an n-gram bag index before the
// exact blend is computed; small sets are rescored directly.
func (uc *ComparisonUseCase) SuggestMatches(smmm domain.Account, firmaAccounts []domain.Account, limit int) []MatchSuggestion {
	if limit <= 0 {
		return nil
	}
	firma := filterEligible(firmaAccounts)
	if len(firma) == 0 {
		return nil
	}

	candidates := firma
	if len(firma) > limit*shortlistFactor {
		candidates = shortlist(normalize.Name(smmm.Name), firma, limit*shortlistFactor)
	}

	suggestions := make([]MatchSuggestion, 0, len(candidates))
	for _, fa := range candidates {
		suggestions = append(suggestions, MatchSuggestion{
			Account: fa,
			Score:   domain.Round2(uc.scorer.Score(smmm.Name, fa.Name)) * 100,
		})
	}
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}

func shortlist(normalizedName string, firma []domain.Account, n int) []domain.Account {
	byName := make(map[string][]domain.Account, len(firma))
	names := make([]string, 0, len(firma))
	for _, fa := range firma {
		key := normalize.Name(fa.Name)
		if _, seen := byName[key]; !seen {
			names = append(names, key)
		}
		byName[key] = append(byName[key], fa)
	}

	cm := closestmatch.New(names, []int{2, 3})
	var out []domain.Account
	for _, name := range cm.ClosestN(normalizedName, n) {
		out = append(out, byName[name]...)
	}
	return out
}
