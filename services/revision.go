package services

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/cgrworks/quotation-api/models"
)

// LineageID resolves the identifier shared by a budget and all its
// revisions: the parent budget's ID, or the budget's own ID when it has
// no parent.
func LineageID(budget models.Budget) string {
	if budget.ParentBudgetID != "" {
		return budget.ParentBudgetID
	}
	return budget.ID
}

// RevisionHistory returns the complete history of the budget's lineage,
// newest first: the original plus every budget branched from it.
func RevisionHistory(budget models.Budget, all []models.Budget) []models.Budget {
	parentID := LineageID(budget)
	history := []models.Budget{}
	for _, b := range all {
		if b.ID == parentID || b.ParentBudgetID == parentID {
			history = append(history, b)
		}
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].CreatedAt.After(history[j].CreatedAt)
	})
	return history
}

// LatestRevision returns the most recent budget in the lineage. The second
// return value is false when the lineage is empty (the budget itself is
// not part of the given collection).
func LatestRevision(budget models.Budget, all []models.Budget) (models.Budget, bool) {
	history := RevisionHistory(budget, all)
	if len(history) == 0 {
		return models.Budget{}, false
	}
	return history[0], true
}

// NewRevision branches a draft revision off the original budget. Content
// comes from draft when given, otherwise it is a deep copy of the
// original. The revision number is the original's number plus one — two
// revisions branched independently from the same parent can therefore
// share a number. The original is never mutated.
func NewRevision(original models.Budget, draft *models.Budget) models.Budget {
	var rev models.Budget
	if draft != nil {
		rev = draft.Clone()
	} else {
		rev = original.Clone()
	}

	if rev.ClientID == "" && rev.NewClient == nil {
		rev.ClientID = original.ClientID
	}

	base := 1
	if original.RevisionNumber > 0 {
		base = original.RevisionNumber
	}

	now := time.Now()
	rev.ID = uuid.New().String()
	rev.ParentBudgetID = LineageID(original)
	rev.RevisionNumber = base + 1
	rev.Status = models.BudgetStatusDraft
	rev.IsRevision = true
	rev.CreatedAt = now
	rev.UpdatedAt = now
	rev.Normalize()
	return rev
}
