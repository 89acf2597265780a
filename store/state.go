package store

import "github.com/cgrworks/quotation-api/models"

// State is the whole application state tree. The store owns the only
// mutable copy; everything handed out or taken in is deep-copied, so a
// snapshot never aliases live state.
type State struct {
	Budgets          []models.Budget   `json:"budgets"`
	Clients          []models.Client   `json:"clients"`
	CurrentBudgetID  string            `json:"currentBudgetId,omitempty"`
	CurrentQuotation *models.Quotation `json:"currentQuotation,omitempty"`
}

// Clone returns a deep copy of the state.
func (st State) Clone() State {
	out := State{
		Budgets:         make([]models.Budget, len(st.Budgets)),
		Clients:         append([]models.Client{}, st.Clients...),
		CurrentBudgetID: st.CurrentBudgetID,
	}
	for i, b := range st.Budgets {
		out.Budgets[i] = b.Clone()
	}
	if st.CurrentQuotation != nil {
		q := *st.CurrentQuotation
		q.Sections = make([]models.QuotationSection, len(st.CurrentQuotation.Sections))
		for i, sec := range st.CurrentQuotation.Sections {
			sec.Images = append([]models.QuotationImage(nil), sec.Images...)
			sec.Annotations = append([]models.Annotation(nil), sec.Annotations...)
			q.Sections[i] = sec
		}
		out.CurrentQuotation = &q
	}
	return out
}

// DefaultState is the state a fresh workspace starts from. The seeded
// client ships with the product.
func DefaultState() State {
	return State{
		Budgets: []models.Budget{},
		Clients: []models.Client{
			{
				ID:            "1",
				CompanyName:   "Church of St Alphonsus (Novena Church)",
				ContactPerson: "Mr. Bernard",
				Email:         "operations@novenachurch.com",
				Phone:         "+65 6255 2133",
				Address:       "300 Thomson Rd, Singapore 307653",
			},
		},
	}
}
