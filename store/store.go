package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cgrworks/quotation-api/config"
	"github.com/cgrworks/quotation-api/models"
	"github.com/cgrworks/quotation-api/services"
)

// Store owns the application state tree. Every mutation is a pure
// transition from the previous state to a fresh one, followed by a
// snapshot save through the persister. Reads hand out deep copies.
type Store struct {
	mu        sync.RWMutex
	state     State
	persister Persister
}

// New builds a store seeded with DefaultState, then overlays whatever the
// persister has — the load happens once, here.
func New(p Persister) (*Store, error) {
	s := &Store{state: DefaultState(), persister: p}

	st, found, err := p.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to restore state: %w", err)
	}
	if found {
		if st.Budgets == nil {
			st.Budgets = []models.Budget{}
		}
		if st.Clients == nil {
			st.Clients = []models.Client{}
		}
		s.state = st
	}
	return s, nil
}

// commit swaps in the new state and mirrors it to the persister. The new
// state stays applied even when the save fails: the snapshot is a full
// overwrite, so the next successful commit repairs storage.
func (s *Store) commit(next State) error {
	s.state = next
	if err := s.persister.Save(next); err != nil {
		config.LogError("store", "commit", "snapshot save", err)
		return err
	}
	return nil
}

// AddClient registers a client and returns its generated ID.
func (s *Store) AddClient(client models.Client) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if client.ID == "" {
		client.ID = uuid.New().String()
	}
	next := s.state.Clone()
	next.Clients = append(next.Clients, client)
	return client.ID, s.commit(next)
}

// UpdateClient replaces the directory entry with the same ID. Unknown IDs
// are a no-op, as in the reducer this mirrors.
func (s *Store) UpdateClient(client models.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	for i := range next.Clients {
		if next.Clients[i].ID == client.ID {
			next.Clients[i] = client
		}
	}
	return s.commit(next)
}

// DeleteClient removes a client unconditionally. Referential integrity
// (budgets still pointing at the client) is the caller's check, not the
// store's.
func (s *Store) DeleteClient(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	clients := next.Clients[:0]
	for _, c := range next.Clients {
		if c.ID != id {
			clients = append(clients, c)
		}
	}
	next.Clients = clients
	return s.commit(next)
}

// AddBudget commits a budget draft and returns its generated ID. The totals
// block is always recomputed from the sections here; whatever the caller
// sent is discarded. When the draft carries inline new-client data, the
// client is registered and the budget rewritten to reference it in the same
// transition — a budget is never persisted holding unregistered client data.
func (s *Store) AddBudget(budget models.Budget) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	budget = budget.Clone()
	if budget.ID == "" {
		budget.ID = uuid.New().String()
	}
	budget.CreatedAt = now
	budget.UpdatedAt = now
	budget.Status = models.BudgetStatusDraft
	budget.Normalize()
	budget.Totals = services.ProjectTotals(budget.Sections, budget.BudgetType)

	next := s.state.Clone()
	if budget.NewClient != nil && budget.NewClient.CompanyName != "" {
		client := budget.NewClient.ToClient(uuid.New().String())
		next.Clients = append(next.Clients, client)
		budget.ClientID = client.ID
		budget.NewClient = nil
	}
	next.Budgets = append(next.Budgets, budget)
	return budget.ID, s.commit(next)
}

// UpdateBudget replaces the budget with the same ID, stamping updatedAt and
// recomputing the totals block from the sections.
func (s *Store) UpdateBudget(budget models.Budget) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	budget = budget.Clone()
	budget.UpdatedAt = time.Now()
	budget.Normalize()
	budget.Totals = services.ProjectTotals(budget.Sections, budget.BudgetType)

	next := s.state.Clone()
	for i := range next.Budgets {
		if next.Budgets[i].ID == budget.ID {
			if budget.CreatedAt.IsZero() {
				budget.CreatedAt = next.Budgets[i].CreatedAt
			}
			next.Budgets[i] = budget
		}
	}
	return s.commit(next)
}

// DeleteBudget removes a budget by ID.
func (s *Store) DeleteBudget(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	budgets := next.Budgets[:0]
	for _, b := range next.Budgets {
		if b.ID != id {
			budgets = append(budgets, b)
		}
	}
	next.Budgets = budgets
	return s.commit(next)
}

// CreateRevision branches a new draft revision off the budget with the
// given ID and returns the revision's ID. The original is left untouched.
func (s *Store) CreateRevision(originalID string, draft *models.Budget) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var original *models.Budget
	for i := range s.state.Budgets {
		if s.state.Budgets[i].ID == originalID {
			original = &s.state.Budgets[i]
			break
		}
	}
	if original == nil {
		return "", fmt.Errorf("budget %s not found", originalID)
	}

	rev := services.NewRevision(*original, draft)
	next := s.state.Clone()
	next.Budgets = append(next.Budgets, rev)
	return rev.ID, s.commit(next)
}

// SetCurrentBudget records the working-selection pointer. Selections are
// session state and are not persisted.
func (s *Store) SetCurrentBudget(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CurrentBudgetID = id
}

// SetCurrentQuotation records the last generated quotation.
func (s *Store) SetCurrentQuotation(q *models.Quotation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state.Clone()
	next.CurrentQuotation = q
	s.state = next
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Restore replaces the whole state tree and persists it.
func (s *Store) Restore(st State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(st.Clone())
}

// GetBudget looks up a budget by ID.
func (s *Store) GetBudget(id string) (models.Budget, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.state.Budgets {
		if b.ID == id {
			return b.Clone(), true
		}
	}
	return models.Budget{}, false
}

// GetClient looks up a client by ID.
func (s *Store) GetClient(id string) (models.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.state.Clients {
		if c.ID == id {
			return c, true
		}
	}
	return models.Client{}, false
}

// ClientInUse reports whether any budget references the client. Handlers
// use it to refuse deletes that would orphan budgets.
func (s *Store) ClientInUse(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.state.Budgets {
		if b.ClientID == id {
			return true
		}
	}
	return false
}
