package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// SnapshotKey is the fixed key the state blob lives under. It matches the
// localStorage key the front end used before the backend existed.
const SnapshotKey = "budgetAppData"

// Persister saves and restores the state snapshot. Saves are full
// overwrites, last write wins; there is no merge and no schema version.
type Persister interface {
	Save(st State) error
	Load() (State, bool, error)
}

func marshalSnapshot(st State) ([]byte, error) {
	doc := struct {
		Budgets interface{} `json:"budgets"`
		Clients interface{} `json:"clients"`
	}{Budgets: st.Budgets, Clients: st.Clients}
	return json.Marshal(doc)
}

func unmarshalSnapshot(data []byte) (State, error) {
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return State{}, err
	}
	st.CurrentBudgetID = ""
	st.CurrentQuotation = nil
	return st, nil
}

// PostgresPersister keeps the snapshot in a single JSONB row under
// SnapshotKey, bumping a version counter on every overwrite.
type PostgresPersister struct {
	DB *sql.DB
}

func NewPostgresPersister(db *sql.DB) *PostgresPersister {
	return &PostgresPersister{DB: db}
}

func (p *PostgresPersister) Save(st State) error {
	data, err := marshalSnapshot(st)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	_, err = p.DB.Exec(`
		INSERT INTO app_state (key, data, version, updated_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (key)
		DO UPDATE SET data = $2, version = app_state.version + 1, updated_at = NOW()
	`, SnapshotKey, data)

	if err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}

func (p *PostgresPersister) Load() (State, bool, error) {
	var data []byte
	err := p.DB.QueryRow(`SELECT data FROM app_state WHERE key = $1`, SnapshotKey).Scan(&data)
	if err == sql.ErrNoRows {
		return State{}, false, nil
	}
	if err != nil {
		return State{}, false, fmt.Errorf("failed to load state: %w", err)
	}

	st, err := unmarshalSnapshot(data)
	if err != nil {
		return State{}, false, fmt.Errorf("failed to unmarshal state: %w", err)
	}
	return st, true, nil
}

// MemoryPersister is the in-process Persister used by tests.
type MemoryPersister struct {
	data  []byte
	Saves int
}

func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{}
}

func (p *MemoryPersister) Save(st State) error {
	data, err := marshalSnapshot(st)
	if err != nil {
		return err
	}
	p.data = data
	p.Saves++
	return nil
}

func (p *MemoryPersister) Load() (State, bool, error) {
	if p.data == nil {
		return State{}, false, nil
	}
	st, err := unmarshalSnapshot(p.data)
	if err != nil {
		return State{}, false, err
	}
	return st, true, nil
}
