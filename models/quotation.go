package models

import "time"

// QuotationStatus represents the lifecycle state of a quotation document.
type QuotationStatus string

const (
	QuotationStatusDraft   QuotationStatus = "draft"
	QuotationStatusPending QuotationStatus = "pending"
)

// QuotationClient is the denormalized client block printed on the document.
// It is a snapshot: later edits to the directory entry do not retroactively
// change a generated quotation.
type QuotationClient struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
}

// QuotationImage is a section photo in document form.
type QuotationImage struct {
	Src     string `json:"src"`
	Alt     string `json:"alt"`
	Overlay string `json:"overlay,omitempty"`
}

// QuotationSection is one billable row of the document: the whole section
// priced as a lump sum at its aggregate rate. Line-item detail survives only
// as descriptive sub-text, not as separate billable rows.
type QuotationSection struct {
	ID           string           `json:"id"`
	ItemNumber   int              `json:"itemNumber"`
	Name         string           `json:"name"`
	Description  string           `json:"description,omitempty"`
	Quantity     float64          `json:"quantity"`
	UOM          string           `json:"uom"`
	Rate         float64          `json:"rate"`
	Amount       float64          `json:"amount"`
	SectionTotal float64          `json:"sectionTotal"`
	Images       []QuotationImage `json:"images,omitempty"`
	Annotations  []Annotation     `json:"annotations,omitempty"`
}

// Quotation is the derived, read-mostly document model. It is regenerable
// at any time from its source budget and never hand-edited; id, number and
// createdAt may vary per generation, everything else is deterministic.
type Quotation struct {
	ID              string             `json:"id"`
	BudgetID        string             `json:"budgetId"`
	QuotationNumber string             `json:"quotationNumber"`
	Client          QuotationClient    `json:"client"`
	Project         Project            `json:"project"`
	Sections        []QuotationSection `json:"sections"`
	Totals          Totals             `json:"totals"`
	CreatedAt       time.Time          `json:"createdAt"`
	ValidityDays    int                `json:"validityDays"`
	Status          QuotationStatus    `json:"status"`
}
