package models

import (
	"strings"
	"time"
)

// BudgetType gates which line-item categories contribute to totals.
type BudgetType string

const (
	BudgetTypeFullService BudgetType = "full-service"
	BudgetTypeLabourTools BudgetType = "labour-tools"
	BudgetTypeLabourOnly  BudgetType = "labour-only"
)

// IncludesMaterials reports whether material items are billable under this type.
func (t BudgetType) IncludesMaterials() bool {
	return t == BudgetTypeFullService
}

// IncludesTools reports whether tool items are billable under this type.
func (t BudgetType) IncludesTools() bool {
	return t == BudgetTypeFullService || t == BudgetTypeLabourTools
}

// BudgetStatus represents the lifecycle state of a budget.
type BudgetStatus string

const (
	BudgetStatusDraft    BudgetStatus = "draft"
	BudgetStatusPending  BudgetStatus = "pending"
	BudgetStatusApproved BudgetStatus = "approved"
	BudgetStatusRejected BudgetStatus = "rejected"
)

// NewClientSentinel is the clientId value the front end sends while the
// client only exists as inline newClient data.
const NewClientSentinel = "new"

// LineItem is a single priced entry (material, tool or labour) inside a
// section. The amount is always derived from quantity and unit price,
// never stored.
type LineItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Unit        string  `json:"unit,omitempty"`
}

// Amount returns quantity * unitPrice.
func (li LineItem) Amount() float64 {
	return li.Quantity * li.UnitPrice
}

// SectionImage is a photo attached to a section. Budgets store url/name;
// quotations store src/alt. Both shapes are accepted on input.
type SectionImage struct {
	URL     string `json:"url,omitempty"`
	Name    string `json:"name,omitempty"`
	Src     string `json:"src,omitempty"`
	Alt     string `json:"alt,omitempty"`
	Overlay string `json:"overlay,omitempty"`
}

// AnnotationType distinguishes callout styles on a section.
type AnnotationType string

const (
	// AnnotationRed marks an unresolved question or flag.
	AnnotationRed AnnotationType = "red"
	// AnnotationBlue marks an informational note.
	AnnotationBlue AnnotationType = "blue"
)

// Annotation is a typed callout carried through to the quotation unchanged.
type Annotation struct {
	Type AnnotationType `json:"type"`
	Text string         `json:"text"`
}

// Section is a priced unit of work aggregating material, tool and labour
// line items into one billable row.
type Section struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Images      []SectionImage `json:"images,omitempty"`
	Materials   []LineItem     `json:"materials"`
	Tools       []LineItem     `json:"tools"`
	Labour      []LineItem     `json:"labour"`
	Annotations []Annotation   `json:"annotations,omitempty"`
}

var warrantyMarkers = []string{"warranty", "guarantee", "warrant"}

// IsWarranty reports whether the section is a warranty/guarantee clause.
// Matching is case-insensitive and substring based, so "5-Year Warranty"
// and "WARRANTY COVERAGE" both qualify.
func (s Section) IsWarranty() bool {
	name := strings.ToLower(s.Name)
	for _, marker := range warrantyMarkers {
		if strings.Contains(name, marker) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the section.
func (s Section) Clone() Section {
	out := s
	out.Images = append([]SectionImage(nil), s.Images...)
	out.Materials = append([]LineItem(nil), s.Materials...)
	out.Tools = append([]LineItem(nil), s.Tools...)
	out.Labour = append([]LineItem(nil), s.Labour...)
	out.Annotations = append([]Annotation(nil), s.Annotations...)
	return out
}

// Project holds the project metadata collected by the budget form.
type Project struct {
	ServiceType  string `json:"serviceType"`
	ProjectScale string `json:"projectScale,omitempty"`
	UrgencyLevel string `json:"urgencyLevel,omitempty"`
	StartDate    string `json:"startDate,omitempty"`
	Duration     string `json:"duration,omitempty"`
	Description  string `json:"description,omitempty"`
}

// Totals is the subtotal/GST/total block, rounded to two decimals at the
// reporting boundary.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	GST      float64 `json:"gst"`
	Total    float64 `json:"total"`
}

// Budget is the owning aggregate: sections and their line items belong to
// exactly one budget and are never shared.
type Budget struct {
	ID             string        `json:"id"`
	ClientID       string        `json:"clientId,omitempty"`
	NewClient      *InlineClient `json:"newClient,omitempty"`
	Project        Project       `json:"project"`
	BudgetType     BudgetType    `json:"budgetType"`
	Sections       []Section     `json:"sections"`
	Totals         Totals        `json:"totals"`
	Status         BudgetStatus  `json:"status"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
	ParentBudgetID string        `json:"parentBudgetId,omitempty"`
	RevisionNumber int           `json:"revisionNumber,omitempty"`
	IsRevision     bool          `json:"isRevision,omitempty"`
}

// Normalize fills defaults once at construction so readers never have to
// null-check: nil slices become empty, missing type/status fall back to
// full-service/draft.
func (b *Budget) Normalize() {
	if b.BudgetType == "" {
		b.BudgetType = BudgetTypeFullService
	}
	if b.Status == "" {
		b.Status = BudgetStatusDraft
	}
	if b.Sections == nil {
		b.Sections = []Section{}
	}
	for i := range b.Sections {
		sec := &b.Sections[i]
		if sec.Materials == nil {
			sec.Materials = []LineItem{}
		}
		if sec.Tools == nil {
			sec.Tools = []LineItem{}
		}
		if sec.Labour == nil {
			sec.Labour = []LineItem{}
		}
	}
}

// ClientRef returns the tagged view of the clientId/newClient union.
func (b Budget) ClientRef() ClientRef {
	if b.ClientID != "" && b.ClientID != NewClientSentinel {
		return ClientRef{Kind: ClientRefExisting, ID: b.ClientID}
	}
	if b.NewClient != nil && b.NewClient.CompanyName != "" {
		return ClientRef{Kind: ClientRefInline, Inline: b.NewClient}
	}
	return ClientRef{Kind: ClientRefNone}
}

// Clone returns a deep copy of the budget.
func (b Budget) Clone() Budget {
	out := b
	if b.NewClient != nil {
		nc := *b.NewClient
		out.NewClient = &nc
	}
	out.Sections = make([]Section, len(b.Sections))
	for i, sec := range b.Sections {
		out.Sections[i] = sec.Clone()
	}
	return out
}
