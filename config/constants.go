package config

// Fixed business constants. These are Singapore-market values the product
// was built around, not tunables.
const (
	// GSTRate is the Singapore Goods and Services Tax applied on subtotals.
	GSTRate = 0.07

	// QuotationValidityDays is how long a generated quotation stays valid.
	QuotationValidityDays = 15

	// QuotationPrefix starts every quotation number.
	QuotationPrefix = "CGR-QUO"

	// DefaultClientAbbr is used in quotation numbers when the client name
	// has no letters to abbreviate.
	DefaultClientAbbr = "CLT"
)

// ServiceTypes lists the trades offered by the budget form.
var ServiceTypes = []string{
	"Plumbing",
	"Painting",
	"Aluminum Works",
	"Granite & Stone Works",
	"General Repairs",
	"Multiple Services",
}

// LabourCategory is a labour tier with its base hourly rate.
type LabourCategory struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	BaseRate float64 `json:"baseRate"`
}

// LabourCategories lists the labour tiers offered by the budget form.
var LabourCategories = []LabourCategory{
	{ID: "master", Name: "Master Craftsman", BaseRate: 200},
	{ID: "skilled", Name: "Skilled Worker", BaseRate: 150},
	{ID: "helper", Name: "Helper", BaseRate: 100},
}

// MaterialCategories lists the material groupings offered by the budget form.
var MaterialCategories = []string{
	"Pipes & Fittings",
	"Paint & Coatings",
	"Aluminum Profiles",
	"Granite & Stone",
	"Hardware & Tools",
	"Safety Equipment",
	"Other Materials",
}

// UrgencyLevel is an urgency option with its display label. The surcharge
// is descriptive only; nothing multiplies it into the totals.
type UrgencyLevel struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// UrgencyLevels lists the urgency options offered by the budget form.
var UrgencyLevels = []UrgencyLevel{
	{ID: "normal", Label: "Normal"},
	{ID: "rush", Label: "Rush (+20%)"},
	{ID: "emergency", Label: "Emergency (+50%)"},
}

// UrgencyLabel returns the display label for an urgency level ID, or the
// ID itself when unknown.
func UrgencyLabel(id string) string {
	for _, lvl := range UrgencyLevels {
		if lvl.ID == id {
			return lvl.Label
		}
	}
	return id
}
