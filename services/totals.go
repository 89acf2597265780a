package services

import (
	"github.com/shopspring/decimal"

	"github.com/cgrworks/quotation-api/config"
	"github.com/cgrworks/quotation-api/models"
)

var gstRate = decimal.NewFromFloat(config.GSTRate)

// LinePrice is the minimal shape the totals calculator needs.
type LinePrice struct {
	Quantity  float64
	UnitPrice float64
}

// CalculateTotals sums quantity*unitPrice over the given lines and applies
// GST. Accumulation happens at full precision; rounding to two decimals
// happens once, on the returned values. Negative or zero inputs pass
// through as-is.
func CalculateTotals(items []LinePrice) models.Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Quantity).Mul(decimal.NewFromFloat(item.UnitPrice))
		subtotal = subtotal.Add(line)
	}
	return totalsFromSubtotal(subtotal)
}

func totalsFromSubtotal(subtotal decimal.Decimal) models.Totals {
	gst := subtotal.Mul(gstRate)
	total := subtotal.Add(gst)
	return models.Totals{
		Subtotal: round2(subtotal),
		GST:      round2(gst),
		Total:    round2(total),
	}
}

func round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

// sectionSubtotal sums the section's billable line items at full precision.
// Which categories count is gated by the budget type: labour always,
// tools for labour-tools and full-service, materials for full-service only.
func sectionSubtotal(section models.Section, budgetType models.BudgetType) decimal.Decimal {
	sum := decimal.Zero
	add := func(items []models.LineItem) {
		for _, item := range items {
			sum = sum.Add(decimal.NewFromFloat(item.Quantity).Mul(decimal.NewFromFloat(item.UnitPrice)))
		}
	}
	if budgetType.IncludesMaterials() {
		add(section.Materials)
	}
	if budgetType.IncludesTools() {
		add(section.Tools)
	}
	add(section.Labour)
	return sum
}

// SectionTotal returns the section's billable total under the given budget
// type. The value is exact (not rounded to cents) so that summing section
// totals reproduces the project subtotal without drift.
func SectionTotal(section models.Section, budgetType models.BudgetType) float64 {
	f, _ := sectionSubtotal(section, budgetType).Float64()
	return f
}

// ProjectTotals computes the budget-level totals block as the sum of all
// section totals. Because sections are accumulated at full precision and
// rounding happens once here, Σ SectionTotal == Subtotal exactly.
func ProjectTotals(sections []models.Section, budgetType models.BudgetType) models.Totals {
	subtotal := decimal.Zero
	for _, section := range sections {
		subtotal = subtotal.Add(sectionSubtotal(section, budgetType))
	}
	return totalsFromSubtotal(subtotal)
}
