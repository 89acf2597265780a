package services

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cgrworks/quotation-api/models"
)

func labourSection(id, name string, qty, price float64) models.Section {
	return models.Section{
		ID:   id,
		Name: name,
		Labour: []models.LineItem{
			{Name: "Skilled Worker", Quantity: qty, UnitPrice: price},
		},
	}
}

func TestResolveClientFallbackChain(t *testing.T) {
	directory := []models.Client{
		{
			ID:            "c1",
			CompanyName:   "Acme Builders",
			ContactPerson: "Ms. Tan",
			Email:         "tan@acme.sg",
			Phone:         "+65 9000 0000",
			Address:       "1 Raffles Place",
		},
	}

	t.Run("existing client found", func(t *testing.T) {
		budget := models.Budget{ClientID: "c1"}
		client := ResolveClient(budget, directory)
		assert.Equal(t, "Acme Builders", client.Name)
		assert.Equal(t, "Ms. Tan", client.ContactPerson)
	})

	t.Run("existing client not found degrades to placeholder", func(t *testing.T) {
		budget := models.Budget{ClientID: "zzz"}
		client := ResolveClient(budget, nil)
		assert.Equal(t, "Unknown Client", client.Name)
		assert.Equal(t, "Unknown Contact", client.ContactPerson)
	})

	t.Run("sentinel falls through to inline data", func(t *testing.T) {
		budget := models.Budget{
			ClientID: models.NewClientSentinel,
			NewClient: &models.InlineClient{
				CompanyName:     "Fresh Pte Ltd",
				ClientName:      "Mr. Lim",
				ClientEmail:     "lim@fresh.sg",
				PhoneNumber:     "+65 8111 1111",
				ProjectLocation: "Jurong East",
			},
		}
		client := ResolveClient(budget, directory)
		assert.Equal(t, "Fresh Pte Ltd", client.Name)
		assert.Equal(t, "Mr. Lim", client.ContactPerson)
		// Address falls back to the project location when empty.
		assert.Equal(t, "Jurong East", client.Address)
	})

	t.Run("nothing usable degrades to placeholder", func(t *testing.T) {
		client := ResolveClient(models.Budget{}, directory)
		assert.Equal(t, "Unknown Client", client.Name)
		assert.Equal(t, "unknown@example.com", client.Email)
	})
}

func TestQuotationNumberFormat(t *testing.T) {
	at := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	millis := fmt.Sprintf("%d", at.UnixMilli())
	suffix := millis[len(millis)-6:]

	assert.Equal(t, "CGR-QUO-ACM-2026-"+suffix, QuotationNumber("Acme Builders", at))
	assert.Equal(t, "CGR-QUO-CHU-2026-"+suffix, QuotationNumber("Church of St Alphonsus", at))
	// Letters only: digits and punctuation are stripped before abbreviating.
	assert.Equal(t, "CGR-QUO-AB-2026-"+suffix, QuotationNumber("4A & B", at))
	// No letters at all falls back to CLT.
	assert.Equal(t, "CGR-QUO-CLT-2026-"+suffix, QuotationNumber("42", at))
	assert.Equal(t, "CGR-QUO-CLT-2026-"+suffix, QuotationNumber("", at))
}

func TestGenerateQuotationNumberingLaw(t *testing.T) {
	budget := models.Budget{
		ID:         "b1",
		BudgetType: models.BudgetTypeLabourOnly,
		Sections: []models.Section{
			labourSection("s1", "5-Year Warranty", 1, 0),
			labourSection("s2", "Dismantle works", 2, 100),
			labourSection("s3", "Painting", 1, 300),
			labourSection("s4", "WARRANTY COVERAGE", 1, 0),
			labourSection("s5", "Cleaning", 1, 50),
		},
	}

	q := GenerateQuotation(budget, nil)
	require.Len(t, q.Sections, 5)

	// Normal sections keep source order and take 1..N.
	assert.Equal(t, "Dismantle works", q.Sections[0].Name)
	assert.Equal(t, 1, q.Sections[0].ItemNumber)
	assert.Equal(t, "Painting", q.Sections[1].Name)
	assert.Equal(t, 2, q.Sections[1].ItemNumber)
	assert.Equal(t, "Cleaning", q.Sections[2].Name)
	assert.Equal(t, 3, q.Sections[2].ItemNumber)

	// Warranty sections move to the end, numbering continuing the sequence.
	assert.Equal(t, "5-Year Warranty", q.Sections[3].Name)
	assert.Equal(t, 4, q.Sections[3].ItemNumber)
	assert.Equal(t, "WARRANTY COVERAGE", q.Sections[4].Name)
	assert.Equal(t, 5, q.Sections[4].ItemNumber)
}

func TestGenerateQuotationLumpSumBilling(t *testing.T) {
	budget := models.Budget{
		ID:         "b1",
		BudgetType: models.BudgetTypeFullService,
		Sections: []models.Section{
			{
				ID:          "s1",
				Name:        "Granite repair",
				Description: "Repair granite panels",
				Materials:   []models.LineItem{{Quantity: 2, UnitPrice: 100}},
				Labour:      []models.LineItem{{Quantity: 3, UnitPrice: 50}},
			},
		},
	}

	q := GenerateQuotation(budget, nil)
	require.Len(t, q.Sections, 1)

	sec := q.Sections[0]
	assert.Equal(t, "section-s1", sec.ID)
	assert.Equal(t, 1.0, sec.Quantity)
	assert.Equal(t, "Lump sum", sec.UOM)
	assert.Equal(t, 350.0, sec.Rate)
	assert.Equal(t, 350.0, sec.Amount)
	assert.Equal(t, 350.0, sec.SectionTotal)

	assert.Equal(t, models.Totals{Subtotal: 350, GST: 24.50, Total: 374.50}, q.Totals)
	assert.Equal(t, 15, q.ValidityDays)
	assert.Equal(t, models.QuotationStatusPending, q.Status)
	assert.Equal(t, "b1", q.BudgetID)
}

func TestGenerateQuotationCategoryGating(t *testing.T) {
	budget := models.Budget{
		BudgetType: models.BudgetTypeLabourOnly,
		Sections: []models.Section{
			{
				ID:        "s1",
				Name:      "Works",
				Materials: []models.LineItem{{Quantity: 10, UnitPrice: 100}},
				Tools:     []models.LineItem{{Quantity: 5, UnitPrice: 20}},
				Labour:    []models.LineItem{{Quantity: 3, UnitPrice: 50}},
			},
		},
	}

	q := GenerateQuotation(budget, nil)
	require.Len(t, q.Sections, 1)
	assert.Equal(t, 150.0, q.Sections[0].SectionTotal)
	assert.Equal(t, 150.0, q.Totals.Subtotal)
}

func TestGenerateQuotationSubtotalIncludesWarrantySections(t *testing.T) {
	budget := models.Budget{
		BudgetType: models.BudgetTypeLabourOnly,
		Sections: []models.Section{
			labourSection("s1", "Painting", 1, 300),
			labourSection("s2", "Workmanship Guarantee", 1, 100),
		},
	}

	q := GenerateQuotation(budget, nil)
	assert.Equal(t, 400.0, q.Totals.Subtotal)
}

func TestGenerateQuotationCarriesImagesAndAnnotations(t *testing.T) {
	budget := models.Budget{
		BudgetType: models.BudgetTypeFullService,
		Sections: []models.Section{
			{
				ID:   "s1",
				Name: "Clock tower",
				Images: []models.SectionImage{
					{URL: "https://example.com/a.png", Name: "Tower detail", Overlay: "Drop1"},
					{Src: "https://example.com/b.png"},
				},
				Annotations: []models.Annotation{
					{Type: models.AnnotationRed, Text: "Coping stone missing, how much?"},
					{Type: models.AnnotationBlue, Text: "Panel supplied by contractor"},
				},
			},
		},
	}

	q := GenerateQuotation(budget, nil)
	require.Len(t, q.Sections, 1)

	images := q.Sections[0].Images
	require.Len(t, images, 2)
	assert.Equal(t, models.QuotationImage{Src: "https://example.com/a.png", Alt: "Tower detail", Overlay: "Drop1"}, images[0])
	// Missing name/alt degrades to the default alt text.
	assert.Equal(t, models.QuotationImage{Src: "https://example.com/b.png", Alt: "Section image"}, images[1])

	annotations := q.Sections[0].Annotations
	require.Len(t, annotations, 2)
	assert.Equal(t, models.AnnotationRed, annotations[0].Type)
	assert.Equal(t, "Panel supplied by contractor", annotations[1].Text)
}

func TestGenerateQuotationIsIdempotentOnContent(t *testing.T) {
	budget := models.Budget{
		ID:         "b1",
		ClientID:   "c1",
		BudgetType: models.BudgetTypeFullService,
		Project:    models.Project{ServiceType: "Painting"},
		Sections: []models.Section{
			labourSection("s1", "Prep", 2, 80),
			labourSection("s2", "Warranty", 1, 0),
		},
	}
	clients := []models.Client{{ID: "c1", CompanyName: "Acme Builders"}}

	first := GenerateQuotation(budget, clients)
	second := GenerateQuotation(budget, clients)

	assert.Equal(t, first.Sections, second.Sections)
	assert.Equal(t, first.Totals, second.Totals)
	assert.Equal(t, first.Client, second.Client)
	assert.Equal(t, first.Project, second.Project)
	// Identity fields may legitimately differ per generation.
	assert.NotEqual(t, first.ID, second.ID)
}

func TestGenerateQuotationLeavesInputUntouched(t *testing.T) {
	budget := models.Budget{
		ID: "b1",
		Sections: []models.Section{
			{ID: "s1", Name: "Works", Labour: []models.LineItem{{Quantity: 1, UnitPrice: 100}}},
		},
	}

	GenerateQuotation(budget, nil)

	// Default-filling happens on a private copy, not through the caller's
	// section structs.
	assert.Nil(t, budget.Sections[0].Materials)
	assert.Nil(t, budget.Sections[0].Tools)
	assert.Equal(t, models.BudgetType(""), budget.BudgetType)
}

func TestGenerateQuotationEmptyBudget(t *testing.T) {
	q := GenerateQuotation(models.Budget{ID: "b1"}, nil)

	assert.NotNil(t, q.Sections)
	assert.Empty(t, q.Sections)
	assert.Equal(t, models.Totals{}, q.Totals)
	assert.Equal(t, "Unknown Client", q.Client.Name)
	assert.Regexp(t, regexp.MustCompile(`^CGR-QUO-CLT-\d{4}-\d{1,6}$`), q.QuotationNumber)
}
