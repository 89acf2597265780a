package services

import (
	"fmt"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cgrworks/quotation-api/config"
	"github.com/cgrworks/quotation-api/models"
)

// ResolveClient picks the client block for a quotation. The chain never
// fails: an existing directory entry wins, then inline new-client data,
// then the "Unknown Client" placeholder.
func ResolveClient(budget models.Budget, clients []models.Client) models.QuotationClient {
	ref := budget.ClientRef()
	switch ref.Kind {
	case models.ClientRefExisting:
		for _, c := range clients {
			if c.ID == ref.ID {
				return models.QuotationClient{
					Name:          c.CompanyName,
					ContactPerson: c.ContactPerson,
					Email:         c.Email,
					Phone:         c.Phone,
					Address:       c.Address,
				}
			}
		}
	case models.ClientRefInline:
		nc := ref.Inline
		address := nc.Address
		if address == "" {
			address = nc.ProjectLocation
		}
		return models.QuotationClient{
			Name:          nc.CompanyName,
			ContactPerson: nc.ClientName,
			Email:         nc.ClientEmail,
			Phone:         nc.PhoneNumber,
			Address:       address,
		}
	}
	return models.QuotationClient{
		Name:          "Unknown Client",
		ContactPerson: "Unknown Contact",
		Email:         "unknown@example.com",
	}
}

// QuotationNumber builds the display identifier
// CGR-QUO-<ABBR>-<year>-<last 6 digits of the unix-ms timestamp>.
// It carries no uniqueness guarantee; collisions are accepted.
func QuotationNumber(clientName string, at time.Time) string {
	abbr := clientAbbr(clientName)
	millis := fmt.Sprintf("%d", at.UnixMilli())
	if len(millis) > 6 {
		millis = millis[len(millis)-6:]
	}
	return fmt.Sprintf("%s-%s-%d-%s", config.QuotationPrefix, abbr, at.Year(), millis)
}

func clientAbbr(name string) string {
	var letters []rune
	for _, r := range name {
		if unicode.IsLetter(r) && r < 128 {
			letters = append(letters, unicode.ToUpper(r))
		}
		if len(letters) == 3 {
			break
		}
	}
	if len(letters) == 0 {
		return config.DefaultClientAbbr
	}
	return string(letters)
}

func quotationImages(images []models.SectionImage) []models.QuotationImage {
	out := make([]models.QuotationImage, 0, len(images))
	for _, img := range images {
		src := img.URL
		if src == "" {
			src = img.Src
		}
		alt := img.Name
		if alt == "" {
			alt = img.Alt
		}
		if alt == "" {
			alt = "Section image"
		}
		out = append(out, models.QuotationImage{Src: src, Alt: alt, Overlay: img.Overlay})
	}
	return out
}

// GenerateQuotation transforms a budget and the client directory into the
// quotation document model. Sections keep their budget order and are
// numbered 1..N, except warranty sections, which are pulled out and
// appended at the end with numbering continuing the sequence. Each section
// is billed as one lump-sum row at its aggregate rate. The function never
// fails; every missing field degrades to a documented default.
func GenerateQuotation(budget models.Budget, clients []models.Client) models.Quotation {
	// Normalize works in place, so run it on a private copy: the caller's
	// budget is a read-only input here.
	budget = budget.Clone()
	budget.Normalize()
	client := ResolveClient(budget, clients)

	var normal, warranty []models.QuotationSection
	subtotal := decimal.Zero

	for _, section := range budget.Sections {
		secSubtotal := sectionSubtotal(section, budget.BudgetType)
		subtotal = subtotal.Add(secSubtotal)
		sectionTotal, _ := secSubtotal.Float64()

		qs := models.QuotationSection{
			ID:           "section-" + section.ID,
			Name:         section.Name,
			Description:  section.Description,
			Quantity:     1,
			UOM:          "Lump sum",
			Rate:         sectionTotal,
			Amount:       sectionTotal,
			SectionTotal: sectionTotal,
			Images:       quotationImages(section.Images),
			Annotations:  append([]models.Annotation(nil), section.Annotations...),
		}

		if section.IsWarranty() {
			warranty = append(warranty, qs)
		} else {
			qs.ItemNumber = len(normal) + 1
			normal = append(normal, qs)
		}
	}

	sections := normal
	for i := range warranty {
		warranty[i].ItemNumber = len(normal) + i + 1
		sections = append(sections, warranty[i])
	}
	if sections == nil {
		sections = []models.QuotationSection{}
	}

	now := time.Now()
	return models.Quotation{
		ID:              uuid.New().String(),
		BudgetID:        budget.ID,
		QuotationNumber: QuotationNumber(client.Name, now),
		Client:          client,
		Project:         budget.Project,
		Sections:        sections,
		Totals:          totalsFromSubtotal(subtotal),
		CreatedAt:       now,
		ValidityDays:    config.QuotationValidityDays,
		Status:          models.QuotationStatusPending,
	}
}
