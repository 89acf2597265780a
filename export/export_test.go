package export

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cgrworks/quotation-api/models"
)

func testQuotation() models.Quotation {
	return models.Quotation{
		ID:              "q-test",
		QuotationNumber: "CGR-QUO-ACM-2026-123456",
		Client: models.QuotationClient{
			Name:          "Acme Builders Pte Ltd",
			ContactPerson: "Ms. Tan",
			Email:         "tan@acme.sg",
			Phone:         "+65 9123 4567",
			Address:       "1 Builder Way, Singapore 123456",
		},
		Project: models.Project{ServiceType: "Waterproofing"},
		Sections: []models.QuotationSection{
			{
				ID:           "section-1",
				ItemNumber:   1,
				Name:         "Roof membrane replacement",
				Description:  "Strip and relay membrane.",
				Quantity:     1,
				UOM:          "Lump sum",
				Rate:         5000,
				Amount:       5000,
				SectionTotal: 5000,
				Annotations: []models.Annotation{
					{Type: models.AnnotationRed, Text: "Access via scaffold only"},
				},
			},
		},
		Totals:       models.Totals{Subtotal: 5000, GST: 350, Total: 5350},
		CreatedAt:    time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		ValidityDays: 15,
		Status:       models.QuotationStatusPending,
	}
}

func TestEmailSubject(t *testing.T) {
	q := testQuotation()
	assert.Equal(t, "Quotation CGR-QUO-ACM-2026-123456 - Waterproofing Works", EmailSubject(q))

	q.Project.ServiceType = ""
	assert.Equal(t, "Quotation CGR-QUO-ACM-2026-123456 - Construction Works", EmailSubject(q))
}

func TestEmailBody(t *testing.T) {
	body := EmailBody(testQuotation())

	assert.Contains(t, body, "Dear Ms. Tan,")
	assert.Contains(t, body, "the Waterproofing works at Acme Builders Pte Ltd")
	assert.Contains(t, body, "- Quotation Number: CGR-QUO-ACM-2026-123456")
	assert.Contains(t, body, "- Total Amount: $5350.00")
	assert.Contains(t, body, "- Validity: 15 Days")
	assert.Contains(t, body, "Century Global Resources Pte Ltd")
	assert.Contains(t, body, "Tel: +65 6457 5855")
}

func TestEmailBodyFallbacks(t *testing.T) {
	q := testQuotation()
	q.Client.ContactPerson = ""
	q.Client.Name = ""
	q.Project.ServiceType = ""

	body := EmailBody(q)
	assert.Contains(t, body, "Dear Sir/Madam,")
	assert.Contains(t, body, "the Construction works at your location")
}

func TestMailtoLink(t *testing.T) {
	link, err := MailtoLink(testQuotation())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(link, "mailto:tan@acme.sg?subject="))

	// The subject and body survive a URL decode intact.
	parts := strings.SplitN(link, "?", 2)
	require.Len(t, parts, 2)
	query, err := url.ParseQuery(parts[1])
	require.NoError(t, err)
	assert.Equal(t, "Quotation CGR-QUO-ACM-2026-123456 - Waterproofing Works", query.Get("subject"))
	assert.Contains(t, query.Get("body"), "Dear Ms. Tan,")
}

func TestMailtoLinkNoEmail(t *testing.T) {
	q := testQuotation()
	q.Client.Email = ""

	_, err := MailtoLink(q)
	assert.Error(t, err)
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML(testQuotation())
	require.NoError(t, err)

	assert.Contains(t, html, "<title>Quotation CGR-QUO-ACM-2026-123456</title>")
	assert.Contains(t, html, "Century Global Resources Pte Ltd")
	assert.Contains(t, html, "Acme Builders Pte Ltd")
	assert.Contains(t, html, "Attn: Ms. Tan")
	assert.Contains(t, html, "10 Mar 2026")
	assert.Contains(t, html, "Roof membrane replacement")
	assert.Contains(t, html, "Lump sum")
	assert.Contains(t, html, "5000.00")
	assert.Contains(t, html, "350.00")
	assert.Contains(t, html, "5350.00")
	assert.Contains(t, html, `class="callout red"`)
	assert.Contains(t, html, "Access via scaffold only")
	assert.Contains(t, html, "valid for 15 days")
}

func TestSampleQuotation(t *testing.T) {
	q := SampleQuotation()

	assert.Equal(t, "CGR-QUO-NC-25-03-077", q.QuotationNumber)
	assert.Equal(t, models.QuotationStatusDraft, q.Status)
	assert.Equal(t, 15, q.ValidityDays)
	require.Len(t, q.Sections, 3)

	// Line amounts add up to the stated totals.
	var subtotal float64
	for _, s := range q.Sections {
		assert.Equal(t, s.Amount, s.SectionTotal)
		subtotal += s.Amount
	}
	assert.Equal(t, subtotal, q.Totals.Subtotal)
	assert.InDelta(t, q.Totals.Subtotal*0.07, q.Totals.GST, 0.001)
	assert.Equal(t, q.Totals.Subtotal+q.Totals.GST, q.Totals.Total)

	// Sample renders without error.
	html, err := RenderHTML(q)
	require.NoError(t, err)
	assert.Contains(t, html, "Novena Church")
}
