package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cgrworks/quotation-api/export"
	"github.com/cgrworks/quotation-api/services"
	"github.com/cgrworks/quotation-api/store"
)

type QuotationHandler struct {
	Store *store.Store
}

// GenerateQuotation builds the quotation document for a budget. The
// document is derived on every call; the generated copy is also recorded
// as the current quotation.
func (h *QuotationHandler) GenerateQuotation(c *gin.Context) {
	budget, found := h.Store.GetBudget(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		return
	}

	snapshot := h.Store.Snapshot()
	quotation := services.GenerateQuotation(budget, snapshot.Clients)
	h.Store.SetCurrentQuotation(&quotation)

	c.JSON(http.StatusOK, quotation)
}

// EmailQuotation builds the mailto link the front end opens to send the
// quotation.
func (h *QuotationHandler) EmailQuotation(c *gin.Context) {
	budget, found := h.Store.GetBudget(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		return
	}

	quotation := services.GenerateQuotation(budget, h.Store.Snapshot().Clients)
	link, err := export.MailtoLink(quotation)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Client email not available. Please ensure client information is complete."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mailto":  link,
		"subject": export.EmailSubject(quotation),
		"body":    export.EmailBody(quotation),
	})
}

// PrintQuotation renders the printable HTML layout for a budget's
// quotation.
func (h *QuotationHandler) PrintQuotation(c *gin.Context) {
	budget, found := h.Store.GetBudget(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		return
	}

	quotation := services.GenerateQuotation(budget, h.Store.Snapshot().Clients)
	html, err := export.RenderHTML(quotation)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render quotation"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// SampleQuotation returns the built-in preview document.
func (h *QuotationHandler) SampleQuotation(c *gin.Context) {
	c.JSON(http.StatusOK, export.SampleQuotation())
}
