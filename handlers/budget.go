package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cgrworks/quotation-api/middleware"
	"github.com/cgrworks/quotation-api/models"
	"github.com/cgrworks/quotation-api/services"
	"github.com/cgrworks/quotation-api/store"
)

type BudgetHandler struct {
	Store *store.Store
	WS    *WSHandler
}

// GetBudgets returns all budgets.
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Snapshot().Budgets)
}

// GetBudget returns one budget by ID.
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	budget, found := h.Store.GetBudget(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		return
	}
	c.JSON(http.StatusOK, budget)
}

// CreateBudget commits a budget draft. Inline new-client data is registered
// as part of the same commit; the response carries the stored budget, which
// always references its client by ID.
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var budget models.Budget
	if err := c.ShouldBindJSON(&budget); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	budget.ID = ""
	id, err := h.Store.AddBudget(budget)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save budget"})
		return
	}

	h.WS.BroadcastUpdate("budget_added", middleware.GetUserEmail(c))
	stored, _ := h.Store.GetBudget(id)
	c.JSON(http.StatusCreated, stored)
}

// UpdateBudget replaces a budget.
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	var budget models.Budget
	if err := c.ShouldBindJSON(&budget); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	budget.ID = c.Param("id")

	if _, found := h.Store.GetBudget(budget.ID); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		return
	}

	if err := h.Store.UpdateBudget(budget); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update budget"})
		return
	}

	h.WS.BroadcastUpdate("budget_updated", middleware.GetUserEmail(c))
	stored, _ := h.Store.GetBudget(budget.ID)
	c.JSON(http.StatusOK, stored)
}

// DeleteBudget removes a budget.
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	id := c.Param("id")

	if _, found := h.Store.GetBudget(id); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		return
	}

	if err := h.Store.DeleteBudget(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete budget"})
		return
	}

	h.WS.BroadcastUpdate("budget_deleted", middleware.GetUserEmail(c))
	c.JSON(http.StatusOK, gin.H{"message": "Budget deleted"})
}

// CreateRevision branches a new draft revision off an existing budget.
// The body may carry replacement content; an empty body copies the
// original.
func (h *BudgetHandler) CreateRevision(c *gin.Context) {
	id := c.Param("id")

	var draft *models.Budget
	if c.Request.ContentLength > 0 {
		var body models.Budget
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		draft = &body
	}

	revisionID, err := h.Store.CreateRevision(id, draft)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		return
	}

	h.WS.BroadcastUpdate("revision_created", middleware.GetUserEmail(c))
	revision, _ := h.Store.GetBudget(revisionID)
	c.JSON(http.StatusCreated, revision)
}

// GetRevisionHistory returns the budget's whole lineage, newest first.
func (h *BudgetHandler) GetRevisionHistory(c *gin.Context) {
	budget, found := h.Store.GetBudget(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		return
	}

	history := services.RevisionHistory(budget, h.Store.Snapshot().Budgets)
	c.JSON(http.StatusOK, history)
}
