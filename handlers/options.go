package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cgrworks/quotation-api/config"
)

// GetOptions returns the fixed business constants the budget form renders:
// service types, budget types, urgency levels (surcharge labels are
// descriptive only), labour tiers and material groupings.
func GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"serviceTypes": config.ServiceTypes,
		"budgetTypes": []gin.H{
			{"id": "full-service", "title": "Full Service", "description": "Materials, tools and labour"},
			{"id": "labour-tools", "title": "Labour & Tools", "description": "Tools and labour, client supplies materials"},
			{"id": "labour-only", "title": "Labour Only", "description": "Labour only, client supplies materials and tools"},
		},
		"urgencyLevels":      config.UrgencyLevels,
		"labourCategories":   config.LabourCategories,
		"materialCategories": config.MaterialCategories,
		"gstRate":            config.GSTRate,
		"validityDays":       config.QuotationValidityDays,
	})
}
