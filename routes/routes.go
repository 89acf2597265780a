package routes

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"github.com/cgrworks/quotation-api/handlers"
	"github.com/cgrworks/quotation-api/store"
)

// SetupAuthRoutes sets up public authentication routes.
func SetupAuthRoutes(rg *gin.RouterGroup, db *sql.DB) {
	authHandler := &handlers.AuthHandler{DB: db}

	rg.POST("/auth/signup", authHandler.Signup)
	rg.POST("/auth/login", authHandler.Login)
	rg.POST("/auth/refresh", authHandler.Refresh)
}

// SetupClientRoutes sets up protected client-directory routes.
func SetupClientRoutes(rg *gin.RouterGroup, st *store.Store, ws *handlers.WSHandler) {
	h := &handlers.ClientHandler{Store: st, WS: ws}

	rg.GET("/clients", h.GetClients)
	rg.POST("/clients", h.CreateClient)
	rg.GET("/clients/:id", h.GetClient)
	rg.PUT("/clients/:id", h.UpdateClient)
	rg.DELETE("/clients/:id", h.DeleteClient)
}

// SetupBudgetRoutes sets up protected budget and revision routes.
func SetupBudgetRoutes(rg *gin.RouterGroup, st *store.Store, ws *handlers.WSHandler) {
	h := &handlers.BudgetHandler{Store: st, WS: ws}

	rg.GET("/budgets", h.GetBudgets)
	rg.POST("/budgets", h.CreateBudget)
	rg.GET("/budgets/:id", h.GetBudget)
	rg.PUT("/budgets/:id", h.UpdateBudget)
	rg.DELETE("/budgets/:id", h.DeleteBudget)

	rg.POST("/budgets/:id/revisions", h.CreateRevision)
	rg.GET("/budgets/:id/revisions", h.GetRevisionHistory)
}

// SetupQuotationRoutes sets up protected quotation-generation routes.
func SetupQuotationRoutes(rg *gin.RouterGroup, st *store.Store) {
	h := &handlers.QuotationHandler{Store: st}

	rg.GET("/budgets/:id/quotation", h.GenerateQuotation)
	rg.GET("/budgets/:id/quotation/email", h.EmailQuotation)
	rg.GET("/budgets/:id/quotation/print", h.PrintQuotation)
	rg.GET("/quotations/sample", h.SampleQuotation)
}

// SetupUserRoutes sets up protected user/2FA routes.
func SetupUserRoutes(rg *gin.RouterGroup, db *sql.DB) {
	userHandler := &handlers.UserHandler{DB: db}

	rg.GET("/user/profile", userHandler.GetProfile)
	rg.POST("/user/2fa/setup", userHandler.SetupTOTP)
	rg.POST("/user/2fa/verify", userHandler.VerifyTOTP)
	rg.POST("/user/2fa/disable", userHandler.DisableTOTP)
}

// SetupOptionsRoutes sets up the business-constants route.
func SetupOptionsRoutes(rg *gin.RouterGroup) {
	rg.GET("/config/options", handlers.GetOptions)
}
