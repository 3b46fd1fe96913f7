package router

import (
	"github.com/MateusDuran/FinancasDX/internal/config"
	"github.com/MateusDuran/FinancasDX/internal/handler"
	"github.com/MateusDuran/FinancasDX/internal/ledger"
	"github.com/MateusDuran/FinancasDX/internal/middleware"
	"github.com/MateusDuran/FinancasDX/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires stores, the ledger service and all handlers into a
// Gin engine.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.CORSMiddleware())

	users := store.NewUserStore(db)
	transactions := store.NewTransactionStore(db)
	ledgerSvc := ledger.NewService(users, transactions)

	api := r.Group("/api")

	authHandler := handler.NewAuthHandler(users, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.ExpireHours)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(
		middleware.AuthMiddleware(cfg.JWT.Secret, users),
		middleware.AuditMiddleware(db),
	)

	protected.POST("/auth/validate-password", authHandler.ValidatePassword)

	protected.GET("/me", handler.GetMe)
	protected.POST("/profile/password", handler.ChangePassword(users))
	protected.POST("/profile/delete", handler.DeleteAccount(users))

	txHandler := handler.NewTransactionHandler(ledgerSvc, cfg.App.DefaultRecentLimit)
	protected.POST("/transactions", txHandler.Create)
	protected.GET("/transactions", txHandler.List)
	protected.GET("/transactions/recent", txHandler.Recent)
	protected.GET("/transactions/balance", txHandler.Balance)

	exportHandler := handler.NewExportHandler(ledgerSvc)
	protected.GET("/export/csv", exportHandler.ExportCSV)
	protected.GET("/export/xlsx", exportHandler.ExportXLSX)

	return r
}
