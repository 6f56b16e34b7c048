package router

import (
	"net/http"

	"github.com/Sumit10612/wealth-manager/internal/config"
	"github.com/Sumit10612/wealth-manager/internal/handler"
	"github.com/Sumit10612/wealth-manager/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the gin engine, the static frontend and every
// API route. The database handle is threaded into each handler here;
// nothing reaches for it globally.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	// single-page frontend
	if cfg.Web.StaticDir != "" {
		r.Static("/static", cfg.Web.StaticDir)
		r.StaticFile("/", cfg.Web.StaticDir+"/index.html")
	}

	api := r.Group("/api")

	// open endpoints: login and health probe
	authHandler := handler.NewAuthHandler(cfg.Auth.Password)
	api.POST("/login", authHandler.Login)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	protected := api.Group("")
	protected.Use(middleware.Auth(cfg.Auth.Password))

	for path, table := range map[string]string{
		"asset-types": "asset_types",
		"platforms":   "platforms",
		"accounts":    "accounts",
	} {
		ref := handler.NewReferenceHandler(db, table)
		protected.GET("/"+path, ref.List)
		protected.POST("/"+path, ref.Create)
		protected.DELETE("/"+path+"/:id", ref.Delete)
	}

	txHandler := handler.NewTransactionHandler(db)
	protected.GET("/transactions", txHandler.List)
	protected.GET("/transactions/:id", txHandler.Get)
	protected.POST("/transactions", txHandler.Create)
	protected.PUT("/transactions/:id", txHandler.Update)
	protected.DELETE("/transactions/:id", txHandler.Delete)

	exportHandler := handler.NewExportHandler(db)
	protected.GET("/export/csv", exportHandler.ExportCSV)
	protected.GET("/export/xlsx", exportHandler.ExportXLSX)

	return r
}
