package router

import (
	"net/http"

	"github.com/blues/adagency/internal/cache"
	"github.com/blues/adagency/internal/calculator"
	"github.com/blues/adagency/internal/config"
	"github.com/blues/adagency/internal/handler"
	"github.com/blues/adagency/internal/logic"
	"github.com/blues/adagency/internal/model"
	"github.com/blues/adagency/internal/notify"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(db *gorm.DB, feedCache cache.Cache, notifier notify.Notifier, cfg *config.Config) *gin.Engine {
	r := gin.New()

	r.Use(requestIDMiddleware())
	r.Use(accessLogMiddleware())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware(cfg.Server.AllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "service": "adagency"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "adagency"})
	})

	leadLogic := logic.NewLeadLogic(db, notifier)
	leadHandler := handler.NewLeadHandler(leadLogic)
	contentHandler := handler.NewContentHandler(logic.NewContentLogic(db, feedCache))
	calculatorHandler := handler.NewCalculatorHandler(calculator.DefaultCatalog(), leadLogic)

	team := handler.NewCollectionHandler(logic.NewCollectionLogic[model.TeamMember](db, feedCache))
	partners := handler.NewCollectionHandler(logic.NewCollectionLogic[model.Partner](db, feedCache))
	testimonials := handler.NewCollectionHandler(logic.NewCollectionLogic[model.Testimonial](db, feedCache))

	api := r.Group("/api")
	admin := adminAuthMiddleware(cfg.Server.AdminToken)

	// public
	{
		api.POST("/leads", leadHandler.CreateLead)

		api.GET("/calculator", calculatorHandler.GetCatalog)
		api.POST("/calculator/estimate", calculatorHandler.Estimate)
		api.POST("/calculator/submit", calculatorHandler.Submit)

		api.GET("/services", contentHandler.GetServices)
		api.GET("/portfolio", contentHandler.GetPortfolio)
		api.GET("/faq", contentHandler.GetFAQ)
		api.GET("/settings", contentHandler.GetSettings)
		api.GET("/team", team.PublicList)
		api.GET("/partners", partners.PublicList)
		api.GET("/testimonials", testimonials.PublicList)
	}

	leads := api.Group("/leads", admin)
	{
		leads.GET("", leadHandler.GetLeads)
		leads.GET("/stats", leadHandler.GetLeadStats)
		leads.POST("/bulk-delete", leadHandler.BulkDeleteLeads)
		leads.GET("/:id", leadHandler.GetLead)
		leads.PATCH("/:id", leadHandler.UpdateLead)
		leads.DELETE("/:id", leadHandler.DeleteLead)
	}

	adminAPI := api.Group("/admin", admin)
	{
		registerCollection(adminAPI.Group("/team"), team)
		registerCollection(adminAPI.Group("/partners"), partners)
		registerCollection(adminAPI.Group("/testimonials"), testimonials)
	}

	return r
}

func registerCollection[T any, PT logic.Entity[T]](g *gin.RouterGroup, h *handler.CollectionHandler[T, PT]) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.PUT("", h.Update)
	g.DELETE("", h.Delete)
	g.POST("/reorder", h.Reorder)
}
