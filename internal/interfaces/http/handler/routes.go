package handler

import "github.com/gin-gonic/gin"

// RegisterRoutes registers building, unit and tenant routes
func (h *PropertyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	buildings := rg.Group("/property/buildings")
	{
		buildings.POST("", h.CreateBuilding)
		buildings.GET("", h.ListBuildings)
		buildings.GET("/:id", h.GetBuilding)
	}

	units := rg.Group("/property/units")
	{
		units.POST("", h.CreateUnit)
		units.GET("", h.ListUnits)
		units.GET("/:id", h.GetUnit)
	}

	tenants := rg.Group("/property/tenants")
	{
		tenants.POST("", h.CreateTenant)
		tenants.GET("", h.ListTenants)
		tenants.GET("/:id", h.GetTenant)
	}
}

// RegisterRoutes registers lease lifecycle routes
func (h *LeaseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	leases := rg.Group("/leasing/leases")
	{
		leases.POST("", h.Create)
		leases.GET("", h.List)
		leases.GET("/:id", h.Get)
		leases.POST("/:id/renew", h.Renew)
		leases.POST("/:id/cancel", h.Cancel)
		leases.POST("/recompute-statuses", h.RecomputeStatuses)
	}
}

// RegisterRoutes registers payment and ledger routes
func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	payments := rg.Group("/billing/payments")
	{
		payments.POST("", h.Record)
		payments.GET("", h.List)
		payments.GET("/:id", h.Get)
	}

	rg.GET("/leasing/leases/:id/ledger", h.Ledger)
}

// RegisterRoutes registers overdue notice and sweep routes
func (h *NoticeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	notices := rg.Group("/collection/notices")
	{
		notices.GET("", h.List)
		notices.GET("/:id", h.Get)
		notices.POST("/:id/mark-sent", h.MarkSent)
		notices.POST("/:id/acknowledge", h.Acknowledge)
		notices.GET("/:id/document", h.Document)
	}

	rg.POST("/collection/sweep", h.Sweep)
	rg.POST("/collection/sweep/:id", h.SweepLease)
}

// RegisterRoutes registers system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	system := rg.Group("/system")
	{
		system.GET("/health", h.Health)
		system.GET("/ping", h.Ping)
	}
}
