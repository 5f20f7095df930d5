package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	propertyapp "github.com/pms/backend/internal/application/property"
)

// PropertyHandler handles building, unit and tenant API endpoints
type PropertyHandler struct {
	BaseHandler
	propertyService *propertyapp.PropertyService
}

// NewPropertyHandler creates a new PropertyHandler
func NewPropertyHandler(propertyService *propertyapp.PropertyService) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
	}
}

// CreateBuilding registers a new building
func (h *PropertyHandler) CreateBuilding(c *gin.Context) {
	var req propertyapp.CreateBuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	building, err := h.propertyService.CreateBuilding(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, building)
}

// GetBuilding returns a building by ID
func (h *PropertyHandler) GetBuilding(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid building ID")
		return
	}

	building, err := h.propertyService.GetBuilding(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, building)
}

// ListBuildings returns buildings matching the query
func (h *PropertyHandler) ListBuildings(c *gin.Context) {
	var filter propertyapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	buildings, total, err := h.propertyService.ListBuildings(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, buildings, total, filter.Page, filter.PageSize)
}

// CreateUnit registers a new unit in a building
func (h *PropertyHandler) CreateUnit(c *gin.Context) {
	var req propertyapp.CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	unit, err := h.propertyService.CreateUnit(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, unit)
}

// GetUnit returns a unit by ID
func (h *PropertyHandler) GetUnit(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid unit ID")
		return
	}

	unit, err := h.propertyService.GetUnit(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, unit)
}

// ListUnits returns units, optionally scoped to a building or to
// available units only
func (h *PropertyHandler) ListUnits(c *gin.Context) {
	var filter propertyapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	var buildingID *uuid.UUID
	if raw := c.Query("building_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid building ID")
			return
		}
		buildingID = &id
	}
	availableOnly := c.Query("available") == "true"

	units, total, err := h.propertyService.ListUnits(c.Request.Context(), buildingID, availableOnly, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, units, total, filter.Page, filter.PageSize)
}

// CreateTenant registers a new tenant
func (h *PropertyHandler) CreateTenant(c *gin.Context) {
	var req propertyapp.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	tenant, err := h.propertyService.CreateTenant(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, tenant)
}

// GetTenant returns a tenant by ID
func (h *PropertyHandler) GetTenant(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	tenant, err := h.propertyService.GetTenant(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tenant)
}

// ListTenants returns tenants matching the query
func (h *PropertyHandler) ListTenants(c *gin.Context) {
	var filter propertyapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	tenants, total, err := h.propertyService.ListTenants(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, tenants, total, filter.Page, filter.PageSize)
}
