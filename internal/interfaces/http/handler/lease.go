package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	leasingapp "github.com/pms/backend/internal/application/leasing"
)

// LeaseHandler handles lease lifecycle API endpoints
type LeaseHandler struct {
	BaseHandler
	leaseService *leasingapp.LeaseService
}

// NewLeaseHandler creates a new LeaseHandler
func NewLeaseHandler(leaseService *leasingapp.LeaseService) *LeaseHandler {
	return &LeaseHandler{
		leaseService: leaseService,
	}
}

// Create signs a new lease on a unit
func (h *LeaseHandler) Create(c *gin.Context) {
	var req leasingapp.CreateLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	lease, err := h.leaseService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, lease)
}

// Get returns a lease by ID
func (h *LeaseHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid lease ID")
		return
	}

	lease, err := h.leaseService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, lease)
}

// List returns leases matching the query
func (h *LeaseHandler) List(c *gin.Context) {
	var filter leasingapp.LeaseListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	leases, total, err := h.leaseService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, leases, total, filter.Page, filter.PageSize)
}

// Renew closes the lease as renewed and signs a successor term
func (h *LeaseHandler) Renew(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid lease ID")
		return
	}

	var req leasingapp.RenewLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	successor, err := h.leaseService.Renew(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, successor)
}

// Cancel terminates the lease early and frees its unit
func (h *LeaseHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid lease ID")
		return
	}

	var req leasingapp.CancelLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	lease, err := h.leaseService.Cancel(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, lease)
}

// RecomputeStatuses re-derives every non-terminal lease status from
// today's calendar. This is the same job the scheduler runs nightly.
func (h *LeaseHandler) RecomputeStatuses(c *gin.Context) {
	result, err := h.leaseService.RecomputeStatuses(c.Request.Context(), time.Now())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
