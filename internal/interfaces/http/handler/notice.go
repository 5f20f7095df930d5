package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	collectionapp "github.com/pms/backend/internal/application/collection"
)

// NoticeHandler handles overdue notice and sweep API endpoints
type NoticeHandler struct {
	BaseHandler
	noticeService *collectionapp.NoticeService
	sweepService  *collectionapp.OverdueSweepService
}

// NewNoticeHandler creates a new NoticeHandler
func NewNoticeHandler(noticeService *collectionapp.NoticeService, sweepService *collectionapp.OverdueSweepService) *NoticeHandler {
	return &NoticeHandler{
		noticeService: noticeService,
		sweepService:  sweepService,
	}
}

// Get returns a notice with its overdue details
func (h *NoticeHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid notice ID")
		return
	}

	notice, err := h.noticeService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, notice)
}

// List returns notices matching the query
func (h *NoticeHandler) List(c *gin.Context) {
	var filter collectionapp.NoticeListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	notices, total, err := h.noticeService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, notices, total, filter.Page, filter.PageSize)
}

// MarkSent records that the notice was delivered to the tenant
func (h *NoticeHandler) MarkSent(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid notice ID")
		return
	}

	notice, err := h.noticeService.MarkSent(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, notice)
}

// Acknowledge records that the tenant confirmed receipt
func (h *NoticeHandler) Acknowledge(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid notice ID")
		return
	}

	notice, err := h.noticeService.Acknowledge(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, notice)
}

// Document returns the data bundle for rendering a printable notice
func (h *NoticeHandler) Document(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid notice ID")
		return
	}

	data, err := h.noticeService.GetDocumentData(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, data)
}

// Sweep runs the overdue sweep across all open leases. Re-running the
// sweep is idempotent: months already tracked by an open notice are
// never duplicated.
func (h *NoticeHandler) Sweep(c *gin.Context) {
	result, err := h.sweepService.RunAll(c.Request.Context(), time.Now())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// SweepLease runs the overdue sweep for a single lease
func (h *NoticeHandler) SweepLease(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid lease ID")
		return
	}

	notice, err := h.sweepService.RunForLease(c.Request.Context(), id, time.Now())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if notice == nil {
		h.NoContent(c)
		return
	}

	h.Success(c, notice)
}
