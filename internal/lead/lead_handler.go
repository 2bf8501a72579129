package lead

import (
	"net/http"
	"sort"
	"strings"

	"go-crm/internal/middleware"
	"go-crm/internal/shared/apperror"
	"go-crm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("lead.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("lead.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("lead request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(
		c.Request.Context(),
		c.GetString(middleware.ContextOrganizationID),
		c.GetString(middleware.ContextUserID),
		req,
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context(), c.GetString(middleware.ContextOrganizationID), c.Query("status"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	q := response.ParseListQuery(c, "created_at")
	filtered := make([]LeadResponse, 0, len(resp))
	for _, l := range resp {
		if q.Matches(l.Name, l.Email, l.Phone, l.Company, l.Source) {
			filtered = append(filtered, l)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		switch q.SortBy {
		case "name":
			return q.Before(strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)))
		case "email":
			return q.Before(strings.Compare(a.Email, b.Email))
		case "company":
			return q.Before(strings.Compare(strings.ToLower(a.Company), strings.ToLower(b.Company)))
		case "source":
			return q.Before(strings.Compare(strings.ToLower(a.Source), strings.ToLower(b.Source)))
		case "lead_status":
			return q.Before(strings.Compare(a.LeadStatus, b.LeadStatus))
		default:
			return q.Before(a.CreatedAt.Compare(b.CreatedAt))
		}
	})

	items, meta := response.Paginate(filtered, q.Page, q.PageSize)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.GetString(middleware.ContextOrganizationID), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), c.GetString(middleware.ContextOrganizationID), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateLeadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.UpdateStatus(c.Request.Context(), c.GetString(middleware.ContextOrganizationID), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.GetString(middleware.ContextOrganizationID), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Lead deleted")
}
