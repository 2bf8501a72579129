package contact

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
	l := zap.L().Named("contact.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("contact.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("contact request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateContactRequest
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
	organizationID := c.GetString(middleware.ContextOrganizationID)
	h.logger.Debug("http get all contacts", zap.String("organization_id", organizationID))

	resp, err := h.service.GetAll(c.Request.Context(), organizationID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	q := response.ParseListQuery(c, "name")
	status := strings.ToUpper(strings.TrimSpace(c.Query("status")))
	filtered := make([]ContactResponse, 0, len(resp))
	for _, ct := range resp {
		if status != "" && ct.LeadStatus != status {
			continue
		}
		if q.Matches(ct.Name, ct.Email, ct.Phone, ct.Company) {
			filtered = append(filtered, ct)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		switch q.SortBy {
		case "email":
			return q.Before(strings.Compare(a.Email, b.Email))
		case "company":
			return q.Before(strings.Compare(strings.ToLower(a.Company), strings.ToLower(b.Company)))
		case "lead_status":
			return q.Before(strings.Compare(a.LeadStatus, b.LeadStatus))
		case "created_at":
			return q.Before(a.CreatedAt.Compare(b.CreatedAt))
		default:
			return q.Before(strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)))
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
	var req UpdateContactRequest
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

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.GetString(middleware.ContextOrganizationID), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Contact deleted")
}
