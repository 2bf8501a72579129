package user

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
	svc    Service
	logger *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("user.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.handler")
	}
	return &Handler{svc: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("user request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetAll(c *gin.Context) {
	organizationID := c.GetString(middleware.ContextOrganizationID)
	h.logger.Debug("http get all users", zap.String("organization_id", organizationID))

	resp, err := h.svc.GetAll(c.Request.Context(), organizationID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	q := response.ParseListQuery(c, "name")
	role := strings.ToUpper(strings.TrimSpace(c.Query("role")))
	filtered := make([]UserResponse, 0, len(resp))
	for _, u := range resp {
		if role != "" && u.Role != role {
			continue
		}
		if q.Matches(u.Name, u.Email) {
			filtered = append(filtered, u)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		switch q.SortBy {
		case "email":
			return q.Before(strings.Compare(strings.ToLower(filtered[i].Email), strings.ToLower(filtered[j].Email)))
		case "role":
			return q.Before(strings.Compare(filtered[i].Role, filtered[j].Role))
		case "created_at":
			return q.Before(filtered[i].CreatedAt.Compare(filtered[j].CreatedAt))
		default:
			return q.Before(strings.Compare(strings.ToLower(filtered[i].Name), strings.ToLower(filtered[j].Name)))
		}
	})

	items, meta := response.Paginate(filtered, q.Page, q.PageSize)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.svc.GetByID(c.Request.Context(), c.GetString(middleware.ContextOrganizationID), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ChangeRole(c *gin.Context) {
	var req ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.svc.ChangeRole(
		c.Request.Context(),
		c.GetString(middleware.ContextOrganizationID),
		c.GetString(middleware.ContextUserID),
		c.Param("id"),
		req,
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	err := h.svc.Delete(
		c.Request.Context(),
		c.GetString(middleware.ContextOrganizationID),
		c.GetString(middleware.ContextUserID),
		c.Param("id"),
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "User deleted")
}
