package auth

import (
	"net/http"

	"go-crm/internal/domain"
	"go-crm/internal/middleware"
	"go-crm/internal/shared/apperror"
	"go-crm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HandlerConfig struct {
	// VerifyRedirectURL is where GET /verify sends the browser after success.
	VerifyRedirectURL string
}

type Handler struct {
	service Service
	cfg     HandlerConfig
	logger  *zap.Logger
}

func NewHandler(service Service, cfg HandlerConfig, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: service, cfg: cfg, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("auth request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.logger.Debug("auth request validation failed", zap.String("path", c.FullPath()), zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return false
	}
	return true
}

func (h *Handler) signup(c *gin.Context, userType domain.UserType) {
	var req SignupRequest
	if !h.bind(c, &req) {
		return
	}

	user, err := h.service.Signup(c.Request.Context(), userType, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":    user,
		"message": "Signup successful, check your email to verify the account",
	}, nil)
}

func (h *Handler) SignupUser(c *gin.Context) {
	h.signup(c, domain.UserTypeUser)
}

func (h *Handler) SignupOwner(c *gin.Context) {
	h.signup(c, domain.UserTypeOwner)
}

func (h *Handler) SignupAdmin(c *gin.Context) {
	h.signup(c, domain.UserTypeAdmin)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if !h.bind(c, &req) {
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Authorization", "Bearer "+resp.AccessToken)
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Verify(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		h.writeServiceError(c, apperror.RequiredField("Token"))
		return
	}

	if err := h.service.Verify(c.Request.Context(), token); err != nil {
		h.writeServiceError(c, err)
		return
	}

	if h.cfg.VerifyRedirectURL == "" {
		response.Message(c, http.StatusOK, "Email verified")
		return
	}
	c.Redirect(http.StatusFound, h.cfg.VerifyRedirectURL)
}

func (h *Handler) Reverify(c *gin.Context) {
	var req EmailRequest
	if !h.bind(c, &req) {
		return
	}

	if err := h.service.Reverify(c.Request.Context(), req.Email); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Verification email sent")
}

func (h *Handler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if !h.bind(c, &req) {
		return
	}

	callerID := c.GetString(middleware.ContextUserID)
	if err := h.service.ChangePassword(c.Request.Context(), callerID, c.Param("id"), req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Password changed")
}

func (h *Handler) ForgotPassword(c *gin.Context) {
	var req EmailRequest
	if !h.bind(c, &req) {
		return
	}

	if err := h.service.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Password reset email sent")
}

func (h *Handler) ResetPassword(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		h.writeServiceError(c, apperror.RequiredField("Token"))
		return
	}

	var req ResetPasswordRequest
	if !h.bind(c, &req) {
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), c.Param("id"), token, req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Password has been reset")
}

func (h *Handler) InviteUser(c *gin.Context) {
	var req InviteUserRequest
	if !h.bind(c, &req) {
		return
	}

	resp, err := h.service.InviteUser(
		c.Request.Context(),
		c.GetString(middleware.ContextUserID),
		c.GetString(middleware.ContextOrganizationID),
		req,
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) SelectOrganization(c *gin.Context) {
	var req SelectOrganizationRequest
	if !h.bind(c, &req) {
		return
	}

	resp, err := h.service.SelectOrganization(c.Request.Context(), c.GetString(middleware.ContextUserID), req.OrganizationID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Authorization", "Bearer "+resp.AccessToken)
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Me(c *gin.Context) {
	resp, err := h.service.Me(
		c.Request.Context(),
		c.GetString(middleware.ContextUserID),
		c.GetString(middleware.ContextOrganizationID),
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
