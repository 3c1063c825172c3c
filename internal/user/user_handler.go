package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-userreg/internal/shared/apperror"
	"go-userreg/internal/shared/response"
	usererrors "go-userreg/internal/user/errors"
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

// writeError renders recoverable outcomes (not found, duplicate email)
// in place. Anything else is attached to the context for the
// error-handling stage to translate.
func writeError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.HTTPStatus < http.StatusInternalServerError {
		response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message)
		c.Abort()
		return
	}

	_ = c.Error(err)
	c.Abort()
}

// parseID rejects ids that are not integers. Non-positive values pass
// through: the repository folds those into its not-found outcome.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidArgument, usererrors.ErrInvalidUserID.Message)
		c.Abort()
		return 0, false
	}
	return id, true
}

func (h *Handler) GetAll(c *gin.Context) {
	h.logger.Debug("http get all users")

	users, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.logger.Debug("http get user by id", zap.Int64("user_id", id))

	u, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, u)
}

func (h *Handler) Create(c *gin.Context) {
	h.logger.Debug("http create user")

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create user validation failed", zap.Error(err))
		appErr := apperror.MapValidationError(err)
		response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message)
		c.Abort()
		return
	}

	u, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, u)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	h.logger.Debug("http update user", zap.Int64("user_id", id))

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update user validation failed", zap.Error(err))
		appErr := apperror.MapValidationError(err)
		response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message)
		c.Abort()
		return
	}

	u, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, u)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	h.logger.Debug("http delete user", zap.Int64("user_id", id))

	found, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	if !found {
		response.Error(c, http.StatusNotFound, apperror.CodeNotFound, usererrors.ErrUserNotFound.Message)
		return
	}

	c.Status(http.StatusNoContent)
}

// Head answers existence checks without a body.
func (h *Handler) Head(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	exists, err := h.svc.Exists(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	if !exists {
		c.Status(http.StatusNotFound)
		return
	}
	c.Status(http.StatusOK)
}

// Exists answers existence checks with a JSON body, for clients that
// cannot issue HEAD.
func (h *Handler) Exists(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	exists, err := h.svc.Exists(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ExistsResponse{Exists: exists})
}
