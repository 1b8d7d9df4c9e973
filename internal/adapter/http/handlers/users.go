package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/alipouryousefi/task-manager-back/internal/adapter/http/mapper"
	"github.com/alipouryousefi/task-manager-back/internal/adapter/http/middleware"
	"github.com/alipouryousefi/task-manager-back/internal/core/domain"
	"github.com/alipouryousefi/task-manager-back/internal/core/ports"
	"github.com/alipouryousefi/task-manager-back/pkg/apierrors"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListMembers returns every member user with their per-status assigned
// task counts. Admin only; enforced at the routing layer.
func (h *UserHandler) ListMembers(c *gin.Context) {
	lang := middleware.GetLang(c)

	overviews, err := h.userService.ListMembers(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list members", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListUsers, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToMemberItems(overviews))
}

func (h *UserHandler) GetUserByID(c *gin.Context) {
	lang := middleware.GetLang(c)

	user, err := h.userService.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to find user", zap.String("user_id", c.Param("id")), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailFindUser, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}
