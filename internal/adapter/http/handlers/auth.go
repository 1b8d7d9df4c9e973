package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/alipouryousefi/task-manager-back/internal/adapter/http/dto"
	"github.com/alipouryousefi/task-manager-back/internal/adapter/http/mapper"
	"github.com/alipouryousefi/task-manager-back/internal/adapter/http/middleware"
	"github.com/alipouryousefi/task-manager-back/internal/core/domain"
	"github.com/alipouryousefi/task-manager-back/internal/core/ports"
	"github.com/alipouryousefi/task-manager-back/pkg/apierrors"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRequestBody, lang),
		)
		return
	}

	result, err := h.authService.Register(c.Request.Context(), domain.RegisterUserInput{
		Name:             req.Name,
		Email:            req.Email,
		Password:         req.Password,
		ProfileImageURL:  req.ProfileImageURL,
		AdminInviteToken: req.AdminInviteToken,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgUserAlreadyExists, lang),
			)
			return
		}

		zap.L().Error("failed to register user", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailRegister, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToAuthResponse(result))
}

func (h *AuthHandler) Login(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRequestBody, lang),
		)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidCredentials, lang),
			)
			return
		}

		zap.L().Error("failed to login", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailLogin, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToAuthResponse(result))
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	lang := middleware.GetLang(c)

	caller, ok := middleware.GetCaller(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgNotAuthenticated, lang),
		)
		return
	}

	user, err := h.authService.Profile(c.Request.Context(), caller.ID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to load profile", zap.String("user_id", caller.ID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailProfile, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}

// UpdateProfile applies a partial edit and returns a fresh token so the
// client can keep its session after an email change.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	lang := middleware.GetLang(c)

	caller, ok := middleware.GetCaller(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgNotAuthenticated, lang),
		)
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRequestBody, lang),
		)
		return
	}

	result, err := h.authService.UpdateProfile(c.Request.Context(), caller.ID, domain.UpdateProfileInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
			)
		case errors.Is(err, domain.ErrUserAlreadyExists):
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgUserAlreadyExists, lang),
			)
		default:
			zap.L().Error("failed to update profile", zap.String("user_id", caller.ID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateProfile, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, mapper.ToAuthResponse(result))
}
