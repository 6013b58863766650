package handler

import (
	"log/slog"
	"net/http"

	"forthecos/internal/delivery/api/middleware"
	"forthecos/internal/delivery/api/response"
	"forthecos/internal/domain/entity"
	"forthecos/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves the caller's profile and public creator pages.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// UpdateProfileRequest edits the profile. Omitted fields are left unchanged.
type UpdateProfileRequest struct {
	DisplayName *string             `json:"display_name"`
	Socials     *entity.SocialLinks `json:"socials"`
}

// Get returns the caller's profile.
func (h *ProfileHandler) Get(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	profile, err := h.profileUC.Get(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// Update edits the caller's profile.
func (h *ProfileHandler) Update(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	profile, err := h.profileUC.Update(c.Request().Context(), userID, &usecase.UpdateProfileInput{
		DisplayName: req.DisplayName,
		Socials:     req.Socials,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// UploadAvatar replaces the caller's avatar.
func (h *ProfileHandler) UploadAvatar(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	input, err := readUpload(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_IMAGE", err.Error())
	}

	profile, err := h.profileUC.UploadAvatar(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// GetPublic returns a creator page.
func (h *ProfileHandler) GetPublic(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid profile ID")
	}

	out, err := h.profileUC.GetPublic(c.Request().Context(), id, middleware.GetPrincipal(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"profile":     out.Profile,
		"socials":     out.Socials,
		"generations": out.Generations,
	})
}
