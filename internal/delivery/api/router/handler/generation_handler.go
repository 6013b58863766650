package handler

import (
	"log/slog"
	"net/http"

	"forthecos/internal/delivery/api/middleware"
	"forthecos/internal/delivery/api/response"
	"forthecos/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GenerationHandlerParams holds dependencies for GenerationHandler, injected by Fx.
type GenerationHandlerParams struct {
	fx.In

	GenerationUC usecase.GenerationUsecase
	Logger       *slog.Logger
}

// GenerationHandler serves the gallery, the community feed and likes.
type GenerationHandler struct {
	generationUC usecase.GenerationUsecase
	logger       *slog.Logger
}

// NewGenerationHandler is the constructor for GenerationHandler
func NewGenerationHandler(params GenerationHandlerParams) *GenerationHandler {
	return &GenerationHandler{
		generationUC: params.GenerationUC,
		logger:       params.Logger,
	}
}

// VisibilityRequest sets an artifact public or private.
type VisibilityRequest struct {
	IsPublic *bool `json:"is_public" validate:"required"`
}

// LikeResponse is the artifact after a like toggle.
type LikeResponse struct {
	ID           string `json:"id"`
	LikeCount    int    `json:"like_count"`
	UserHasLiked bool   `json:"user_has_liked"`
	Reconciled   bool   `json:"reconciled"`
}

// Feed returns the public artifacts, newest first.
func (h *GenerationHandler) Feed(c echo.Context) error {
	gens, err := h.generationUC.Feed(c.Request().Context(), middleware.GetPrincipal(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, gens)
}

// Get returns one artifact the caller may see.
func (h *GenerationHandler) Get(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid generation ID")
	}

	gen, err := h.generationUC.Get(c.Request().Context(), id, middleware.GetPrincipal(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, gen)
}

// ListMine returns the caller's gallery.
func (h *GenerationHandler) ListMine(c echo.Context) error {
	viewer := middleware.GetPrincipal(c)
	if viewer == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	gens, err := h.generationUC.ListMine(c.Request().Context(), *viewer)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, gens)
}

// ToggleVisibility flips an artifact between public and private.
func (h *GenerationHandler) ToggleVisibility(c echo.Context) error {
	viewer := middleware.GetPrincipal(c)
	if viewer == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid generation ID")
	}

	gen, err := h.generationUC.ToggleVisibility(c.Request().Context(), *viewer, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, gen)
}

// SetVisibility sets an artifact public or private.
func (h *GenerationHandler) SetVisibility(c echo.Context) error {
	viewer := middleware.GetPrincipal(c)
	if viewer == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid generation ID")
	}

	var req VisibilityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid visibility input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	gen, err := h.generationUC.SetVisibility(c.Request().Context(), *viewer, id, *req.IsPublic)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, gen)
}

// Delete removes an artifact owned by the caller.
func (h *GenerationHandler) Delete(c echo.Context) error {
	viewer := middleware.GetPrincipal(c)
	if viewer == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid generation ID")
	}

	if err := h.generationUC.Delete(c.Request().Context(), *viewer, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ToggleLike likes or unlikes an artifact.
func (h *GenerationHandler) ToggleLike(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid generation ID")
	}

	out, err := h.generationUC.ToggleLike(c.Request().Context(), middleware.GetPrincipal(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, LikeResponse{
		ID:           out.Generation.ID.String(),
		LikeCount:    out.Generation.LikeCount,
		UserHasLiked: out.Generation.UserHasLiked,
		Reconciled:   out.Reconciled,
	})
}
