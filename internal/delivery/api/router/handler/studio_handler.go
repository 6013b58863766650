package handler

import (
	"log/slog"
	"net/http"

	"forthecos/internal/delivery/api/middleware"
	"forthecos/internal/delivery/api/response"
	"forthecos/internal/domain/entity"
	"forthecos/internal/domain/studio"
	"forthecos/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StudioHandlerParams holds dependencies for StudioHandler, injected by Fx.
type StudioHandlerParams struct {
	fx.In

	StudioUC usecase.StudioUsecase
	Logger   *slog.Logger
}

// StudioHandler exposes the studio session screens. Guests are allowed.
type StudioHandler struct {
	studioUC usecase.StudioUsecase
	logger   *slog.Logger
}

// NewStudioHandler is the constructor for StudioHandler
func NewStudioHandler(params StudioHandlerParams) *StudioHandler {
	return &StudioHandler{
		studioUC: params.StudioUC,
		logger:   params.Logger,
	}
}

// NavigateRequest asks for a top-level screen.
type NavigateRequest struct {
	Step     string     `json:"step" validate:"required,step"`
	TargetID *uuid.UUID `json:"target_id"`
}

// CategoryRequest selects a category.
type CategoryRequest struct {
	CategoryID string `json:"category_id" validate:"required"`
}

// SubcategoryRequest selects a subcategory of the current category.
type SubcategoryRequest struct {
	SubcategoryID string `json:"subcategory_id" validate:"required"`
}

// PromptRequest sets the free-text prompt.
type PromptRequest struct {
	Prompt string `json:"prompt" validate:"max=2000"`
}

// StyleRequest sets the painterly-to-realistic slider.
type StyleRequest struct {
	Intensity *int `json:"intensity" validate:"required,min=0,max=100"`
}

// TransformRequest edits the framing of one surface.
type TransformRequest struct {
	Surface   string  `json:"surface" validate:"omitempty,surface"`
	Op        string  `json:"op" validate:"required,oneof=select set_scale set_offset pan zoom flip_h flip_v reset"`
	Scale     float64 `json:"scale"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	DX        float64 `json:"dx"`
	DY        float64 `json:"dy"`
	ViewportW float64 `json:"viewport_w"`
	ViewportH float64 `json:"viewport_h"`
}

// SaveRequest optionally overrides the draft visibility.
type SaveRequest struct {
	IsPublic *bool `json:"is_public"`
}

// SaveResponse is the persisted artifact with refreshed listings.
type SaveResponse struct {
	GenerationID uuid.UUID            `json:"generation_id"`
	Session      *studio.Snapshot     `json:"session"`
	Gallery      []*entity.Generation `json:"gallery"`
	Feed         []*entity.Generation `json:"feed,omitempty"`
}

// CheckoutResponse is the pending order and where to pay for it.
type CheckoutResponse struct {
	Order       *entity.PhysicalOrder `json:"order"`
	RedirectURL string                `json:"redirect_url"`
	Session     *studio.Snapshot      `json:"session,omitempty"`
}

// RenderQuery picks the surface to rasterize.
type RenderQuery struct {
	Surface string `query:"surface" validate:"omitempty,surface"`
	Export  bool   `query:"export"`
}

func (h *StudioHandler) ref(c echo.Context) usecase.SessionRef {
	return usecase.SessionRef{ID: c.Param("id"), Viewer: middleware.GetPrincipal(c)}
}

// Start opens a new session.
func (h *StudioHandler) Start(c echo.Context) error {
	snap, err := h.studioUC.Start(c.Request().Context(), middleware.GetPrincipal(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, snap)
}

// Get returns the session and its view.
func (h *StudioHandler) Get(c echo.Context) error {
	snap, err := h.studioUC.Get(c.Request().Context(), h.ref(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snap)
}

// Navigate moves to a top-level screen.
func (h *StudioHandler) Navigate(c echo.Context) error {
	var req NavigateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid navigation input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	snap, err := h.studioUC.Navigate(c.Request().Context(), h.ref(c), usecase.NavigateInput{
		Step:   studio.Step(req.Step),
		Target: req.TargetID,
	})

	return h.snapshot(c, snap, err)
}

// Back moves to the parent screen.
func (h *StudioHandler) Back(c echo.Context) error {
	snap, err := h.studioUC.Back(c.Request().Context(), h.ref(c))

	return h.snapshot(c, snap, err)
}

// Upload stores the source photo, sent as multipart "image" or a JSON data URL.
func (h *StudioHandler) Upload(c echo.Context) error {
	input, err := readUpload(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_IMAGE", err.Error())
	}

	snap, err := h.studioUC.Upload(c.Request().Context(), h.ref(c), input)

	return h.snapshot(c, snap, err)
}

// SelectCategory picks the category.
func (h *StudioHandler) SelectCategory(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	snap, err := h.studioUC.SelectCategory(c.Request().Context(), h.ref(c), req.CategoryID)

	return h.snapshot(c, snap, err)
}

// SelectSubcategory picks the subcategory.
func (h *StudioHandler) SelectSubcategory(c echo.Context) error {
	var req SubcategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subcategory input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	snap, err := h.studioUC.SelectSubcategory(c.Request().Context(), h.ref(c), req.SubcategoryID)

	return h.snapshot(c, snap, err)
}

// SetPrompt stores the custom prompt.
func (h *StudioHandler) SetPrompt(c echo.Context) error {
	var req PromptRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid prompt input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	snap, err := h.studioUC.SetPrompt(c.Request().Context(), h.ref(c), req.Prompt)

	return h.snapshot(c, snap, err)
}

// SetStyle stores the style intensity.
func (h *StudioHandler) SetStyle(c echo.Context) error {
	var req StyleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid style input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	snap, err := h.studioUC.SetStyleIntensity(c.Request().Context(), h.ref(c), *req.Intensity)

	return h.snapshot(c, snap, err)
}

// Process runs the generation. A failed run still returns the session,
// which is back on the screen the user can retry from.
func (h *StudioHandler) Process(c echo.Context) error {
	snap, err := h.studioUC.Process(c.Request().Context(), h.ref(c))
	if err != nil {
		if snap != nil {
			return response.HandleAppErrorWithData(c, err, snap)
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snap)
}

// UpdateTransform edits the framing.
func (h *StudioHandler) UpdateTransform(c echo.Context) error {
	var req TransformRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid transform input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	snap, err := h.studioUC.UpdateTransform(c.Request().Context(), h.ref(c), usecase.TransformInput{
		Surface:   entity.Surface(req.Surface),
		Op:        usecase.TransformOp(req.Op),
		Scale:     req.Scale,
		X:         req.X,
		Y:         req.Y,
		DX:        req.DX,
		DY:        req.DY,
		ViewportW: req.ViewportW,
		ViewportH: req.ViewportH,
	})

	return h.snapshot(c, snap, err)
}

// UpdateDraft edits the result draft.
func (h *StudioHandler) UpdateDraft(c echo.Context) error {
	var edit studio.DraftEdit
	if err := c.Bind(&edit); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid draft input")
	}

	snap, err := h.studioUC.UpdateDraft(c.Request().Context(), h.ref(c), edit)

	return h.snapshot(c, snap, err)
}

// Edit loads a saved generation back into the session.
func (h *StudioHandler) Edit(c echo.Context) error {
	generationID, ok := parseIDParam(c, "generationId")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid generation ID")
	}

	snap, err := h.studioUC.Edit(c.Request().Context(), h.ref(c), generationID)

	return h.snapshot(c, snap, err)
}

// Save persists the draft.
func (h *StudioHandler) Save(c echo.Context) error {
	var req SaveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid save input")
	}

	out, err := h.studioUC.Save(c.Request().Context(), h.ref(c), usecase.SaveInput{IsPublic: req.IsPublic})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SaveResponse{
		GenerationID: out.GenerationID,
		Session:      out.Session,
		Gallery:      out.Gallery,
		Feed:         out.Feed,
	})
}

// Render returns the composed PNG of a surface.
func (h *StudioHandler) Render(c echo.Context) error {
	var query RenderQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid render query")
	}
	if err := c.Validate(&query); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	png, err := h.studioUC.Render(c.Request().Context(), h.ref(c), usecase.RenderInput{
		Surface: entity.Surface(query.Surface),
		Export:  query.Export,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if query.Export {
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="forthecos-`+exportName(query.Surface)+`.png"`)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Checkout creates a pending print order for the result.
func (h *StudioHandler) Checkout(c echo.Context) error {
	out, err := h.studioUC.Checkout(c.Request().Context(), h.ref(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, CheckoutResponse{
		Order:       out.Order,
		RedirectURL: out.RedirectURL,
		Session:     out.Session,
	})
}

func (h *StudioHandler) snapshot(c echo.Context, snap *studio.Snapshot, err error) error {
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snap)
}

func exportName(surface string) string {
	if surface == "" {
		return "artifact"
	}

	return surface
}
