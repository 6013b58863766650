package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"forthecos/internal/delivery/api/middleware"
	"forthecos/internal/delivery/api/response"
	"forthecos/internal/domain/entity"
	"forthecos/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultAPILogLimit = 100

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	SettingsUC usecase.SettingsUsecase
	APILogUC   usecase.APILogUsecase
	OrderUC    usecase.OrderUsecase
	Logger     *slog.Logger
}

// AdminHandler serves the admin panel. Routes are gated on the admin role
// and the usecases check it again.
type AdminHandler struct {
	settingsUC usecase.SettingsUsecase
	apiLogUC   usecase.APILogUsecase
	orderUC    usecase.OrderUsecase
	logger     *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		settingsUC: params.SettingsUC,
		apiLogUC:   params.APILogUC,
		orderUC:    params.OrderUC,
		logger:     params.Logger,
	}
}

// SettingsRequest is the editable admin settings.
type SettingsRequest struct {
	DefaultTitle         string  `json:"default_title" validate:"max=60"`
	DefaultDescription   string  `json:"default_description" validate:"max=500"`
	DefaultStatusText    string  `json:"default_status_text" validate:"max=60"`
	PaymentLinkComic     string  `json:"payment_link_comic" validate:"omitempty,url"`
	PaymentLinkCard      string  `json:"payment_link_card" validate:"omitempty,url"`
	PriceComicPrint      float64 `json:"price_comic_print" validate:"gte=0"`
	PriceCardSet         float64 `json:"price_card_set" validate:"gte=0"`
	AutomationWebhookURL string  `json:"automation_webhook_url" validate:"omitempty,url"`
	GenerationEndpoint   string  `json:"generation_endpoint" validate:"omitempty,url"`
	GenerationAPIKey     string  `json:"generation_api_key"`
	GenerationModel      string  `json:"generation_model"`
}

// GetSettings returns the settings with secrets redacted.
func (h *AdminHandler) GetSettings(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.settingsUC.Get().Redacted())
}

// SaveSettings stores the settings.
func (h *AdminHandler) SaveSettings(c echo.Context) error {
	viewer := middleware.GetPrincipal(c)
	if viewer == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid settings input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	saved, err := h.settingsUC.Save(c.Request().Context(), *viewer, entity.AdminSettings{
		DefaultTitle:         req.DefaultTitle,
		DefaultDescription:   req.DefaultDescription,
		DefaultStatusText:    req.DefaultStatusText,
		PaymentLinkComic:     req.PaymentLinkComic,
		PaymentLinkCard:      req.PaymentLinkCard,
		PriceComicPrint:      req.PriceComicPrint,
		PriceCardSet:         req.PriceCardSet,
		AutomationWebhookURL: req.AutomationWebhookURL,
		GenerationEndpoint:   req.GenerationEndpoint,
		GenerationAPIKey:     req.GenerationAPIKey,
		GenerationModel:      req.GenerationModel,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, saved.Redacted())
}

// ReloadSettings re-reads the stored settings.
func (h *AdminHandler) ReloadSettings(c echo.Context) error {
	settings, err := h.settingsUC.Reload(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings.Redacted())
}

// ListAPILogs returns the newest generation calls.
func (h *AdminHandler) ListAPILogs(c echo.Context) error {
	viewer := middleware.GetPrincipal(c)
	if viewer == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	limit := defaultAPILogLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "limit must be a number")
		}
		limit = parsed
	}

	logs, err := h.apiLogUC.List(c.Request().Context(), *viewer, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, logs)
}

// ClearAPILogs deletes every recorded call.
func (h *AdminHandler) ClearAPILogs(c echo.Context) error {
	viewer := middleware.GetPrincipal(c)
	if viewer == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.apiLogUC.Clear(c.Request().Context(), *viewer); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListOrders returns every order.
func (h *AdminHandler) ListOrders(c echo.Context) error {
	viewer := middleware.GetPrincipal(c)
	if viewer == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orders, err := h.orderUC.ListAll(c.Request().Context(), *viewer)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// GetOrder returns any order.
func (h *AdminHandler) GetOrder(c echo.Context) error {
	viewer := middleware.GetPrincipal(c)
	if viewer == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.Get(c.Request().Context(), *viewer, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}
