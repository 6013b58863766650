package handler

import (
	"log/slog"
	"net/http"

	"forthecos/internal/delivery/api/response"
	"forthecos/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MediaHandlerParams holds dependencies for MediaHandler, injected by Fx.
type MediaHandlerParams struct {
	fx.In

	Storage service.ObjectStorage
	Logger  *slog.Logger
}

// MediaHandler streams stored objects when the bucket has no public URL.
type MediaHandler struct {
	storage service.ObjectStorage
	logger  *slog.Logger
}

// NewMediaHandler is the constructor for MediaHandler
func NewMediaHandler(params MediaHandlerParams) *MediaHandler {
	return &MediaHandler{
		storage: params.Storage,
		logger:  params.Logger,
	}
}

// Serve streams the object named by the wildcard path.
func (h *MediaHandler) Serve(c echo.Context) error {
	reader, contentType, err := h.storage.Open(c.Request().Context(), c.Param("*"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer reader.Close()

	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	// Objects are written once under a unique key.
	c.Response().Header().Set("Cache-Control", "public, max-age=31536000, immutable")

	return c.Stream(http.StatusOK, contentType, reader)
}
