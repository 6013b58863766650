package handler

import (
	"io"
	"strings"

	"forthecos/internal/usecase"
	"forthecos/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	uploadFormField = "image"
	maxUploadBytes  = 10 << 20
)

// imagePayload is the JSON form of an upload: a base64 data URL.
type imagePayload struct {
	Image string `json:"image" validate:"required"`
}

var errUploadTooLarge = errors.New("image exceeds 10MB")

// readUpload accepts either a multipart file in the "image" field or a JSON
// body carrying a data URL.
func readUpload(c echo.Context) (usecase.UploadInput, error) {
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		return readMultipartUpload(c)
	}

	var req imagePayload
	if err := c.Bind(&req); err != nil {
		return usecase.UploadInput{}, errors.Wrap(err, "invalid upload body")
	}
	if err := c.Validate(&req); err != nil {
		return usecase.UploadInput{}, err
	}

	data, contentType, err := util.DecodeDataURL(req.Image)
	if err != nil {
		return usecase.UploadInput{}, err
	}
	if len(data) > maxUploadBytes {
		return usecase.UploadInput{}, errUploadTooLarge
	}

	return usecase.UploadInput{Data: data, ContentType: contentType}, nil
}

func readMultipartUpload(c echo.Context) (usecase.UploadInput, error) {
	fileHeader, err := c.FormFile(uploadFormField)
	if err != nil {
		return usecase.UploadInput{}, errors.Wrap(err, "missing image file")
	}
	if fileHeader.Size > maxUploadBytes {
		return usecase.UploadInput{}, errUploadTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return usecase.UploadInput{}, errors.WithStack(err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		return usecase.UploadInput{}, errors.WithStack(err)
	}
	if len(data) > maxUploadBytes {
		return usecase.UploadInput{}, errUploadTooLarge
	}

	return usecase.UploadInput{
		Data:        data,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
	}, nil
}

func parseIDParam(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))

	return id, err == nil
}
