package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"forthecos/internal/domain/entity"
	mocks "forthecos/internal/mocks/usecase"
	"forthecos/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAdminHandler(t *testing.T) (*AdminHandler, *mocks.MockSettingsUsecase, *mocks.MockAPILogUsecase) {
	settingsUC := mocks.NewMockSettingsUsecase(t)
	apiLogUC := mocks.NewMockAPILogUsecase(t)

	h := NewAdminHandler(AdminHandlerParams{
		SettingsUC: settingsUC,
		APILogUC:   apiLogUC,
		OrderUC:    mocks.NewMockOrderUsecase(t),
		Logger:     newDiscardLogger(),
	})

	return h, settingsUC, apiLogUC
}

func TestAdminHandler_GetSettingsRedactsKey(t *testing.T) {
	h, settingsUC, _ := createTestAdminHandler(t)
	settings := entity.DefaultAdminSettings()
	settings.GenerationAPIKey = "secret-key"
	settingsUC.EXPECT().Get().Return(settings)

	c, rec := newJSONContext(http.MethodGet, "/api/v1/admin/settings", "")
	signIn(c, entity.RoleAdmin)

	require.NoError(t, h.GetSettings(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret-key")

	var got entity.AdminSettings
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	assert.Equal(t, "********", got.GenerationAPIKey)
	assert.InDelta(t, 14.99, got.PriceComicPrint, 0.001)
}

func TestAdminHandler_SaveSettingsValidates(t *testing.T) {
	h, _, _ := createTestAdminHandler(t)

	c, rec := newJSONContext(http.MethodPut, "/api/v1/admin/settings", `{"payment_link_comic":"not a url","price_card_set":-1}`)
	signIn(c, entity.RoleAdmin)

	require.NoError(t, h.SaveSettings(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminHandler_SaveSettings(t *testing.T) {
	h, settingsUC, _ := createTestAdminHandler(t)

	c, rec := newJSONContext(http.MethodPut, "/api/v1/admin/settings",
		`{"default_title":"THE MYTHIC","payment_link_card":"https://pay.example.com/card","price_card_set":9.5,"generation_api_key":"k"}`)
	signIn(c, entity.RoleAdmin)

	settingsUC.EXPECT().
		Save(mock.Anything, mock.MatchedBy(func(p usecase.Principal) bool { return p.IsAdmin() }), mock.MatchedBy(func(s entity.AdminSettings) bool {
			return s.DefaultTitle == "THE MYTHIC" && s.PaymentLinkCard == "https://pay.example.com/card" && s.PriceCardSet == 9.5
		})).
		RunAndReturn(func(_ context.Context, _ usecase.Principal, s entity.AdminSettings) (entity.AdminSettings, error) {
			return s, nil
		})

	require.NoError(t, h.SaveSettings(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"generation_api_key":"k"`)
}

func TestAdminHandler_ListAPILogsLimit(t *testing.T) {
	h, _, apiLogUC := createTestAdminHandler(t)

	c, rec := newJSONContext(http.MethodGet, "/api/v1/admin/api-logs?limit=abc", "")
	signIn(c, entity.RoleAdmin)
	require.NoError(t, h.ListAPILogs(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	apiLogUC.EXPECT().List(mock.Anything, mock.Anything, 25).Return([]*entity.APILog{{Model: "gemini-2.5-flash-image"}}, nil)

	c, rec = newJSONContext(http.MethodGet, "/api/v1/admin/api-logs?limit=25", "")
	signIn(c, entity.RoleAdmin)
	require.NoError(t, h.ListAPILogs(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "gemini-2.5-flash-image")
}
