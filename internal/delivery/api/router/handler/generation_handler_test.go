package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"forthecos/internal/domain/entity"
	domainerrors "forthecos/internal/domain/errors"
	mocks "forthecos/internal/mocks/usecase"
	"forthecos/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestGenerationHandler(t *testing.T) (*GenerationHandler, *mocks.MockGenerationUsecase) {
	generationUC := mocks.NewMockGenerationUsecase(t)

	return NewGenerationHandler(GenerationHandlerParams{GenerationUC: generationUC, Logger: newDiscardLogger()}), generationUC
}

func TestGenerationHandler_FeedAsGuest(t *testing.T) {
	h, generationUC := createTestGenerationHandler(t)
	generationUC.EXPECT().Feed(mock.Anything, (*usecase.Principal)(nil)).Return([]*entity.Generation{
		{ID: uuid.New(), Name: "THE LEGENDARY Elven Enclaves", IsPublic: true, LikeCount: 3},
	}, nil)

	c, rec := newJSONContext(http.MethodGet, "/api/v1/feed", "")
	require.NoError(t, h.Feed(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var gens []entity.Generation
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &gens))
	require.Len(t, gens, 1)
	assert.Equal(t, 3, gens[0].LikeCount)
}

func TestGenerationHandler_GetPrivateIsNotFound(t *testing.T) {
	h, generationUC := createTestGenerationHandler(t)
	id := uuid.New()
	generationUC.EXPECT().Get(mock.Anything, id, (*usecase.Principal)(nil)).
		Return(nil, errors.WithStack(domainerrors.ErrGenerationNotFound))

	c, rec := newJSONContext(http.MethodGet, "/api/v1/generations/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGenerationHandler_SetVisibility(t *testing.T) {
	t.Run("requires is_public", func(t *testing.T) {
		h, _ := createTestGenerationHandler(t)
		id := uuid.New()

		c, rec := newJSONContext(http.MethodPut, "/api/v1/generations/"+id.String()+"/visibility", `{}`)
		c.SetParamNames("id")
		c.SetParamValues(id.String())
		signIn(c)

		require.NoError(t, h.SetVisibility(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("forbidden for non-owner", func(t *testing.T) {
		h, generationUC := createTestGenerationHandler(t)
		id := uuid.New()

		c, rec := newJSONContext(http.MethodPut, "/api/v1/generations/"+id.String()+"/visibility", `{"is_public":false}`)
		c.SetParamNames("id")
		c.SetParamValues(id.String())
		userID := signIn(c)

		generationUC.EXPECT().
			SetVisibility(mock.Anything, mock.MatchedBy(func(p usecase.Principal) bool { return p.UserID == userID }), id, false).
			Return(nil, errors.WithStack(domainerrors.ErrForbidden))

		require.NoError(t, h.SetVisibility(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestGenerationHandler_ToggleLike(t *testing.T) {
	h, generationUC := createTestGenerationHandler(t)
	id := uuid.New()

	c, rec := newJSONContext(http.MethodPost, "/api/v1/generations/"+id.String()+"/like", "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	signIn(c)

	generationUC.EXPECT().ToggleLike(mock.Anything, mock.Anything, id).Return(&usecase.LikeOutput{
		Generation: &entity.Generation{ID: id, LikeCount: 8, UserHasLiked: true},
	}, nil)

	require.NoError(t, h.ToggleLike(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var out LikeResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &out))
	assert.Equal(t, 8, out.LikeCount)
	assert.True(t, out.UserHasLiked)
	assert.False(t, out.Reconciled)
}

func TestGenerationHandler_DeleteReturnsNoContent(t *testing.T) {
	h, generationUC := createTestGenerationHandler(t)
	id := uuid.New()

	c, rec := newJSONContext(http.MethodDelete, "/api/v1/generations/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	signIn(c, entity.RoleUser, entity.RoleAdmin)

	generationUC.EXPECT().
		Delete(mock.Anything, mock.MatchedBy(func(p usecase.Principal) bool { return p.IsAdmin() }), id).
		Return(nil)

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
