package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type renderRequest struct {
	Surface string `validate:"required,surface"`
}

type navigateRequest struct {
	Step string `validate:"required,step"`
}

type checkoutRequest struct {
	Item  string `validate:"omitempty,item_type"`
	Email string `validate:"required,email"`
}

func TestValidate_CustomTags(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&renderRequest{Surface: "card_front"}))
	require.NoError(t, v.Validate(&navigateRequest{Step: "GALLERY"}))

	err := v.Validate(&renderRequest{Surface: "poster"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Surface failed on 'surface'")

	err = v.Validate(&navigateRequest{Step: "NOWHERE"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'step'")
}

func TestValidate_JoinsFieldErrors(t *testing.T) {
	v := New()

	err := v.Validate(&checkoutRequest{Item: "poster"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Item failed on 'item_type'")
	assert.Contains(t, err.Error(), "Email failed on 'required'")
}
