package payment

import (
	"net/url"
	"testing"

	domainerrors "forthecos/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testUser  = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	testOrder = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

func TestBuildRedirectURL(t *testing.T) {
	tests := []struct {
		name string
		link string
		want string
	}{
		{
			name: "no query uses question mark",
			link: "https://pay.example.com/link/abc",
			want: "https://pay.example.com/link/abc?custom=11111111-1111-1111-1111-111111111111%7C22222222-2222-2222-2222-222222222222",
		},
		{
			name: "existing query uses ampersand",
			link: "https://pay.example.com/link?id=abc",
			want: "https://pay.example.com/link?id=abc&custom=11111111-1111-1111-1111-111111111111%7C22222222-2222-2222-2222-222222222222",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildRedirectURL(tt.link, testUser, testOrder)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildRedirectURL_MissingLink(t *testing.T) {
	_, err := BuildRedirectURL("  ", testUser, testOrder)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentLinkMissing)
}

func TestParseTrackingToken_RoundTrip(t *testing.T) {
	redirect, err := BuildRedirectURL("https://pay.example.com/x", testUser, testOrder)
	require.NoError(t, err)

	parsed, err := url.Parse(redirect)
	require.NoError(t, err)

	userID, orderID, err := ParseTrackingToken(parsed.Query().Get(TrackingParam))
	require.NoError(t, err)
	assert.Equal(t, testUser, userID)
	assert.Equal(t, testOrder, orderID)

	userID, orderID, err = ParseTrackingToken(url.QueryEscape(TrackingToken(testUser, testOrder)))
	require.NoError(t, err)
	assert.Equal(t, testUser, userID)
	assert.Equal(t, testOrder, orderID)
}

func TestParseTrackingToken_Invalid(t *testing.T) {
	for _, token := range []string{"", "nopipe", "bad|" + testOrder.String(), testUser.String() + "|bad"} {
		_, _, err := ParseTrackingToken(token)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidTrackingToken, token)
	}
}

func TestVerify(t *testing.T) {
	body := []byte(`{"custom":"a|b","payment_order_id":"PAY-1","status":"paid"}`)
	sig := Sign("s3cret", body)

	assert.NoError(t, Verify("s3cret", body, sig))
	assert.NoError(t, Verify("s3cret", body, "sha256="+sig))
	assert.ErrorIs(t, Verify("other", body, sig), domainerrors.ErrInvalidSignature)
	assert.ErrorIs(t, Verify("s3cret", append(body, ' '), sig), domainerrors.ErrInvalidSignature)
	assert.ErrorIs(t, Verify("s3cret", body, "zz"), domainerrors.ErrInvalidSignature)
	assert.ErrorIs(t, Verify("", body, sig), domainerrors.ErrInvalidSignature)
}
