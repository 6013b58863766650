// Package payment builds static payment-link redirects, parses the tracking
// token they carry and verifies signed automation callbacks.
package payment

import (
	"net/url"
	"strings"

	domainerrors "forthecos/internal/domain/errors"
	"forthecos/internal/errors"

	"github.com/google/uuid"
)

const (
	// TrackingParam is the query parameter the payment provider echoes back.
	TrackingParam = "custom"

	trackingSeparator = "|"
)

// TrackingToken joins the user and order ids the way the automation expects.
func TrackingToken(userID, orderID uuid.UUID) string {
	return userID.String() + trackingSeparator + orderID.String()
}

// BuildRedirectURL appends custom=urlencode(userId|orderId) to link, using
// '&' when link already carries a query string.
func BuildRedirectURL(link string, userID, orderID uuid.UUID) (string, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return "", errors.WithStack(domainerrors.ErrPaymentLinkMissing)
	}

	separator := "?"
	if strings.Contains(link, "?") {
		separator = "&"
	}

	return link + separator + TrackingParam + "=" + url.QueryEscape(TrackingToken(userID, orderID)), nil
}

// ParseTrackingToken splits a tracking token back into its ids. Both the raw
// and the URL-encoded form are accepted.
func ParseTrackingToken(token string) (userID, orderID uuid.UUID, err error) {
	token = strings.TrimSpace(token)
	if decoded, decodeErr := url.QueryUnescape(token); decodeErr == nil {
		token = decoded
	}

	userPart, orderPart, ok := strings.Cut(token, trackingSeparator)
	if !ok {
		return uuid.Nil, uuid.Nil, domainerrors.ErrInvalidTrackingToken.WithDetails("missing separator")
	}

	userID, err = uuid.Parse(userPart)
	if err != nil {
		return uuid.Nil, uuid.Nil, domainerrors.ErrInvalidTrackingToken.WithDetails("invalid user id")
	}

	orderID, err = uuid.Parse(orderPart)
	if err != nil {
		return uuid.Nil, uuid.Nil, domainerrors.ErrInvalidTrackingToken.WithDetails("invalid order id")
	}

	return userID, orderID, nil
}
