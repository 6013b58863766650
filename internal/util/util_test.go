package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "megabyte", bytes: 12 * 1024 * 1024, expected: "12.0 MB"},
		{name: "gigabyte", bytes: 5 * 1024 * 1024 * 1024, expected: "5.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FormatBytes(tt.bytes))
		})
	}
}

func TestDecodeDataURL(t *testing.T) {
	t.Parallel()

	data, mimeType, err := DecodeDataURL(EncodeDataURL("image/png", []byte("png-bytes")))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
	assert.Equal(t, "image/png", mimeType)

	data, mimeType, err = DecodeDataURL("data:;base64,aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)
	assert.Equal(t, "text/plain; charset=utf-8", mimeType)
}

func TestDecodeDataURL_Invalid(t *testing.T) {
	t.Parallel()

	for _, s := range []string{
		"https://example.com/a.png",
		"data:image/png;base64",
		"data:image/png,raw",
		"data:image/png;base64,!!!",
		"data:image/png;base64,",
	} {
		_, _, err := DecodeDataURL(s)
		assert.Error(t, err, s)
	}
	assert.False(t, IsDataURL("http://x"))
}
