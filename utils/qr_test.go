package utils

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateQRCode(t *testing.T) {
	content := ReservationQRContent("abc", "derby-day", "12")
	assert.Equal(t, "reservation:abc;event:derby-day;seat:12", content)

	raw, err := GenerateQRCode(content, 256)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}
