package images

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eohue/ibookee-web-sub001/internal/pkg/apperrors"
)

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodedSize(t *testing.T, data []byte) (int, int) {
	t.Helper()
	img, err := webp.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestProcessResizesOversizedImage(t *testing.T) {
	p := NewProcessor(100, 80)

	out, err := p.Process(pngBytes(t, 300, 150))
	require.NoError(t, err)

	w, h := decodedSize(t, out)
	assert.Equal(t, 100, w)
	assert.Equal(t, 50, h, "aspect ratio should be preserved")
}

func TestProcessKeepsSmallImage(t *testing.T) {
	p := NewProcessor(100, 80)

	out, err := p.Process(pngBytes(t, 60, 40))
	require.NoError(t, err)

	w, h := decodedSize(t, out)
	assert.Equal(t, 60, w)
	assert.Equal(t, 40, h)
}

func TestProcessRejectsCorruptData(t *testing.T) {
	p := NewProcessor(100, 80)

	_, err := p.Process([]byte("not an image"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidImage)
}

func TestDimensions(t *testing.T) {
	w, h, err := Dimensions(pngBytes(t, 120, 90))
	require.NoError(t, err)
	assert.Equal(t, 120, w)
	assert.Equal(t, 90, h)

	_, _, err = Dimensions([]byte{0x00, 0x01})
	assert.ErrorIs(t, err, apperrors.ErrInvalidImage)
}
