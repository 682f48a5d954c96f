package images

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodeTestPNG renders a simple two-tone image as PNG bytes.
func encodeTestPNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x < width/2 {
				img.Set(x, y, color.RGBA{R: 200, G: 40, B: 40, A: 255})
			} else {
				img.Set(x, y, color.RGBA{R: 40, G: 40, B: 200, A: 255})
			}
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestComputeBlurHash(t *testing.T) {
	hash, err := ComputeBlurHash(encodeTestPNG(t, 200, 300))
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
}

func TestComputeBlurHash_SmallImage(t *testing.T) {
	hash, err := ComputeBlurHash(encodeTestPNG(t, 16, 16))
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
}

func TestComputeBlurHash_InvalidData(t *testing.T) {
	_, err := ComputeBlurHash([]byte("not an image"))
	assert.Error(t, err)
}

func TestResizeForBlurHash_MaintainsAspectRatio(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 400, 200))
	small := resizeForBlurHash(img)

	bounds := small.Bounds()
	assert.Equal(t, 64, bounds.Dx())
	assert.Equal(t, 32, bounds.Dy())
}
