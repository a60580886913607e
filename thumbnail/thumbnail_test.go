package thumbnail

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestMakeScalesAndAddsCaptionBand(t *testing.T) {
	thumb, err := Make(pngOf(t, 600, 400), basicfont.Face7x13, DefaultSize)
	require.NoError(t, err)

	out, err := jpeg.Decode(bytes.NewReader(thumb))
	require.NoError(t, err)
	assert.Equal(t, 300, out.Bounds().Dx())
	assert.Equal(t, 200+CaptionHeight, out.Bounds().Dy())
}

func TestMakeDoesNotEnlarge(t *testing.T) {
	thumb, err := Make(pngOf(t, 100, 50), basicfont.Face7x13, DefaultSize)
	require.NoError(t, err)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(thumb))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 50+CaptionHeight, cfg.Height)
}

func TestMakeRejectsGarbage(t *testing.T) {
	_, err := Make([]byte("not an image"), basicfont.Face7x13, DefaultSize)
	assert.Error(t, err)
}

func TestCaption(t *testing.T) {
	assert.Equal(t, "100x100 (PNG) [91.0 B]", Caption(100, 100, "png", 91))
	assert.Equal(t, "1920x1080 (JPEG) [1.5 MiB]", Caption(1920, 1080, "jpeg", 1572864))
}

func TestFit(t *testing.T) {
	cases := []struct {
		w, h, size   int
		wantW, wantH int
	}{
		{600, 400, 300, 300, 200},
		{400, 600, 300, 200, 300},
		{300, 300, 300, 300, 300},
		{10, 5, 300, 10, 5},
		{3000, 1, 300, 300, 1},
	}
	for _, c := range cases {
		w, h := fit(c.w, c.h, c.size)
		assert.Equal(t, c.wantW, w, "%dx%d", c.w, c.h)
		assert.Equal(t, c.wantH, h, "%dx%d", c.w, c.h)
	}
}

func TestLoadFontFallsBackToBuiltin(t *testing.T) {
	face, err := LoadFont("")
	require.NoError(t, err)
	assert.NotNil(t, face)
}

func TestLoadFontMissingExplicitFont(t *testing.T) {
	_, err := LoadFont("/nonexistent/NoSuchFont-Regular.ttf")
	assert.Error(t, err)
}

func TestFindFontIsCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, writeFile(dir+"/sub/DejaVuSerif.TTF"))
	require.NoError(t, writeFile(dir+"/readme.txt"))

	assert.Equal(t, dir+"/sub/DejaVuSerif.TTF", findFont("dejavuserif", []string{dir}))
	assert.Empty(t, findFont("readme", []string{dir}))
	assert.Empty(t, findFont("arial", []string{dir, dir + "/missing"}))
}

func writeFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte("x"), 0644)
}
