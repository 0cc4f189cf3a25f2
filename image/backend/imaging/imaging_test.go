package backend

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cimg "github.com/go-imsto/imresize/image"
)

func newImage(w, h int) image.Image {
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	return m
}

func writePNG(t *testing.T, filename string, w, h int) {
	t.Helper()
	f, err := os.Create(filename)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, newImage(w, h)))
}

func TestResize(t *testing.T) {
	b := New("", "", cimg.WriteOption{})
	src := newImage(400, 200)
	tests := []struct {
		name string
		size cimg.Size
		opt  cimg.ResizeOption
		w, h int
	}{
		{"scale", cimg.Size{Width: 128, Height: 128}, cimg.ResizeOption{}, 128, 128},
		{"scale up", cimg.Size{Width: 800, Height: 500}, cimg.ResizeOption{Filter: "nearest"}, 800, 500},
		{"keep ratio", cimg.Size{Width: 100}, cimg.ResizeOption{}, 100, 50},
		{"fit", cimg.Size{Width: 100, Height: 100}, cimg.ResizeOption{Mode: cimg.ModeFit}, 100, 50},
		{"fit never enlarges", cimg.Size{Width: 800, Height: 800}, cimg.ResizeOption{Mode: cimg.ModeFit}, 400, 200},
		{"crop", cimg.Size{Width: 100, Height: 100}, cimg.ResizeOption{Mode: cimg.ModeCrop, Filter: "box"}, 100, 100},
		{"crop zero side", cimg.Size{Height: 50}, cimg.ResizeOption{Mode: cimg.ModeCrop}, 100, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := b.Resize(src, tt.size, tt.opt)
			require.NoError(t, err)
			assert.Equal(t, tt.w, m.Bounds().Dx())
			assert.Equal(t, tt.h, m.Bounds().Dy())
		})
	}
}

func TestResizeSameSize(t *testing.T) {
	b := New("", "", cimg.WriteOption{})
	m, err := b.Resize(newImage(64, 32), cimg.Size{Width: 64, Height: 32}, cimg.ResizeOption{})
	assert.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 32), m.Bounds())
}

func TestResizeRejects(t *testing.T) {
	b := New("", "", cimg.WriteOption{})
	_, err := b.Resize(newImage(4, 4), cimg.Size{Width: 2, Height: 2}, cimg.ResizeOption{Filter: "bicubic"})
	assert.ErrorIs(t, err, cimg.ErrUnsupportedFilter)

	_, err = b.Resize(newImage(4, 4), cimg.Size{}, cimg.ResizeOption{})
	assert.ErrorIs(t, err, cimg.ErrInvalidSize)
}

func TestFilters(t *testing.T) {
	b := New("", "", cimg.WriteOption{})
	assert.Equal(t, cimg.Filter("lanczos"), b.Filters()[0])
	assert.Len(t, filters, len(b.Filters()))
	for _, f := range b.Filters() {
		_, ok := filters[f]
		assert.True(t, ok, f)
	}
}

func TestOpenSave(t *testing.T) {
	from := t.TempDir() + "/"
	to := t.TempDir() + "/"
	writePNG(t, from+"a.png", 30, 20)
	writePNG(t, from+"b.jpg.bak", 30, 20)

	b, err := cimg.NewBackend(Name, from, to, cimg.WriteOption{Quality: 90})
	require.NoError(t, err)
	assert.Equal(t, "imaging.FileHandler("+from+", "+to+")", b.String())

	it, err := b.Open("png")
	require.NoError(t, err)
	require.True(t, it.Next())
	assert.Equal(t, "a.png", it.Name())
	m, err := b.Resize(it.Image(), cimg.Size{Width: 10, Height: 10}, cimg.ResizeOption{})
	require.NoError(t, err)
	require.NoError(t, b.Save(m, it.Name()))
	assert.False(t, it.Next())
	assert.NoError(t, it.Err())

	out, err := imaging.Open(to + "rsz_a.png")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 10, 10), out.Bounds())

	// jpeg goes through imaging's own encoder
	require.NoError(t, b.Save(m, "a.jpg"))
	_, err = os.Stat(to + "rsz_a.jpg")
	assert.NoError(t, err)

	err = b.Save(m, "a.webp")
	assert.ErrorIs(t, err, imaging.ErrUnsupportedFormat)
}
