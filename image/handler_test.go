package image

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngEncode = EncodeByName(WriteOption{})

func newTestHandler(t *testing.T, dec DecodeFunc) (*DirHandler, string, string) {
	from := t.TempDir() + "/"
	to := t.TempDir() + "/"
	if dec == nil {
		dec = DecodeFile
	}
	return NewDirHandler("test", from, to, dec, pngEncode), from, to
}

func TestDirHandlerTailMatch(t *testing.T) {
	h, from, _ := newTestHandler(t, nil)
	for _, name := range []string{"a.png", "b.jpg", "c.png"} {
		writeTestPNG(t, from+name, 4, 4)
	}
	require.NoError(t, os.Mkdir(from+"d.png", 0755))

	var names []string
	it, err := h.Open("png")
	require.NoError(t, err)
	assert.Equal(t, 2, it.Len())
	for it.Next() {
		assert.NotNil(t, it.Image())
		names = append(names, it.Name())
	}
	assert.NoError(t, it.Err())
	assert.Equal(t, []string{"a.png", "c.png"}, names)

	// a raw tail match, not an extension parse
	it, err = h.Open("g")
	require.NoError(t, err)
	assert.Equal(t, 3, it.Len())

	it, err = h.Open("")
	require.NoError(t, err)
	assert.Equal(t, 0, it.Len())
	assert.False(t, it.Next())
}

func TestDirHandlerLazy(t *testing.T) {
	var calls []string
	dec := func(filename string) (image.Image, error) {
		calls = append(calls, filepath.Base(filename))
		return newTestImage(1, 1), nil
	}
	h, from, _ := newTestHandler(t, dec)
	for _, name := range []string{"img1.png", "img2.png"} {
		require.NoError(t, os.WriteFile(from+name, nil, 0644))
	}

	it, err := h.Open(".png")
	require.NoError(t, err)
	assert.Empty(t, calls)
	assert.True(t, it.Next())
	assert.Equal(t, []string{"img1.png"}, calls)
	assert.True(t, it.Next())
	assert.False(t, it.Next())
	assert.False(t, it.Next())
	assert.Nil(t, it.Image())

	// a new Open starts over
	it, err = h.Open(".png")
	require.NoError(t, err)
	assert.True(t, it.Next())
	assert.Equal(t, "img1.png", it.Name())
}

func TestDirHandlerDecodeError(t *testing.T) {
	errBad := errors.New("bad data")
	dec := func(filename string) (image.Image, error) {
		if filepath.Base(filename) == "b.png" {
			return nil, errBad
		}
		return newTestImage(1, 1), nil
	}
	h, from, _ := newTestHandler(t, dec)
	for _, name := range []string{"a.png", "b.png", "c.png"} {
		require.NoError(t, os.WriteFile(from+name, nil, 0644))
	}

	it, err := h.Open("png")
	require.NoError(t, err)
	assert.True(t, it.Next())
	assert.False(t, it.Next())
	assert.ErrorIs(t, it.Err(), errBad)
	assert.Equal(t, "b.png", it.Name())
	assert.Nil(t, it.Image())
	assert.False(t, it.Next())
}

func TestDirHandlerMissingDir(t *testing.T) {
	h := NewDirHandler("test", filepath.Join(t.TempDir(), "nope")+"/", "", DecodeFile, pngEncode)
	_, err := h.Open("png")
	assert.True(t, os.IsNotExist(err))
}

func TestDirHandlerSave(t *testing.T) {
	h, _, to := newTestHandler(t, nil)
	assert.Equal(t, to+"rsz_a.png", h.SavePath("a.png"))

	require.NoError(t, h.Save(newTestImage(5, 3), "a.png"))
	m, err := DecodeFile(to + "rsz_a.png")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 5, 3), m.Bounds())

	// overwrite in place
	require.NoError(t, h.Save(newTestImage(2, 2), "a.png"))
	m, err = DecodeFile(to + "rsz_a.png")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 2), m.Bounds())

	err = h.Save(newTestImage(2, 2), "a.txt")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	_, err = os.Stat(to + "rsz_a.txt")
	assert.True(t, os.IsNotExist(err))
}

func TestDirHandlerString(t *testing.T) {
	h := NewDirHandler("imaging", "in/", "out/", DecodeFile, pngEncode)
	assert.Equal(t, "imaging.FileHandler(in/, out/)", h.String())
	assert.Equal(t, "in/", h.From())
	assert.Equal(t, "out/", h.To())
}
