package image

import (
	"bytes"
	"image"
	"io"
	"os"
	"strings"

	"github.com/go-imsto/imresize/utils"
	"github.com/go-imsto/imresize/utils/hash"
)

// SavePrefix is prepended to every saved file name
const SavePrefix = "rsz_"

// FileHandler reads matching images from one directory and writes them to another
type FileHandler interface {
	// Open starts a new scan of the source directory for names ending with ext
	Open(ext string) (*Iterator, error)
	// Save writes m as SavePrefix+name into the destination directory
	Save(m image.Image, name string) error
	String() string
}

// Backend is a FileHandler bound to one imaging library
type Backend interface {
	FileHandler
	Resize(m image.Image, size Size, opt ResizeOption) (image.Image, error)
	// Filters lists the filter names Resize accepts, the first one is the default
	Filters() []Filter
}

// DecodeFunc decodes one source file
type DecodeFunc func(filename string) (image.Image, error)

// EncodeFunc encodes m into w, the format follows name
type EncodeFunc func(w io.Writer, m image.Image, name string) error

// DirHandler implements FileHandler over a pair of directories.
// Paths are built by plain concatenation, so from and to should end with a separator.
type DirHandler struct {
	from, to string
	label    string
	decode   DecodeFunc
	encode   EncodeFunc
}

var _ FileHandler = (*DirHandler)(nil)

// NewDirHandler ...
func NewDirHandler(label, from, to string, dec DecodeFunc, enc EncodeFunc) *DirHandler {
	return &DirHandler{from: from, to: to, label: label, decode: dec, encode: enc}
}

// From ...
func (h *DirHandler) From() string {
	return h.from
}

// To ...
func (h *DirHandler) To() string {
	return h.to
}

func (h *DirHandler) String() string {
	return h.label + ".FileHandler(" + h.from + ", " + h.to + ")"
}

// Open lists the source directory now and decodes lazily while iterating.
// An empty ext matches nothing.
func (h *DirHandler) Open(ext string) (*Iterator, error) {
	entries, err := os.ReadDir(h.from)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ext != "" && strings.HasSuffix(e.Name(), ext) {
			names = append(names, e.Name())
		}
	}
	logger().Debugw("opened", "handler", h.label, "dir", h.from, "ext", ext, "matched", len(names))
	return &Iterator{dir: h.from, names: names, decode: h.decode}, nil
}

// SavePath returns where Save writes name
func (h *DirHandler) SavePath(name string) string {
	return h.to + SavePrefix + name
}

// Save encodes fully before touching the destination, an encode error leaves no file behind
func (h *DirHandler) Save(m image.Image, name string) error {
	dst := h.SavePath(name)
	var buf bytes.Buffer
	hr := hash.New()
	if err := h.encode(io.MultiWriter(&buf, hr), m, dst); err != nil {
		return err
	}
	if err := utils.SaveFile(dst, buf.Bytes()); err != nil {
		return err
	}
	logger().Debugw("saved", "handler", h.label, "file", dst, "size", hr.Len(), "hash", hr.String())
	return nil
}
