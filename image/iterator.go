package image

import (
	"image"
)

// Iterator walks the matched files of one Open call, decoding one file per Next.
// It is single-pass, call Open again to start over.
type Iterator struct {
	dir    string
	names  []string
	decode DecodeFunc
	pos    int

	cur  image.Image
	name string
	err  error
}

// Next decodes the next matched file, it returns false at the end or on the first error
func (it *Iterator) Next() bool {
	it.cur = nil
	if it.err != nil || it.pos >= len(it.names) {
		return false
	}
	name := it.names[it.pos]
	it.pos++
	it.name = name
	m, err := it.decode(it.dir + name)
	if err != nil {
		it.err = err
		return false
	}
	it.cur = m
	return true
}

// Image returns the image decoded by the last Next
func (it *Iterator) Image() image.Image {
	return it.cur
}

// Name returns the source file name of the current image, or of the file that failed to decode
func (it *Iterator) Name() string {
	return it.name
}

// Err returns the decode error that stopped the iteration, if any
func (it *Iterator) Err() error {
	return it.err
}

// Len is the number of matched names
func (it *Iterator) Len() int {
	return len(it.names)
}
