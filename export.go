package sketch

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Format is an export file format.
type Format uint8

const (
	FormatSVG Format = iota
	FormatPNG
)

// String returns the file extension of the format without the dot.
func (f Format) String() string {
	if f == FormatPNG {
		return "png"
	}
	return "svg"
}

// ParseFormat maps "svg" or "png" (any case) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "svg":
		return FormatSVG, nil
	case "png":
		return FormatPNG, nil
	}
	return 0, fmt.Errorf("unknown export format %q", name)
}

// FormatFromPath picks the format from a file name's extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Export writes the drawing to w in the given format.
func (c *Canvas) Export(w io.Writer, f Format) error {
	if f == FormatPNG {
		return c.WritePNG(w)
	}
	return c.WriteSVG(w)
}

// errWriter remembers the first write error so writers without error
// returns can be checked once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
