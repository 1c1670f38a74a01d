// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"errors"
	"image/color"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// DPI is the resolution of exported images.
const DPI = 300

// An OutputError reports a failure to write an image file.
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e *OutputError) Unwrap() error {
	return e.Err
}

// WritePNG draws f at the given resolution and writes it to w as a
// PNG on a white background. The image covers the whole figure,
// legend included.
func (f *Figure) WritePNG(w io.Writer, dpi int) error {
	width, height := f.Size()
	c := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(dpi), vgimg.UseBackgroundColor(color.White))
	f.Draw(draw.New(c))
	_, err := vgimg.PngCanvas{Canvas: c}.WriteTo(w)
	return err
}

// SavePNG writes f to the file path as a PNG. Errors are reported as
// an *OutputError. The image is written to a temporary file next to
// path and renamed over it once complete, so a failed save leaves any
// existing file at path untouched.
func (f *Figure) SavePNG(path string, dpi int) (err error) {
	mode := fs.FileMode(0644)
	if st, err := os.Stat(path); err == nil {
		if !st.Mode().IsRegular() {
			return &OutputError{Path: path, Err: errors.New("not a regular file")}
		}
		mode = st.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return outputError(path, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := f.WritePNG(tmp, dpi); err != nil {
		return outputError(path, err)
	}
	if err := tmp.Chmod(mode); err != nil {
		return outputError(path, err)
	}
	if err := tmp.Close(); err != nil {
		return outputError(path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return outputError(path, err)
	}
	return nil
}

func outputError(path string, err error) error {
	var pe *os.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	return &OutputError{Path: path, Err: err}
}
