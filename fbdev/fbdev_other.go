// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !linux

package fbdev

import (
	"github.com/gogpu/fbdraw"
)

// Framebuffer is an open framebuffer device. It cannot be created on this
// platform.
type Framebuffer struct {
	geom Geometry
}

// Open returns ErrUnsupported.
func Open(path string) (*Framebuffer, error) {
	return nil, ErrUnsupported
}

// Geometry returns the zero geometry.
func (f *Framebuffer) Geometry() Geometry {
	return f.geom
}

// Buffer returns ErrUnsupported.
func (f *Framebuffer) Buffer() (*fbdraw.DeviceBuffer, error) {
	return nil, ErrUnsupported
}

// Close does nothing.
func (f *Framebuffer) Close() error {
	return nil
}
