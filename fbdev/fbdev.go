// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fbdev

import (
	"errors"
	"fmt"

	"github.com/gogpu/fbdraw"
)

// DefaultPath is the first framebuffer device.
const DefaultPath = "/dev/fb0"

// Sentinel errors for the fbdev package.
var (
	// ErrUnsupported is returned by Open on platforms without fbdev.
	ErrUnsupported = errors.New("fbdev: framebuffer devices are not supported on this platform")

	// ErrDepth is returned when the device is not 32 bits per pixel.
	ErrDepth = errors.New("fbdev: require 32 bits per pixel")

	// ErrClosed is returned when a closed Framebuffer is used.
	ErrClosed = errors.New("fbdev: framebuffer closed")
)

// Geometry is the part of the device state fbdraw needs.
type Geometry struct {
	ID            string // driver identification
	Width         int    // visible resolution
	Height        int
	VirtualWidth  int // virtual resolution
	VirtualHeight int
	XOffset       int // pan offsets of the visible area
	YOffset       int
	BitsPerPixel  int
	LineLength    int // row stride in bytes
	MemLen        int // size of the device memory in bytes
}

// validate checks the geometry against what fbdraw can drive.
func (g Geometry) validate() error {
	if g.BitsPerPixel != 32 {
		return fmt.Errorf("%w: device has %d", ErrDepth, g.BitsPerPixel)
	}
	if g.Width <= 0 || g.Height <= 0 || g.LineLength < g.Width*fbdraw.BytesPerPixel {
		return fmt.Errorf("fbdev: unusable geometry %dx%d stride %d: %w",
			g.Width, g.Height, g.LineLength, fbdraw.ErrDevice)
	}
	return nil
}

// mapSize returns the number of bytes to map: the device memory length if
// the driver reports one, otherwise the virtual screen.
func (g Geometry) mapSize() int {
	if g.MemLen > 0 {
		return g.MemLen
	}
	return g.LineLength * max(g.VirtualHeight, g.Height+g.YOffset)
}

// buffer describes mem as a device buffer with this geometry.
func (g Geometry) buffer(mem []byte) *fbdraw.DeviceBuffer {
	return &fbdraw.DeviceBuffer{
		Width:   g.Width,
		Height:  g.Height,
		Stride:  g.LineLength,
		XOffset: g.XOffset,
		YOffset: g.YOffset,
		Data:    mem,
	}
}
