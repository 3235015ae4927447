// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package fbdev acquires a Linux framebuffer device as an
// fbdraw.DeviceBuffer.
//
// Open queries the device geometry with the FBIOGET_FSCREENINFO and
// FBIOGET_VSCREENINFO ioctls, requires 32 bits per pixel and maps the
// device memory. The returned buffer's Data aliases the mapping, so
// fbdraw.Render writes straight to the screen:
//
//	fb, err := fbdev.Open("/dev/fb0")
//	if err != nil {
//	    return err
//	}
//	defer fb.Close()
//
//	dev, err := fb.Buffer()
//	if err != nil {
//	    return err
//	}
//	screen, _ := fbdraw.NewCanvas(dev.Width, dev.Height)
//	eng, _ := fbdraw.NewEngine(screen, fbdraw.WithDevice(dev))
//
// On other platforms Open returns ErrUnsupported.
package fbdev
