// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build linux

package fbdev

import (
	"bytes"
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/gogpu/fbdraw"
)

// ioctl requests from linux/fb.h.
const (
	ioctlGetVScreenInfo = 0x4600
	ioctlGetFScreenInfo = 0x4602
)

// fixScreenInfo mirrors struct fb_fix_screeninfo.
type fixScreenInfo struct {
	ID           [16]byte
	SmemStart    uintptr
	SmemLen      uint32
	Type         uint32
	TypeAux      uint32
	Visual       uint32
	XPanStep     uint16
	YPanStep     uint16
	YWrapStep    uint16
	LineLength   uint32
	MmioStart    uintptr
	MmioLen      uint32
	Accel        uint32
	Capabilities uint16
	Reserved     [2]uint16
}

type bitfield struct {
	Offset, Length, MsbRight uint32
}

// varScreenInfo mirrors struct fb_var_screeninfo.
type varScreenInfo struct {
	XRes, YRes               uint32
	XResVirtual, YResVirtual uint32
	XOffset, YOffset         uint32
	BitsPerPixel             uint32
	Grayscale                uint32
	Red, Green, Blue, Transp bitfield
	Nonstd                   uint32
	Activate                 uint32
	Height, Width            uint32
	AccelFlags               uint32
	Pixclock                 uint32
	LeftMargin, RightMargin  uint32
	UpperMargin, LowerMargin uint32
	HsyncLen, VsyncLen       uint32
	Sync                     uint32
	Vmode                    uint32
	Rotate                   uint32
	Colorspace               uint32
	Reserved                 [4]uint32
}

// Framebuffer is an open, memory-mapped framebuffer device.
type Framebuffer struct {
	mu   sync.Mutex
	fd   int
	mem  []byte
	geom Geometry
}

// Open opens the framebuffer device at path and maps its memory.
func Open(path string) (*Framebuffer, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("fbdev: open %s: %w: %w", path, fbdraw.ErrNoDevice, err)
	}

	geom, err := queryGeometry(fd)
	if err == nil {
		err = geom.validate()
	}
	if err != nil {
		_ = unix.Close(fd)
		return nil, fmt.Errorf("fbdev: %s: %w", path, err)
	}

	mem, err := unix.Mmap(fd, 0, geom.mapSize(), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		_ = unix.Close(fd)
		return nil, fmt.Errorf("fbdev: mmap %s: %w", path, err)
	}

	fbdraw.Logger().Info("fbdev: framebuffer opened",
		"path", path, "id", geom.ID,
		"width", geom.Width, "height", geom.Height,
		"stride", geom.LineLength, "xoffset", geom.XOffset, "yoffset", geom.YOffset)

	return &Framebuffer{fd: fd, mem: mem, geom: geom}, nil
}

func queryGeometry(fd int) (Geometry, error) {
	var fix fixScreenInfo
	if err := ioctl(fd, ioctlGetFScreenInfo, unsafe.Pointer(&fix)); err != nil {
		return Geometry{}, fmt.Errorf("FBIOGET_FSCREENINFO: %w", err)
	}
	var v varScreenInfo
	if err := ioctl(fd, ioctlGetVScreenInfo, unsafe.Pointer(&v)); err != nil {
		return Geometry{}, fmt.Errorf("FBIOGET_VSCREENINFO: %w", err)
	}
	return geometryFrom(&fix, &v), nil
}

func geometryFrom(fix *fixScreenInfo, v *varScreenInfo) Geometry {
	id := fix.ID[:]
	if i := bytes.IndexByte(id, 0); i >= 0 {
		id = id[:i]
	}
	return Geometry{
		ID:            string(id),
		Width:         int(v.XRes),
		Height:        int(v.YRes),
		VirtualWidth:  int(v.XResVirtual),
		VirtualHeight: int(v.YResVirtual),
		XOffset:       int(v.XOffset),
		YOffset:       int(v.YOffset),
		BitsPerPixel:  int(v.BitsPerPixel),
		LineLength:    int(fix.LineLength),
		MemLen:        int(fix.SmemLen),
	}
}

func ioctl(fd int, req uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), req, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

// Geometry returns the geometry read when the device was opened.
func (f *Framebuffer) Geometry() Geometry {
	return f.geom
}

// Buffer returns a device buffer backed by the mapped device memory, or
// ErrClosed after Close. The buffer must not be used after Close.
func (f *Framebuffer) Buffer() (*fbdraw.DeviceBuffer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mem == nil {
		return nil, ErrClosed
	}
	return f.geom.buffer(f.mem), nil
}

// Close unmaps the device memory and closes the device. Close is idempotent.
func (f *Framebuffer) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.mem == nil {
		return nil
	}
	err := unix.Munmap(f.mem)
	f.mem = nil
	if cerr := unix.Close(f.fd); err == nil {
		err = cerr
	}
	return err
}
