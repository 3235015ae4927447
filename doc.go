// Package fbdraw provides a small software compositor for raw framebuffers.
//
// # Overview
//
// fbdraw composites filled rectangles, bitmaps and rendered text into
// in-memory canvases and copies a canvas into a display device buffer.
// All drawing goes through an [Engine], which owns a fixed-capacity stack of
// drawing contexts. The top context carries the translation, colour, font
// and target canvas used by every primitive.
//
// # Quick Start
//
//	screen, _ := fbdraw.NewCanvas(640, 480)
//	dev := fbdraw.NewDeviceBuffer(640, 480)
//	eng, _ := fbdraw.NewEngine(screen, fbdraw.WithDevice(dev))
//
//	eng.Clear(0, 0, 0, 1)
//	eng.SetColor(1, 0, 0, 1)
//	eng.Box(0.25, 0.25, 0.5, 0.5)
//	eng.Render(screen)
//
// # Coordinate System
//
// Positions and sizes passed to [Engine.Translate], [Engine.Box] and
// [Engine.Blit] are fractions of the current target canvas. They are
// converted to whole pixels by truncation toward zero. The origin is the
// top-left corner, X grows right and Y grows down.
//
// # Pixel Format
//
// Pixels are packed 32-bit values A<<24 | R<<16 | G<<8 | B, which is the
// byte order B, G, R, A in memory on little-endian hardware and matches the
// usual 32 bpp Linux framebuffer layout.
//
// # Blending
//
// Alpha-aware primitives use [Blend], an additive formula that attenuates by
// both the source and destination alpha. It is not Porter-Duff source-over.
package fbdraw

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
