package fbdraw

// EngineOption configures an Engine during creation.
//
// Example:
//
//	// Headless engine with an in-memory device
//	eng, err := fbdraw.NewEngine(screen, fbdraw.WithDevice(fbdraw.NewDeviceBuffer(640, 480)))
//
//	// Custom font backend (dependency injection)
//	eng, err := fbdraw.NewEngine(screen, fbdraw.WithFontLoader(myLoader))
type EngineOption func(*engineOptions)

type engineOptions struct {
	device *DeviceBuffer
	fonts  FontLoader
}

func defaultOptions() engineOptions {
	return engineOptions{
		device: nil, // device-relative operations return ErrNoDevice
		fonts:  nil, // replaced by text.NewFileLoader in NewEngine
	}
}

// WithDevice attaches the destination buffer used by Engine.Render,
// Engine.AllocateCanvas and the width/height fraction helpers.
func WithDevice(d *DeviceBuffer) EngineOption {
	return func(o *engineOptions) {
		o.device = d
	}
}

// WithFontLoader sets the font collaborator used by Engine.RenderText.
func WithFontLoader(l FontLoader) EngineOption {
	return func(o *engineOptions) {
		o.fonts = l
	}
}
