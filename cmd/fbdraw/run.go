package main

import (
	"errors"
	"fmt"
	"image/png"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/gogpu/fbdraw"
	"github.com/gogpu/fbdraw/fbdev"
	"github.com/gogpu/fbdraw/internal/config"
	"github.com/gogpu/fbdraw/script"
	"github.com/gogpu/fbdraw/text"
)

func runCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "run scene scripts in order",
		ArgsUsage: "SCRIPT...",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML configuration file"},
			&cli.StringFlag{Name: "fb", Usage: "framebuffer device", EnvVars: []string{"FRAMEBUFFER"}},
			&cli.StringFlag{Name: "png", Aliases: []string{"o"}, Usage: "render headless and write the device image to this PNG file"},
			&cli.IntFlag{Name: "width", Usage: "headless device width"},
			&cli.IntFlag{Name: "height", Usage: "headless device height"},
			&cli.IntFlag{Name: "scale", Usage: "integer scale factor of the PNG snapshot"},
			&cli.StringFlag{Name: "font", Usage: "font selected before the first script"},
			&cli.Float64Flag{Name: "font-size", Usage: "size of --font"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
		},
		Action: runAction,
	}
}

// loadConfig reads the configuration file, if any, and applies flags on
// top of it.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = config.LoadFromFile(path); err != nil {
			return cfg, err
		}
	}

	if c.IsSet("fb") {
		cfg.Device = c.String("fb")
	}
	if c.IsSet("png") {
		cfg.Output = c.String("png")
	}
	if c.IsSet("width") {
		cfg.Width = c.Int("width")
	}
	if c.IsSet("height") {
		cfg.Height = c.Int("height")
	}
	if c.IsSet("scale") {
		cfg.Scale = c.Int("scale")
	}
	if c.IsSet("font") {
		cfg.DefaultFont = c.String("font")
	}
	if c.IsSet("font-size") {
		cfg.DefaultFontSize = c.Float64("font-size")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	return cfg, cfg.Validate()
}

func runAction(c *cli.Context) error {
	if c.Args().Len() == 0 {
		return errors.New("run: no scripts given")
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	level, _ := cfg.Level()
	setupLogging(level)
	log := fbdraw.Logger()

	scripts := make([]*script.Script, 0, c.Args().Len())
	for _, path := range c.Args().Slice() {
		s, err := script.ParseFile(path)
		if err != nil {
			return err
		}
		scripts = append(scripts, s)
	}

	var dev *fbdraw.DeviceBuffer
	if cfg.Headless() {
		dev = fbdraw.NewDeviceBuffer(cfg.Width, cfg.Height)
	} else {
		fb, err := fbdev.Open(cfg.Device)
		if err != nil {
			return err
		}
		defer func() {
			if err := fb.Close(); err != nil {
				log.Warn("fbdraw: close framebuffer", "err", err)
			}
		}()
		if dev, err = fb.Buffer(); err != nil {
			return err
		}
	}

	screen, err := fbdraw.NewCanvas(dev.Width, dev.Height)
	if err != nil {
		return err
	}
	fonts := text.NewFileLoader(text.WithCacheSize(cfg.FontCache))
	defer func() {
		_ = fonts.Close()
	}()

	eng, err := fbdraw.NewEngine(screen, fbdraw.WithDevice(dev), fbdraw.WithFontLoader(fonts))
	if err != nil {
		return err
	}
	if cfg.DefaultFont != "" {
		eng.SetFont(cfg.DefaultFont, cfg.DefaultFontSize)
	}

	runner := script.NewRunner(eng)
	for _, s := range scripts {
		if err := runner.Run(c.Context, s); err != nil {
			return err
		}
	}

	if cfg.Headless() {
		return writeSnapshot(cfg.Output, dev, cfg.Scale)
	}
	return nil
}

func writeSnapshot(path string, dev *fbdraw.DeviceBuffer, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, dev.Snapshot(scale)); err != nil {
		_ = f.Close()
		return fmt.Errorf("fbdraw: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	fbdraw.Logger().Info("fbdraw: snapshot written", "path", path, "scale", scale)
	return nil
}
