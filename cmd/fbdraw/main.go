// Command fbdraw runs scene scripts against a Linux framebuffer or, in
// headless mode, an in-memory device saved as PNG.
//
// Usage:
//
//	fbdraw run [--fb /dev/fb0] scene.yaml...
//	fbdraw run --png out.png --width 320 --height 240 scene.yaml
//	fbdraw font-info font.ttf...
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/gogpu/fbdraw"
	"github.com/gogpu/fbdraw/text"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "fbdraw: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "fbdraw",
		Usage:   "draw scripted scenes on a framebuffer",
		Version: fbdraw.Version,
		Commands: []*cli.Command{
			runCommand(),
			fontInfoCommand(),
		},
	}
}

func fontInfoCommand() *cli.Command {
	return &cli.Command{
		Name:      "font-info",
		Usage:     "print the family and style of font files",
		ArgsUsage: "FONT...",
		Action: func(c *cli.Context) error {
			if c.Args().Len() == 0 {
				return errors.New("font-info: no font files given")
			}
			w := c.App.Writer
			for _, path := range c.Args().Slice() {
				// #nosec G304 -- font path is provided by the user
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				faces, err := text.Describe(data)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				for i, d := range faces {
					style := "regular"
					if d.Italic {
						style = "italic"
					}
					fmt.Fprintf(w, "%s[%d]\t%s\t%s\tweight=%g\tstretch=%g\tupem=%d\n",
						path, i, d.Family, style, d.Weight, d.Stretch, d.Upem)
				}
			}
			return nil
		},
	}
}

// setupLogging installs a text handler on terminals and a JSON handler
// otherwise.
func setupLogging(level slog.Level) {
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	fd := os.Stderr.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		h = slog.NewTextHandler(os.Stderr, opts)
	} else {
		h = slog.NewJSONHandler(os.Stderr, opts)
	}
	fbdraw.SetLogger(slog.New(h))
}
