package script

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/fbdraw"
)

func newTestRunner(t *testing.T, w, h int, opts ...Option) (*Runner, *fbdraw.Engine) {
	t.Helper()
	screen, err := fbdraw.NewCanvas(w, h)
	require.NoError(t, err)
	eng, err := fbdraw.NewEngine(screen, fbdraw.WithDevice(fbdraw.NewDeviceBuffer(w, h)))
	require.NoError(t, err)
	return NewRunner(eng, opts...), eng
}

func mustParse(t *testing.T, src string) *Script {
	t.Helper()
	s, err := Parse([]byte(src))
	require.NoError(t, err)
	return s
}

func TestRunBlitToDevice(t *testing.T) {
	r, eng := newTestRunner(t, 4, 4)
	s := mustParse(t, `
- clear: [0, 0, 0, 0]
- canvas: [0.5, 0.5]
  as: tile
- push: tile
- clear: "#00ff00"
- pop
- blit: [0.5, 0.5, tile]
- render
`)
	require.NoError(t, r.Run(context.Background(), s))

	tile, ok := r.Canvas("tile")
	require.True(t, ok)
	assert.Equal(t, 2, tile.Width())
	assert.Equal(t, 2, tile.Height())
	assert.Equal(t, 1, eng.Depth())

	dev := eng.Device()
	green := fbdraw.Pack(0, 255, 0, 255)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := uint32(0)
			if x >= 2 && y >= 2 {
				want = green
			}
			assert.Equal(t, want, dev.Pixel(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestRunBoxWithTranslate(t *testing.T) {
	r, eng := newTestRunner(t, 4, 4)
	s := mustParse(t, `
- clear: [0, 0, 0, 1]
- color: [1, 0, 0, 1]
- translate: [0.25, 0.25]
- box: [0, 0, 0.5, 0.5]
`)
	require.NoError(t, r.Run(context.Background(), s))

	screen, ok := r.Canvas(ScreenName)
	require.True(t, ok)
	assert.Equal(t, fbdraw.Pack(255, 0, 0, 255), screen.Pixel(1, 1))
	assert.Equal(t, fbdraw.Pack(255, 0, 0, 255), screen.Pixel(2, 2))
	assert.Equal(t, fbdraw.Pack(0, 0, 0, 255), screen.Pixel(0, 0))
	assert.Equal(t, fbdraw.Pack(0, 0, 0, 255), screen.Pixel(3, 3))
	assert.Equal(t, 1, eng.Current().X)
	assert.Equal(t, 1, eng.Current().Y)
}

func TestRunUndefinedCanvas(t *testing.T) {
	r, _ := newTestRunner(t, 4, 4)
	s := mustParse(t, "- render\n- blit: [0, 0, ghost]\n")

	err := r.Run(context.Background(), s)
	require.Error(t, err)

	var ae *ArgumentError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, 2, ae.Line)
	assert.Contains(t, err.Error(), `undefined canvas "ghost"`)
}

func TestRunStackOverflow(t *testing.T) {
	r, eng := newTestRunner(t, 2, 2)
	s := &Script{}
	for i := 0; i < fbdraw.StackCapacity; i++ {
		s.Steps = append(s.Steps, Step{Op: "push", Line: i + 1})
	}

	err := r.Run(context.Background(), s)
	assert.ErrorIs(t, err, fbdraw.ErrStackOverflow)
	assert.Contains(t, err.Error(), "line 32")
	assert.Equal(t, fbdraw.StackCapacity, eng.Depth())
}

func TestRunSleep(t *testing.T) {
	var slept []time.Duration
	r, _ := newTestRunner(t, 2, 2, WithSleep(func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}))
	s := mustParse(t, "- sleep: 0.25\n- sleep: 2\n")

	require.NoError(t, r.Run(context.Background(), s))
	assert.Equal(t, []time.Duration{250 * time.Millisecond, 2 * time.Second}, slept)
}

func TestRunCancelled(t *testing.T) {
	r, _ := newTestRunner(t, 2, 2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Run(ctx, mustParse(t, "- sleep: 10\n"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSleepContext(t *testing.T) {
	assert.NoError(t, sleepContext(context.Background(), 0))
	assert.NoError(t, sleepContext(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sleepContext(ctx, time.Hour), context.Canceled)
}

func TestRunQueries(t *testing.T) {
	clock := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	r, _ := newTestRunner(t, 8, 4, WithClock(func() time.Time { return clock }))
	s := mustParse(t, `
- canvas: [0.5, 0.5]
  as: half
- width: half
- height: half
- now
`)
	require.NoError(t, r.Run(context.Background(), s))
}

func TestRunNoDevice(t *testing.T) {
	screen, err := fbdraw.NewCanvas(2, 2)
	require.NoError(t, err)
	eng, err := fbdraw.NewEngine(screen)
	require.NoError(t, err)

	err = NewRunner(eng).Run(context.Background(), mustParse(t, "- render\n"))
	assert.ErrorIs(t, err, fbdraw.ErrNoDevice)
}

func TestRunText(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "regular.ttf"), goregular.TTF, 0o600))

	r, _ := newTestRunner(t, 64, 32)
	s := mustParse(t, `
- font: [regular.ttf, 1]
- color: [1, 1, 1, 1]
- text: "Hé"
  as: label
- blit: [0, 0, label]
`)
	s.Dir = dir
	require.NoError(t, r.Run(context.Background(), s))

	label, ok := r.Canvas("label")
	require.True(t, ok)
	assert.Positive(t, label.Width())
	assert.Positive(t, label.Height())

	lit := 0
	for _, p := range label.Pix() {
		if p>>24 != 0 {
			lit++
		}
	}
	assert.Positive(t, lit, "no visible glyph pixels")
}

func TestRunTextNotLatin1(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "regular.ttf"), goregular.TTF, 0o600))

	r, _ := newTestRunner(t, 16, 16)
	s := mustParse(t, "- font: [regular.ttf, 1]\n- text: \"€\"\n  as: euro\n")
	s.Dir = dir

	err := r.Run(context.Background(), s)
	assert.ErrorIs(t, err, fbdraw.ErrInvalidArgument)
	_, ok := r.Canvas("euro")
	assert.False(t, ok)
}

func TestRunMissingFont(t *testing.T) {
	r, _ := newTestRunner(t, 16, 16)
	s := mustParse(t, "- font: [missing.ttf, 1]\n- text: x\n  as: x\n")
	s.Dir = t.TempDir()

	err := r.Run(context.Background(), s)
	assert.ErrorIs(t, err, fbdraw.ErrFont)
}
