package script

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gogpu/fbdraw"
	"github.com/gogpu/fbdraw/text"
)

// Runner executes scripts against one engine. Canvases bound with "as"
// survive between Run calls, so a scene can be split across scripts.
//
// Runner is not safe for concurrent use.
type Runner struct {
	eng      *fbdraw.Engine
	canvases map[string]*fbdraw.Canvas
	sleep    func(context.Context, time.Duration) error
	now      func() time.Time
}

// Option configures a Runner.
type Option func(*Runner)

// WithSleep replaces the function used by the sleep step.
func WithSleep(fn func(context.Context, time.Duration) error) Option {
	return func(r *Runner) {
		r.sleep = fn
	}
}

// WithClock replaces the clock used by the now step.
func WithClock(fn func() time.Time) Option {
	return func(r *Runner) {
		r.now = fn
	}
}

// NewRunner creates a runner for eng. The engine's current target is bound
// to ScreenName.
func NewRunner(eng *fbdraw.Engine, opts ...Option) *Runner {
	r := &Runner{
		eng:      eng,
		canvases: map[string]*fbdraw.Canvas{ScreenName: eng.Current().Target},
		sleep:    sleepContext,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Canvas returns the canvas bound to name.
func (r *Runner) Canvas(name string) (*fbdraw.Canvas, bool) {
	c, ok := r.canvases[name]
	return c, ok
}

// Run executes the steps of s in order and stops at the first error or
// when ctx is done.
func (r *Runner) Run(ctx context.Context, s *Script) error {
	log := fbdraw.Logger()
	start := r.now()

	for i := range s.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		st := &s.Steps[i]
		if err := r.step(ctx, s, st); err != nil {
			return fmt.Errorf("script: line %d: %s: %w", st.Line, st.Op, err)
		}
	}

	log.Info("script: finished", "name", s.Name, "steps", len(s.Steps), "elapsed", r.now().Sub(start))
	return nil
}

func (r *Runner) step(ctx context.Context, s *Script, st *Step) error {
	log := fbdraw.Logger()
	log.Debug("script: step", "line", st.Line, "op", st.Op)

	switch st.Op {
	case "canvas":
		c, err := r.eng.AllocateCanvas(st.Args[0].Num, st.Args[1].Num)
		if err != nil {
			return err
		}
		r.canvases[st.As] = c

	case "font":
		path := st.Args[0].Str
		if s.Dir != "" && !filepath.IsAbs(path) {
			path = filepath.Join(s.Dir, path)
		}
		r.eng.SetFont(path, st.Args[1].Num)

	case "text":
		units, err := text.EncodeLatin1(st.Args[0].Str)
		if err != nil {
			return &ArgumentError{Line: st.Line, Op: st.Op, Msg: err.Error()}
		}
		c, err := r.eng.RenderText(units)
		if err != nil {
			return err
		}
		r.canvases[st.As] = c

	case "clear":
		return r.eng.Clear(st.Color.R, st.Color.G, st.Color.B, st.Color.A)

	case "push":
		var target *fbdraw.Canvas
		if len(st.Args) > 0 {
			c, err := r.lookup(st, 0)
			if err != nil {
				return err
			}
			target = c
		}
		return r.eng.Push(target)

	case "pop":
		r.eng.Pop()

	case "translate":
		r.eng.Translate(st.Args[0].Num, st.Args[1].Num)

	case "color":
		r.eng.SetColor(st.Color.R, st.Color.G, st.Color.B, st.Color.A)

	case "box":
		return r.eng.Box(st.Args[0].Num, st.Args[1].Num, st.Args[2].Num, st.Args[3].Num)

	case "blit":
		c, err := r.lookup(st, 2)
		if err != nil {
			return err
		}
		return r.eng.Blit(st.Args[0].Num, st.Args[1].Num, c)

	case "render":
		c := r.canvases[ScreenName]
		if len(st.Args) > 0 {
			var err error
			if c, err = r.lookup(st, 0); err != nil {
				return err
			}
		}
		return r.eng.Render(c)

	case "sleep":
		d := time.Duration(st.Args[0].Num * float64(time.Second))
		return r.sleep(ctx, d)

	case "width", "height":
		c, err := r.lookup(st, 0)
		if err != nil {
			return err
		}
		var f float64
		if st.Op == "width" {
			f, err = r.eng.CanvasWidthFraction(c)
		} else {
			f, err = r.eng.CanvasHeightFraction(c)
		}
		if err != nil {
			return err
		}
		log.Info("script: "+st.Op, "canvas", st.Args[0].Str, "fraction", f)

	case "now":
		log.Info("script: now", "time", r.now())

	default:
		return &ArgumentError{Line: st.Line, Op: st.Op, Msg: "unknown operation"}
	}
	return nil
}

func (r *Runner) lookup(st *Step, i int) (*fbdraw.Canvas, error) {
	name := st.Args[i].Str
	c, ok := r.canvases[name]
	if !ok {
		return nil, &ArgumentError{Line: st.Line, Op: st.Op, Msg: fmt.Sprintf("undefined canvas %q", name)}
	}
	return c, nil
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
