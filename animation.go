package solarkit

import (
	"os"

	kitlog "github.com/go-kit/log"
)

// AnimState is the lifecycle state of an Animator.
type AnimState uint8

const (
	Stopped AnimState = iota
	Running
	Paused
)

func (s AnimState) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	case Paused:
		return "paused"
	}
	return "unknown"
}

// FrameSink receives the frames an animation emits. An Accept error aborts
// the tick which produced the frame.
type FrameSink interface {
	Accept(Frame) error
}

// FrameSinkFunc adapts a plain function into a FrameSink.
type FrameSinkFunc func(Frame) error

// Accept calls f.
func (f FrameSinkFunc) Accept(fr Frame) error { return f(fr) }

// Animator drives a renderer over simulated time under an external clock: the
// caller ticks, the animator renders and hands the frame to its sink. It
// keeps no timer of its own, so a display loop and a test drive it the same
// way. One animator at a time may drive a given system.
type Animator struct {
	Dt     float64 // simulated time per tick, may be set before Start
	Origin string  // render frames relative to this body when set

	r      *Renderer
	sink   FrameSink
	state  AnimState
	t      float64
	logger kitlog.Logger
}

// NewAnimator returns a stopped animator feeding frames from r into sink.
// The default Dt divides the renderer span into 2500 ticks.
func NewAnimator(r *Renderer, sink FrameSink) *Animator {
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "system", r.sys.Name)
	a := &Animator{r: r, sink: sink, logger: klog}
	if span, err := r.Span(); err == nil && span > 0 {
		a.Dt = span / 2500
	}
	return a
}

// State returns the current lifecycle state.
func (a *Animator) State() AnimState {
	return a.state
}

// Elapsed returns the simulated time of the last produced frame.
func (a *Animator) Elapsed() float64 {
	return a.t
}

func (a *Animator) frame(t float64) (Frame, error) {
	if a.Origin != "" {
		return a.r.RelativeFrame(a.Origin, t)
	}
	return a.r.Frame(t)
}

// Start acquires the system and emits the frame at t=0. Starting a system
// which is already being animated fails with AlreadyRunningError and leaves
// the running animation untouched.
func (a *Animator) Start() error {
	if a.state != Stopped || a.r.sys.runner != nil {
		return AlreadyRunningError{System: a.r.sys.Name}
	}
	a.t = 0
	fr, err := a.frame(0)
	if err != nil {
		return err
	}
	if err := a.sink.Accept(fr); err != nil {
		return err
	}
	a.r.sys.runner = a
	a.state = Running
	a.logger.Log("level", "info", "subsys", "anim", "status", "started", "dt", a.Dt)
	return nil
}

// Tick advances the animation by Dt under the caller's clock. While running
// it returns the emitted frame. While paused it is a no-op returning no
// frame, so external timers may keep firing. While stopped it returns
// ErrNotRunning. A render or sink failure returns the error and emits
// nothing, leaving the clock advanced past the failed instant.
func (a *Animator) Tick() (*Frame, error) {
	switch a.state {
	case Stopped:
		return nil, ErrNotRunning
	case Paused:
		return nil, nil
	}
	a.t += a.Dt
	fr, err := a.frame(a.t)
	if err != nil {
		return nil, err
	}
	if err := a.sink.Accept(fr); err != nil {
		return nil, err
	}
	return &fr, nil
}

// Pause suspends frame production without losing the clock. Pausing a paused
// animation is a no-op, pausing a stopped one is an error.
func (a *Animator) Pause() error {
	switch a.state {
	case Stopped:
		return ErrNotRunning
	case Running:
		a.state = Paused
		a.logger.Log("level", "info", "subsys", "anim", "status", "paused", "t", a.t)
	}
	return nil
}

// Resume continues a paused animation from where it left. Resuming a running
// animation is a no-op, resuming a stopped one is an error.
func (a *Animator) Resume() error {
	switch a.state {
	case Stopped:
		return ErrNotRunning
	case Paused:
		a.state = Running
		a.logger.Log("level", "info", "subsys", "anim", "status", "resumed", "t", a.t)
	}
	return nil
}

// Stop ends the animation, releases the system and discards the clock.
// Stopping a stopped animator is a no-op. Once Stop returns, no further frame
// reaches the sink until the next Start.
func (a *Animator) Stop() {
	if a.state == Stopped {
		return
	}
	a.logger.Log("level", "notice", "subsys", "anim", "status", "stopped", "t", a.t)
	a.state = Stopped
	a.t = 0
	if a.r.sys.runner == a {
		a.r.sys.runner = nil
	}
}
