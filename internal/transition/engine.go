package transition

import "time"

// Step reports what happened during a single Advance call.
type Step struct {
	// Swap is true exactly once per transition: the caller commits the
	// pending page when it sees it.
	Swap bool
	// Done is true on the call that finishes the transition.
	Done bool
}

// View is the read-only state consumed by renderers.
type View struct {
	Active   bool
	Kind     Kind
	Stage    Stage
	Progress float64
	// Opacity of the page being drawn: decreasing for the outgoing page
	// during fade-out, increasing for the incoming one during fade-in.
	Opacity float64
	OffsetX int
	OffsetY int
}

// Engine is a single in-flight transition. The zero value is idle.
type Engine struct {
	spec     Spec
	stage    Stage
	progress float64
	elapsed  time.Duration
	second   bool
	switched bool
}

// Start begins a transition. It returns false when one is already running.
func (e *Engine) Start(spec Spec) bool {
	if e.Active() {
		return false
	}
	*e = Engine{spec: spec}
	switch spec.Kind {
	case KindFade:
		e.stage = StageFadeOut
	case KindSlide:
		e.stage = StageSliding
	default:
		// none still runs one advance so the swap is reported uniformly
		e.stage = StageSliding
	}
	return true
}

// Active reports whether a transition is running.
func (e *Engine) Active() bool {
	return e != nil && e.stage != StageIdle
}

// Spec returns the spec of the running transition.
func (e *Engine) Spec() Spec {
	return e.spec
}

// Switched reports whether the pending swap has already been reported.
func (e *Engine) Switched() bool {
	return e.switched
}

// Advance moves the animation forward by dt.
func (e *Engine) Advance(dt time.Duration) Step {
	var step Step
	if !e.Active() {
		return step
	}
	if dt < 0 {
		dt = 0
	}
	e.elapsed += dt

	switch e.spec.Kind {
	case KindFade:
		e.progress = ratio(e.elapsed, e.spec.Duration/2)
		if !e.second && e.progress >= 1 {
			// overshoot from the fade-out counts toward the fade-in
			e.second = true
			e.stage = StageFadeIn
			e.elapsed -= e.spec.Duration / 2
			e.progress = ratio(e.elapsed, e.spec.Duration/2)
			step.Swap = e.markSwitched()
		}
		if e.second && e.progress >= 1 {
			e.finish()
			step.Done = true
		}
	case KindSlide:
		e.progress = ratio(e.elapsed, e.spec.Duration)
		if !e.second {
			e.second = true
			step.Swap = e.markSwitched()
		}
		if e.progress >= 1 {
			e.finish()
			step.Done = true
		}
	default:
		e.progress = 1
		step.Swap = e.markSwitched()
		e.finish()
		step.Done = true
	}
	return step
}

// View snapshots the engine for rendering.
func (e *Engine) View() View {
	if !e.Active() {
		return View{Opacity: 1}
	}
	v := View{
		Active:   true,
		Kind:     e.spec.Kind,
		Stage:    e.stage,
		Progress: e.progress,
		Opacity:  1,
	}
	switch e.spec.Kind {
	case KindFade:
		if e.stage == StageFadeOut {
			v.Opacity = 1 - e.progress
		} else {
			v.Opacity = e.progress
		}
	case KindSlide:
		dist := int(e.progress * float64(e.spec.Speed))
		switch e.spec.Direction {
		case Up:
			v.OffsetY = -dist
		case Down:
			v.OffsetY = dist
		case Left:
			v.OffsetX = -dist
		case Right:
			v.OffsetX = dist
		}
	}
	return v
}

func (e *Engine) markSwitched() bool {
	if e.switched {
		return false
	}
	e.switched = true
	return true
}

func (e *Engine) finish() {
	e.stage = StageIdle
	e.progress = 1
}

func ratio(elapsed, total time.Duration) float64 {
	if total <= 0 {
		return 1
	}
	r := float64(elapsed) / float64(total)
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
