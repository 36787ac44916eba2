// Package transition implements the page transition state machine. An Engine
// is driven by elapsed frame time and reports when the pending page swap must
// be committed; it owns no page state itself.
package transition

import (
	"fmt"
	"time"
)

// Kind selects the animation style.
type Kind int

const (
	KindNone Kind = iota
	KindFade
	KindSlide
)

func (k Kind) String() string {
	switch k {
	case KindFade:
		return "fade"
	case KindSlide:
		return "slide"
	default:
		return "none"
	}
}

// Direction is the axis a slide moves the outgoing page along.
type Direction int

const (
	Down Direction = iota
	Up
	Right
	Left
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Left:
		return "left"
	default:
		return "down"
	}
}

// Spec describes a transition attached to a button.
type Spec struct {
	Kind      Kind
	Duration  time.Duration
	Direction Direction
	// Speed is the slide distance in logical pixels at progress 1.
	Speed int
}

// Fade returns a fade spec lasting d across both stages.
func Fade(d time.Duration) *Spec {
	return &Spec{Kind: KindFade, Duration: d}
}

// Slide returns a slide spec moving the outgoing page speed pixels along dir.
func Slide(d time.Duration, dir Direction, speed int) *Spec {
	return &Spec{Kind: KindSlide, Duration: d, Direction: dir, Speed: speed}
}

func (s Spec) String() string {
	if s.Kind == KindSlide {
		return fmt.Sprintf("slide(%s,%dpx,%s)", s.Direction, s.Speed, s.Duration)
	}
	return fmt.Sprintf("%s(%s)", s.Kind, s.Duration)
}

// Stage is the engine's position in its state machine.
type Stage int

const (
	StageIdle Stage = iota
	StageFadeOut
	StageFadeIn
	StageSliding
)

func (s Stage) String() string {
	switch s {
	case StageFadeOut:
		return "fade-out"
	case StageFadeIn:
		return "fade-in"
	case StageSliding:
		return "sliding"
	default:
		return "idle"
	}
}
