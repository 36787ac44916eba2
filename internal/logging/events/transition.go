package events

import "github.com/atomicstack/pageflow/internal/logging"

type TransitionTracer struct{}

var Transition = TransitionTracer{}

func (TransitionTracer) Start(kind, target string, durationMS int64) {
	logging.Trace("transition.start", map[string]interface{}{"kind": kind, "target": target, "duration_ms": durationMS})
}

func (TransitionTracer) Swap(target string) {
	logging.Trace("transition.swap", map[string]interface{}{"target": target})
}

func (TransitionTracer) Finish(kind string) {
	logging.Trace("transition.finish", map[string]interface{}{"kind": kind})
}

// Rejected records a page change refused because an animation is running.
func (TransitionTracer) Rejected(target string) {
	logging.Trace("transition.rejected", map[string]interface{}{"target": target})
}
