package events

import "github.com/atomicstack/pageflow/internal/logging"

type UITracer struct{}

var UI = UITracer{}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

// Unmapped records a terminal key that has no platform event equivalent.
func (UITracer) Unmapped(key string) {
	logging.Trace("ui.unmapped", map[string]interface{}{"key": key})
}
