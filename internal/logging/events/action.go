package events

import "github.com/atomicstack/pageflow/internal/logging"

type ActionTracer struct{}

var Action = ActionTracer{}

func (ActionTracer) Click(page, button string) {
	logging.Trace("action.click", map[string]interface{}{"page": page, "button": button})
}

func (ActionTracer) Miss(page string, x, y float64) {
	logging.Trace("action.miss", map[string]interface{}{"page": page, "x": x, "y": y})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}
