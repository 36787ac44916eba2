package events

import "github.com/atomicstack/pageflow/internal/logging"

type InputTracer struct{}

var Input = InputTracer{}

func (InputTracer) Begin(page, button string, cursor int) {
	logging.Trace("input.begin", map[string]interface{}{"page": page, "button": button, "cursor": cursor})
}

func (InputTracer) End(page, button, reason string) {
	logging.Trace("input.end", map[string]interface{}{"page": page, "button": button, "reason": reason})
}

func (InputTracer) Edit(op, page, button, text string, cursor int) {
	logging.Trace("input."+op, map[string]interface{}{"page": page, "button": button, "text": text, "cursor": cursor})
}

func (InputTracer) Cursor(cursor int, start, end int, selected bool) {
	payload := map[string]interface{}{"cursor": cursor}
	if selected {
		payload["selection"] = []int{start, end}
	}
	logging.Trace("input.cursor", payload)
}

func (InputTracer) Clipboard(op string, err error) {
	payload := map[string]interface{}{"op": op}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("input.clipboard", payload)
}

func (InputTracer) Undo(depth int) {
	logging.Trace("input.undo", map[string]interface{}{"remaining": depth})
}
