package events

import "github.com/atomicstack/pageflow/internal/logging"

type HistoryTracer struct{}

var History = HistoryTracer{}

func (HistoryTracer) Push(page string, size int, evicted int) {
	logging.Trace("history.push", map[string]interface{}{"page": page, "size": size, "evicted": evicted})
}

func (HistoryTracer) Navigate(forward bool, cursor int, page string) {
	logging.Trace("history.navigate", map[string]interface{}{"forward": forward, "cursor": cursor, "page": page})
}

func (HistoryTracer) Refused(reason string) {
	logging.Trace("history.refused", map[string]interface{}{"reason": reason})
}
