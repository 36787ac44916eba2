package events

import "github.com/atomicstack/pageflow/internal/logging"

type PageTracer struct{}

var Page = PageTracer{}

func (PageTracer) Switch(from, to string) {
	logging.Trace("page.switch", map[string]interface{}{"from": from, "to": to})
}

// Missing records a lookup for an identifier with no registered factory.
func (PageTracer) Missing(id string) {
	logging.Trace("page.missing", map[string]interface{}{"id": id})
}

func (PageTracer) FactoryPanic(id string, recovered interface{}) {
	logging.Trace("page.factory-panic", map[string]interface{}{"id": id, "panic": recovered})
}

func (PageTracer) Ledger(added int, total int) {
	logging.Trace("page.ledger", map[string]interface{}{"added": added, "total": total})
}
