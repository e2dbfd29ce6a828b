package binder

// tracef writes one trace-log line tagged with this bind run's model
// ID, if a Trace logger was configured (SPEC_FULL.md §2.3). It is a
// no-op otherwise, so call sites never need to guard on Trace == nil
// themselves.
func (b *Binder) tracef(format string, args ...interface{}) {
	if b.Trace == nil {
		return
	}
	b.Trace.Printf("[%s] "+format, append([]interface{}{b.model.ID}, args...)...)
}
