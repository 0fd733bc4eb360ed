package trace

type nopTracer struct{}

func (nopTracer) Emit(Event)   {}
func (nopTracer) Flush() error { return nil }
func (nopTracer) Close() error { return nil }
func (nopTracer) Level() Level { return LevelOff }

// Nop discards everything; FromContext returns it when no tracer is set.
var Nop Tracer = nopTracer{}
