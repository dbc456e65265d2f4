package logging

// The NullTracer is a Tracer that does nothing.
// It is useful for embedding.
type NullTracer struct{}

var _ Tracer = &NullTracer{}

func (n NullTracer) BuiltPacket(*BuiltPacket) {}
