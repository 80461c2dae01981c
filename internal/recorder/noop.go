package recorder

// NoopRecorder discards reports, used when output.dry_run is set.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) Append(_ string) error { return nil }
func (n *NoopRecorder) Close() error          { return nil }
