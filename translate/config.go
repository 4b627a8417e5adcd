package translate

// Config controls translator behaviour.
type Config struct {
	// IgnoreReadErrors skips statements that fail with a translation error
	// instead of aborting the read.
	IgnoreReadErrors bool

	// BulkAnnotationAssertions reads plain annotations reified on a
	// declaration as annotation assertions about the declared entity.
	BulkAnnotationAssertions bool

	// AtomicWrites buffers the triples of each axiom and commits them only
	// when the whole axiom was written.
	AtomicWrites bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		BulkAnnotationAssertions: true,
		AtomicWrites:             true,
	}
}
