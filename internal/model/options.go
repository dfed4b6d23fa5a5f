package model

// Options configures the behaviour of the Analyzer. Options are constructed by
// the public adapter in pkg/model and passed into New.
type Options struct {
	// SampleLimit caps how many samples one run examines. Zero or negative
	// falls back to DefaultSampleLimit.
	SampleLimit int

	// Merge resolves type conflicts between samples. Nil falls back to
	// FirstSeenWins.
	Merge MergeFunc

	// ReservedKeys lists keys excluded from inference in addition to the
	// built-in identity and revision keys.
	ReservedKeys []string
}

// DefaultSampleLimit bounds inference cost at O(limit × average field count).
// Correctness on large heterogeneous exports is traded for predictable,
// near-constant-time runs.
const DefaultSampleLimit = 10

// Keys the document store manages itself; they never enter the field model.
const (
	IdentityKey = "_id"
	RevisionKey = "__v"
)

func defaultOptions() Options {
	return Options{
		SampleLimit: DefaultSampleLimit,
		Merge:       FirstSeenWins,
	}
}
