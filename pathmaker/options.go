package pathmaker

// Options configures a MakePath call.
//
// MaxExpansions — optional cap on the number of points expanded (popped off
// the frontier and not already visited; stale entries and the goal itself
// are not counted) before giving up and reporting no path. Zero means
// unlimited.
// Grounded on dijkstra.Options.MaxDistance: both are escape hatches for
// callers who need bounded-effort search without timeouts, which A* does
// not support internally (see doc.go).
type Options struct {
	MaxExpansions int
}

// Option is a functional option for MakePath.
type Option func(*Options)

// WithMaxExpansions caps the number of expanded points at n. Panics if n is
// not positive, matching the option-constructor panic idiom used for
// invalid configuration throughout this codebase's ancestry.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

func defaultOptions() Options {
	return Options{MaxExpansions: 0}
}
