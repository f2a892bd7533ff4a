package spatialmap

// NotPresentError is returned by Map.Update when the target point is absent
// from the map. It carries the value the caller attempted to assign, so it
// is not silently lost — the Rust reference returns it as Err(v); Go's
// analogue is an error that holds v for the caller to recover via Value().
type NotPresentError[V any] struct {
	value V
}

func (e *NotPresentError[V]) Error() string {
	return "spatialmap: point not present"
}

// Value returns the value that was rejected because the target point was
// absent.
func (e *NotPresentError[V]) Value() V {
	return e.value
}

func notPresent[V any](v V) error {
	return &NotPresentError[V]{value: v}
}
