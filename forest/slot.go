package forest

// Slot carries a defaultable collaborator argument by value: either an
// explicit value supplied by the caller or the request to use the library
// default. A learner API takes a Slot wherever it documents a defaultable
// argument and resolves it before use:
//
//	func Learn(opts *Options, stop Slot[StopCriterion]) {
//	    criterion := stop.Resolve(defaultStop)
//	    ...
//	}
//
// The zero Slot requests the default, so callers can also pass
// forest.Slot[T]{} directly.
type Slot[T any] struct {
	value    T
	explicit bool
}

// Explicit wraps a caller-supplied value.
func Explicit[T any](v T) Slot[T] {
	return Slot[T]{value: v, explicit: true}
}

// Default requests the library-chosen fallback.
func Default[T any]() Slot[T] {
	return Slot[T]{}
}

// IsDefault reports whether the slot requests the library default.
func (s Slot[T]) IsDefault() bool {
	return !s.explicit
}

// Resolve returns the explicit value unchanged, or fallback when the slot
// requests the default.
func (s Slot[T]) Resolve(fallback T) T {
	if s.explicit {
		return s.value
	}
	return fallback
}
