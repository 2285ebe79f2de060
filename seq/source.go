package seq

import "iter"

// Source yields elements one at a time and can be consumed only once.
// Next returns ok == false when exhausted. An error aborts the operation
// consuming the source, which then rolls back.
type Source[T any] interface {
	Next() (x T, ok bool, err error)
}

// Counted is a Source that knows how many elements remain and can read them
// without consuming. Operations given a Counted source size storage once,
// exactly, and never call Next.
type Counted[T any] interface {
	Source[T]
	// Len is the number of elements remaining.
	Len() int
	// At returns the element i positions past the current one.
	At(i int) (T, error)
}

type sliceSource[T any] struct {
	s   []T
	pos int
}

// Slice adapts s as a Counted source. s is read, never modified.
func Slice[T any](s []T) Counted[T] { return &sliceSource[T]{s: s} }

func (s *sliceSource[T]) Next() (T, bool, error) {
	if s.pos >= len(s.s) {
		var zero T
		return zero, false, nil
	}
	s.pos++
	return s.s[s.pos-1], true, nil
}

func (s *sliceSource[T]) Len() int { return len(s.s) - s.pos }

func (s *sliceSource[T]) At(i int) (T, error) { return s.s[s.pos+i], nil }

type funcSource[T any] struct {
	n, pos int
	f      func(i int) (T, error)
}

// Func adapts f as a Counted source of n elements f(0) .. f(n-1).
func Func[T any](n int, f func(i int) (T, error)) Counted[T] {
	return &funcSource[T]{n: n, f: f}
}

func (s *funcSource[T]) Next() (T, bool, error) {
	if s.pos >= s.n {
		var zero T
		return zero, false, nil
	}
	x, err := s.f(s.pos)
	if err != nil {
		return x, false, err
	}
	s.pos++
	return x, true, nil
}

func (s *funcSource[T]) Len() int { return s.n - s.pos }

func (s *funcSource[T]) At(i int) (T, error) { return s.f(s.pos + i) }

type seqSource[T any] struct {
	next func() (T, bool)
	stop func()
}

// Seq adapts an iterator as a single-pass source. Operations that consume it
// stop the underlying iterator when they return.
func Seq[T any](s iter.Seq[T]) Source[T] {
	next, stop := iter.Pull(s)
	return &seqSource[T]{next: next, stop: stop}
}

func (s *seqSource[T]) Next() (T, bool, error) {
	x, ok := s.next()
	return x, ok, nil
}

// Stop releases the underlying iterator.
func (s *seqSource[T]) Stop() { s.stop() }

// Generator adapts a function as a single-pass source.
//
//	n := 0
//	src := seq.Generator[int](func() (int, bool, error) {
//	    n++
//	    return n, n <= 3, nil
//	})
type Generator[T any] func() (T, bool, error)

// Next calls g.
func (g Generator[T]) Next() (T, bool, error) { return g() }
