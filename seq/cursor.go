package seq

import "github.com/joshuapare/seqkit/internal/buf"

// Cursor is a position in a Vector. Positions are plain indices, so a
// Cursor stays meaningful across reallocation but not across insertions or
// erasures before it.
type Cursor[T any] struct {
	v   *Vector[T]
	pos int
}

// Begin returns a cursor at the first element.
func (v *Vector[T]) Begin() Cursor[T] { return Cursor[T]{v: v} }

// End returns a cursor one past the last element.
func (v *Vector[T]) End() Cursor[T] { return Cursor[T]{v: v, pos: v.end} }

// Cursor returns a cursor at pos. It is not range checked until dereferenced.
func (v *Vector[T]) Cursor(pos int) Cursor[T] { return Cursor[T]{v: v, pos: pos} }

// Pos returns the cursor's index.
func (c Cursor[T]) Pos() int { return c.pos }

// Add returns the cursor n positions later (earlier for negative n).
func (c Cursor[T]) Add(n int) Cursor[T] { return Cursor[T]{v: c.v, pos: c.pos + n} }

// Next returns the following position.
func (c Cursor[T]) Next() Cursor[T] { return c.Add(1) }

// Prev returns the preceding position.
func (c Cursor[T]) Prev() Cursor[T] { return c.Add(-1) }

// Sub returns the distance c - o.
func (c Cursor[T]) Sub(o Cursor[T]) int { return c.pos - o.pos }

// Less reports whether c precedes o.
func (c Cursor[T]) Less(o Cursor[T]) bool { return c.pos < o.pos }

// Valid reports whether c addresses a live element.
func (c Cursor[T]) Valid() bool { return buf.CheckIndex(c.pos, c.v.end) == nil }

// Value returns the element at c.
func (c Cursor[T]) Value() (T, error) { return c.v.At(c.pos) }

// Ptr returns a pointer to the element at c.
func (c Cursor[T]) Ptr() (*T, error) { return c.v.Ptr(c.pos) }
