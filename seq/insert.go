package seq

import "github.com/joshuapare/seqkit/internal/buf"

// Insert inserts x before pos and returns pos. pos == Len appends.
//
// With spare capacity the tail shifts right in place; otherwise the Vector
// reallocates to plan.Recommend(Cap, Len+1). Either way a failure leaves the
// Vector unchanged.
func (v *Vector[T]) Insert(pos int, x T) (int, error) {
	return v.insert("seq.Insert", pos, 1, one(x))
}

// InsertN inserts n copies of x before pos and returns pos.
func (v *Vector[T]) InsertN(pos, n int, x T) (int, error) {
	return v.insert("seq.InsertN", pos, n, one(x))
}

// InsertSlice inserts copies of xs before pos and returns pos. xs may alias
// the Vector's own elements.
func (v *Vector[T]) InsertSlice(pos int, xs ...T) (int, error) {
	return v.insert("seq.InsertSlice", pos, len(xs), Slice(xs).At)
}

// Emplace inserts an element built by ctor before pos and returns pos.
func (v *Vector[T]) Emplace(pos int, ctor func(*T) error) (int, error) {
	if pos == v.end && v.end < v.Cap() {
		return pos, v.failed("seq.Emplace", v.emplaceSpare(ctor))
	}
	return v.insert("seq.Emplace", pos, 1, build(ctor))
}

// InsertFrom inserts every element src yields before pos and returns pos.
//
// A Counted source is inserted with a single capacity decision and the strong
// guarantee. Any other source is consumed once: on failure the elements it
// added are removed, but capacity may have grown.
func (v *Vector[T]) InsertFrom(pos int, src Source[T]) (int, error) {
	const op = "seq.InsertFrom"
	if c, ok := src.(Counted[T]); ok {
		return v.insert(op, pos, max(c.Len(), 0), c.At)
	}
	if err := buf.CheckPosition(pos, v.end); err != nil {
		return pos, v.failed(op, rangeErr(err))
	}
	pos, err := v.insertSinglePass(op, pos, src)
	return pos, v.failed(op, err)
}

func (v *Vector[T]) insert(op string, pos, n int, at func(int) (T, error)) (int, error) {
	if err := buf.CheckPosition(pos, v.end); err != nil {
		return pos, v.failed(op, rangeErr(err))
	}
	return pos, v.failed(op, v.insertAt(op, pos, n, at), "pos", pos, "n", n)
}
