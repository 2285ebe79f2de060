// Package seq provides Vector, a growable contiguous sequence with amortized
// O(1) append and all-or-nothing mutation under construction or allocation
// failure.
//
// # Overview
//
// A Vector owns one block from an alloc.Provider. Elements live in
// block[0:Len()], the remaining slots are spare. Appending into spare
// constructs in place; appending with no spare reallocates to
// plan.Recommend(Cap, Len+1), which doubles capacity until it hits MaxSize.
//
// Reallocation builds the new elements in a splitbuf.Buffer first, then
// relocates the existing elements around them (moving when the provider
// guarantees moves cannot fail, copying otherwise) and only then releases the
// old block. Any failure on the way releases the new block and leaves the
// Vector as it was.
//
// # Basic Usage
//
//	v := seq.New[int](nil) // alloc.Heap
//	for i := range 5 {
//	    if err := v.Append(i); err != nil {
//	        return err
//	    }
//	}
//	if _, err := v.Insert(2, 99); err != nil {
//	    return err
//	}
//	fmt.Println(v.Data(), v.Cap()) // [0 1 99 2 3 4] 8
//
// Other providers:
//
//	a := alloc.NewArena[int](&alloc.ArenaOptions{Slots: 1 << 12})
//	v := seq.New[int](a)
//
//	m, err := alloc.NewMmap[float64]()
//	v := seq.New[float64](m)
//
// # Sources
//
// InsertFrom, AssignFrom and FromSource accept a Source. Sources that also
// implement Counted (Slice, Func) are sized once and inserted with the strong
// guarantee. Single-pass sources (Seq, Generator) fill spare capacity first,
// stage the remainder and rotate it into place.
//
// # Errors
//
// Every failure is a *types.Error with a kind (length, range, memory,
// construct, state, provider) and is logged through seq/report before it is
// returned:
//
//	if _, err := v.At(10); errors.Is(err, types.ErrOutOfRange) {
//	    ...
//	}
//
// Failed calls leave the Vector in its previous state. The one exception is
// InsertFrom with a single-pass source, which may leave a larger capacity
// behind.
package seq
