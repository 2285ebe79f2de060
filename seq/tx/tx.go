package tx

import (
	"github.com/joshuapare/seqkit/pkg/types"
	"github.com/joshuapare/seqkit/seq/alloc"
)

// Tx is an in-progress run of constructions into a block.
//
// The owner's cursor is read once at Begin and written once at Commit. Between
// the two, constructed slots are owned by the transaction.
type Tx[T any] struct {
	p          alloc.Provider[T]
	block      []T
	owner      *int // owner's end (forward) or begin (backward) cursor
	start      int  // cursor value at Begin
	pos        int  // next slot is block[pos] (forward) or block[pos-1] (backward)
	limit      int  // cursor value at which the transaction is full
	backward   bool
	moveNoFail bool
	done       bool
}

// Begin opens a forward transaction constructing into block[*cursor : *cursor+n].
//
// Parameters:
//   - p: provider performing constructions and destructions
//   - block: the owner's block; the target range must lie within it
//   - cursor: the owner's end cursor, published on Commit
//   - n: maximum number of slots this transaction may construct
func Begin[T any](p alloc.Provider[T], block []T, cursor *int, n int) *Tx[T] {
	start := *cursor
	if n < 0 || start+n > len(block) {
		panic("tx: forward range exceeds block")
	}
	return &Tx[T]{
		p:          p,
		block:      block,
		owner:      cursor,
		start:      start,
		pos:        start,
		limit:      start + n,
		moveNoFail: p.Traits().MoveNoFail,
	}
}

// BeginBackward opens a transaction constructing into block[*cursor-n : *cursor],
// highest slot first. Used to grow a live range toward the front of its block.
func BeginBackward[T any](p alloc.Provider[T], block []T, cursor *int, n int) *Tx[T] {
	start := *cursor
	if n < 0 || start-n < 0 || start > len(block) {
		panic("tx: backward range exceeds block")
	}
	return &Tx[T]{
		p:          p,
		block:      block,
		owner:      cursor,
		start:      start,
		pos:        start,
		limit:      start - n,
		backward:   true,
		moveNoFail: p.Traits().MoveNoFail,
	}
}

// Pos returns the transaction's current cursor.
func (t *Tx[T]) Pos() int { return t.pos }

// Remaining returns how many more slots can be constructed.
func (t *Tx[T]) Remaining() int {
	if t.backward {
		return t.pos - t.limit
	}
	return t.limit - t.pos
}

// Built returns how many slots have been constructed so far.
func (t *Tx[T]) Built() int {
	if t.backward {
		return t.start - t.pos
	}
	return t.pos - t.start
}

// Construct copy-constructs v into the next slot.
func (t *Tx[T]) Construct(v T) error {
	slot, err := t.next("tx.Construct")
	if err != nil {
		return err
	}
	if err := t.p.Construct(slot, v); err != nil {
		return types.Wrap(types.ErrKindConstruct, "tx.Construct", err)
	}
	t.advance()
	return nil
}

// ConstructWith builds a value with ctor and constructs it into the next slot.
// If ctor fails nothing is constructed and the cursor does not move.
func (t *Tx[T]) ConstructWith(ctor func(*T) error) error {
	slot, err := t.next("tx.ConstructWith")
	if err != nil {
		return err
	}
	var v T
	if err := ctor(&v); err != nil {
		return types.Wrap(types.ErrKindConstruct, "tx.ConstructWith", err)
	}
	if err := t.p.Construct(slot, v); err != nil {
		return types.Wrap(types.ErrKindConstruct, "tx.ConstructWith", err)
	}
	t.advance()
	return nil
}

// Relocate constructs the next slot from *src. It moves when the provider
// guarantees moves cannot fail and copies otherwise, leaving src intact.
func (t *Tx[T]) Relocate(src *T) error {
	slot, err := t.next("tx.Relocate")
	if err != nil {
		return err
	}
	if err := alloc.Relocate(t.p, t.moveNoFail, slot, src); err != nil {
		return types.Wrap(types.ErrKindConstruct, "tx.Relocate", err)
	}
	t.advance()
	return nil
}

// Commit publishes the cursor into the owner. Close becomes a no-op.
func (t *Tx[T]) Commit() {
	if t.done {
		return
	}
	*t.owner = t.pos
	t.done = true
}

// Close rolls back an uncommitted transaction: constructed slots are
// destroyed in reverse construction order and the owner's cursor is left at
// its value from Begin. Safe to call more than once.
func (t *Tx[T]) Close() {
	if t.done {
		return
	}
	t.done = true
	if t.backward {
		for i := t.pos; i < t.start; i++ {
			t.p.Destroy(&t.block[i])
		}
	} else {
		alloc.DestroyRange(t.p, t.block, t.start, t.pos)
	}
	t.pos = t.start
}

func (t *Tx[T]) next(op string) (*T, error) {
	if t.done {
		return nil, types.Errorf(types.ErrKindState, op, "transaction closed")
	}
	if t.Remaining() == 0 {
		return nil, types.Errorf(types.ErrKindState, op, "transaction full (%d slots)", t.Built())
	}
	if t.backward {
		return &t.block[t.pos-1], nil
	}
	return &t.block[t.pos], nil
}

func (t *Tx[T]) advance() {
	if t.backward {
		t.pos--
	} else {
		t.pos++
	}
}
