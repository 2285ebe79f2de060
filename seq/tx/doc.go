// Package tx provides construction transactions for slot-based storage.
//
// # Overview
//
// A Tx constructs a run of elements into uninitialized slots of a block and
// publishes the result into the owner's cursor only on Commit. If the
// transaction is closed without a commit (an error return or a panic
// unwinding through a deferred Close), every element it built is destroyed in
// reverse order and the owner's cursor keeps its pre-transaction value.
//
// Transaction lifecycle:
//  1. Begin / BeginBackward: bind the block, the owner's cursor and a slot limit
//  2. Construct, ConstructWith, Relocate: build one slot each, advancing the cursor
//  3. Commit: store the cursor into the owner
//  4. Close: roll back if not committed (always deferred)
//
// # Basic Usage
//
// Appending n copies of v to a sequence whose live range ends at v.end:
//
//	t := tx.Begin(p, block, &end, n)
//	defer t.Close()
//	for t.Remaining() > 0 {
//	    if err := t.Construct(v); err != nil {
//	        return err // Close destroys what was built
//	    }
//	}
//	t.Commit()
//
// Growing toward the front of a double-ended buffer walks down instead:
//
//	t := tx.BeginBackward(p, block, &begin, len(head))
//	defer t.Close()
//	for i := len(head) - 1; i >= 0; i-- {
//	    if err := t.Relocate(&head[i]); err != nil {
//	        return err
//	    }
//	}
//	t.Commit()
//
// # Guard
//
// Guard is the general form for rollbacks that are not slot constructions:
//
//	g := tx.NewGuard(func() { undo() })
//	defer g.Close()
//	... // work that may fail
//	g.Complete()
//
// Neither type is safe for concurrent use.
package tx
