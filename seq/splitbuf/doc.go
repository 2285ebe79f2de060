// Package splitbuf implements a double-ended growth buffer: one block with
// spare slots at both ends of its live range.
//
// Buffer is the staging area sequences use during reallocation. A sequence
// growing at position pos allocates a Buffer whose live range starts at pos,
// constructs the new elements there, then relocates its own head into the
// front spare (last element first) and its tail onto the back before adopting
// the block. If any step fails the Buffer is released and the sequence is
// untouched.
//
// Layout (cursors are slot indices into Block):
//
//	0 ........ begin ======== end ........ len(block)
//	 front spare     live range   back spare
//
// PushFront and PushBack first slide the live range into spare on the other
// side, then regrow geometrically through seq/plan.
package splitbuf
