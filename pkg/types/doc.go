// Package types defines the error taxonomy shared by every seqkit package.
//
// Errors carry a stable ErrKind so callers can branch on intent rather than
// text:
//
//	if errors.Is(err, types.ErrLength) {
//	    // request exceeded MaxSize; nothing was modified
//	}
//
// Kinds:
//   - ErrKindLength: requested size exceeds the representable/allocatable maximum.
//   - ErrKindRange: checked index or position out of bounds.
//   - ErrKindMemory: the memory provider could not satisfy a request.
//   - ErrKindConstruct: an element construction failed and was rolled back.
//   - ErrKindState: operation invalid for the current state (empty sequence).
//   - ErrKindProvider: two providers cannot exchange storage (swap).
//   - ErrKindUnsupported: provider or platform limitation.
//
// This package has no dependencies beyond the standard library.
package types
