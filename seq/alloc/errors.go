package alloc

import "github.com/joshuapare/seqkit/pkg/types"

var (
	// ErrExhausted indicates an arena has no room left for the requested block.
	ErrExhausted = &types.Error{Kind: types.ErrKindMemory, Msg: "alloc: arena exhausted"}

	// ErrTooLarge indicates a request above the provider's MaxSize.
	ErrTooLarge = &types.Error{Kind: types.ErrKindMemory, Msg: "alloc: request exceeds provider maximum"}

	// ErrNegative indicates a negative slot count.
	ErrNegative = &types.Error{Kind: types.ErrKindLength, Msg: "alloc: negative slot count"}

	// ErrHasPointers indicates an off-heap provider was asked to hold a type with Go pointers.
	ErrHasPointers = &types.Error{Kind: types.ErrKindUnsupported, Msg: "alloc: element type contains pointers"}
)
