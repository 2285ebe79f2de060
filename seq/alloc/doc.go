// Package alloc provides the memory providers that back seqkit sequences.
//
// # Overview
//
// A Provider supplies raw blocks of element slots and performs the
// per-slot construct, move and destroy steps. Sequences never touch a slot
// except through their provider, which makes allocation failure and element
// construction failure observable (and therefore recoverable) at a single
// seam.
//
// # Provider Interface
//
//   - Allocate(n): a block of at least n slots, or an ErrKindMemory error
//   - Deallocate(block): return a block obtained from Allocate
//   - Construct(slot, v): copy-construct v into an uninitialized slot
//   - MoveConstruct(slot, src): move-construct, leaving src moved-from
//   - Destroy(slot): end the lifetime of a live slot
//   - MaxSize(): the largest slot count Allocate can ever satisfy
//   - Traits(): propagation and failure characteristics
//   - Equal(other): whether other's blocks may be released by this provider
//
// # Implementations
//
// Heap: the garbage-collected default
//
//   - Stateless, every instance equal
//   - Requests above MaxHeapBytes are refused with an error instead of
//     letting the runtime abort the process; the default ceiling is the
//     smaller of GOMEMLIMIT and physical memory
//
// Arena: bump-pointer allocation from a fixed slab
//
//   - O(1) allocation, no per-block bookkeeping
//   - Deallocate reclaims only the most recent block; older blocks become
//     dead space until Reset
//   - Exhaustion returns ErrExhausted, which makes it the natural provider
//     for exercising out-of-memory rollback
//
// Mmap: off-heap anonymous mappings (linux, darwin)
//
//   - Only for element types without Go pointers
//   - Each block is its own page-rounded mapping, released with munmap
//   - Other platforms fall back to heap-backed blocks
//
// Counting: wraps any provider and counts every call (see Stats)
//
// # Usage Example
//
//	arena := alloc.NewArena[int](&alloc.ArenaOptions{Slots: 1024})
//	v := seq.New[int](arena)
//	if err := v.Reserve(2048); err != nil {
//	    // errors.Is(err, types.ErrOutOfMemory) == true; v is unchanged
//	}
//
// # Thread Safety
//
// Providers are not thread-safe. A provider shared between sequences must
// only be used from one goroutine at a time.
package alloc
