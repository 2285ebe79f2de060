package alloc

// Stats is a snapshot of the calls a Counting provider has forwarded.
type Stats struct {
	Allocations   int // successful Allocate calls
	Deallocations int
	SlotsAlloc    int // total slots handed out
	Constructs    int // successful Construct calls
	Moves         int // successful MoveConstruct calls
	Destroys      int
	Failures      int // Allocate/Construct/MoveConstruct calls that returned an error
}

// Live is the number of constructed elements not yet destroyed.
func (s Stats) Live() int { return s.Constructs + s.Moves - s.Destroys }

// Counting wraps a provider and counts every call it forwards. It shares
// storage compatibility with the provider it wraps.
type Counting[T any] struct {
	inner Provider[T]
	stats Stats
}

// NewCounting wraps inner. A nil inner wraps Heap.
func NewCounting[T any](inner Provider[T]) *Counting[T] {
	if inner == nil {
		inner = Heap[T]{}
	}
	return &Counting[T]{inner: inner}
}

// Inner returns the wrapped provider.
func (c *Counting[T]) Inner() Provider[T] { return c.inner }

// Stats returns a snapshot of the counters.
func (c *Counting[T]) Stats() Stats { return c.stats }

// Reset zeroes the counters.
func (c *Counting[T]) Reset() { c.stats = Stats{} }

func (c *Counting[T]) Allocate(n int) ([]T, error) {
	block, err := c.inner.Allocate(n)
	if err != nil {
		c.stats.Failures++
		return nil, err
	}
	if len(block) > 0 {
		c.stats.Allocations++
		c.stats.SlotsAlloc += len(block)
	}
	return block, nil
}

func (c *Counting[T]) Deallocate(block []T) {
	if len(block) > 0 {
		c.stats.Deallocations++
	}
	c.inner.Deallocate(block)
}

func (c *Counting[T]) Construct(slot *T, v T) error {
	if err := c.inner.Construct(slot, v); err != nil {
		c.stats.Failures++
		return err
	}
	c.stats.Constructs++
	return nil
}

func (c *Counting[T]) MoveConstruct(slot, src *T) error {
	if err := c.inner.MoveConstruct(slot, src); err != nil {
		c.stats.Failures++
		return err
	}
	c.stats.Moves++
	return nil
}

func (c *Counting[T]) Destroy(slot *T) {
	c.stats.Destroys++
	c.inner.Destroy(slot)
}

func (c *Counting[T]) MaxSize() int { return c.inner.MaxSize() }

func (c *Counting[T]) Traits() Traits { return c.inner.Traits() }

// Equal compares the wrapped providers, unwrapping other when it is also a
// Counting provider.
func (c *Counting[T]) Equal(other Provider[T]) bool {
	if o, ok := other.(*Counting[T]); ok {
		other = o.inner
	}
	return c.inner.Equal(other)
}

// Compile-time interface check
var _ Provider[int] = (*Counting[int])(nil)
