package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/joshuapare/seqkit/seq/alloc"
)

// element is the value type every seqctl command works with. It is
// pointer-free so the mmap provider can hold it.
type element = int64

// openProvider builds the provider selected by --provider / SEQCTL_PROVIDER,
// wrapped in a Counting provider. The returned release func must be called
// when the vectors using it are gone.
func openProvider() (*alloc.Counting[element], func(), error) {
	name := viper.GetString("provider")
	switch name {
	case "", "heap":
		return alloc.NewCounting[element](alloc.Heap[element]{}), func() {}, nil
	case "arena":
		a := alloc.NewArena[element](&alloc.ArenaOptions{Slots: viper.GetInt("arena-slots")})
		return alloc.NewCounting[element](a), a.Reset, nil
	case "mmap":
		m, err := alloc.NewMmap[element]()
		if err != nil {
			return nil, nil, fmt.Errorf("mmap provider: %w", err)
		}
		return alloc.NewCounting[element](m), func() { _ = m.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown provider %q (want heap, arena or mmap)", name)
	}
}

// providerStats is a provider that reports call counts.
type providerStats interface {
	alloc.Provider[element]
	Stats() alloc.Stats
}

func providerName() string {
	if name := viper.GetString("provider"); name != "" {
		return name
	}
	return "heap"
}
