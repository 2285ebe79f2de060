package alloc

import (
	"fmt"
	"math"
	"reflect"
	"unsafe"
)

// pointerFree reports whether values of t contain no Go pointers, which is
// what makes it safe to keep them in memory the collector does not scan.
func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || pointerFree(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func checkPointerFree[T any]() error {
	t := reflect.TypeFor[T]()
	if !pointerFree(t) {
		return fmt.Errorf("mmap provider for %s: %w", t, ErrHasPointers)
	}
	return nil
}

func elemSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// mmapMaxSize bounds a block so its byte length stays representable.
func mmapMaxSize(size int) int {
	if size == 0 {
		return math.MaxInt
	}
	return math.MaxInt / size
}
