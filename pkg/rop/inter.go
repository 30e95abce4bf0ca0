package rop

import "fmt"

// Fallible is the capability shared by every Result instantiation and by
// values that wrap one, such as tiny.Chain.
type Fallible interface {
	// IsOk returns true if the value holds a success
	IsOk() bool
	// IsErr returns true if the value holds an error
	IsErr() bool
	fmt.Stringer
}

// Optional is the capability shared by every Option instantiation.
type Optional interface {
	// IsSome returns true if a value is present
	IsSome() bool
	// IsNone returns true if no value is present
	IsNone() bool
	fmt.Stringer
}

var (
	_ Fallible = Result[struct{}, error]{}
	_ Optional = Option[struct{}]{}
)

// CountOk reports how many of rs hold a success.
func CountOk[F Fallible](rs ...F) int {
	n := 0
	for _, r := range rs {
		if r.IsOk() {
			n++
		}
	}
	return n
}

// CountSome reports how many of os hold a value.
func CountSome[O Optional](os ...O) int {
	n := 0
	for _, o := range os {
		if o.IsSome() {
			n++
		}
	}
	return n
}
