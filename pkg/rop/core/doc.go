// Package core holds options carried through context.Context that tune the
// chain helpers, such as the iteration cap for repeating chains.
package core
