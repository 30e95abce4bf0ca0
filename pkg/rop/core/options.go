package core

import "context"

type OptionKey string

const (
	LoopOptionKey OptionKey = "loop_options"
)

type MaxLimitOption struct {
	Value int
}

type LoopOptions struct {
	MaxIterations MaxLimitOption
}

// WithLoopOptions caps how many steps a repeating chain may run. A value
// <= 0 removes the cap.
func WithLoopOptions(ctx context.Context, maxIterations int) context.Context {
	return context.WithValue(ctx, LoopOptionKey, LoopOptions{MaxLimitOption{Value: maxIterations}})
}

func GetLoopMaxCount(ctx context.Context, defaultMaxIterations int) int {
	options, ok := ctx.Value(LoopOptionKey).(LoopOptions)
	if ok {
		return options.MaxIterations.Value
	}
	return defaultMaxIterations
}
