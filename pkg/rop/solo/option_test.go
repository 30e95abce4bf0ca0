package solo

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/resultify/pkg/rop"
)

func TestMapOption(t *testing.T) {
	t.Parallel()

	assert.Equal(t, rop.Some("3"), MapOption(rop.Some(3), strconv.Itoa))
	assert.Equal(t, rop.None[string](), MapOption(rop.None[int](), strconv.Itoa))
}

func TestAndThenOption(t *testing.T) {
	t.Parallel()

	lookup := func(k string) rop.Option[int] {
		v, ok := map[string]int{"a": 1}[k]
		if !ok {
			return rop.None[int]()
		}
		return rop.Some(v)
	}

	assert.Equal(t, rop.Some(1), AndThenOption(rop.Some("a"), lookup))
	assert.Equal(t, rop.None[int](), AndThenOption(rop.Some("z"), lookup))
	assert.Equal(t, rop.None[int](), AndThenOption(rop.None[string](), lookup))
}

func TestFlattenOption(t *testing.T) {
	t.Parallel()

	assert.Equal(t, rop.Some(1), FlattenOption(rop.Some(rop.Some(1))))
	assert.Equal(t, rop.None[int](), FlattenOption(rop.Some(rop.None[int]())))
	assert.Equal(t, rop.None[int](), FlattenOption(rop.None[rop.Option[int]]()))
}

func TestOkOr(t *testing.T) {
	t.Parallel()

	missing := errors.New("missing")

	assert.Equal(t, rop.Success(1), OkOr(rop.Some(1), missing))
	assert.Equal(t, rop.Fail[int](missing), OkOr(rop.None[int](), missing))

	calls := 0
	build := func() string {
		calls++
		return "missing"
	}
	assert.Equal(t, rop.Ok[int, string](1), OkOrElse(rop.Some(1), build))
	assert.Zero(t, calls)
	assert.Equal(t, rop.Err[int]("missing"), OkOrElse(rop.None[int](), build))
	assert.Equal(t, 1, calls)
}

func TestTranspose(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		rop.Some(rop.Ok[int, string](1)),
		Transpose(rop.Ok[rop.Option[int], string](rop.Some(1))))
	assert.Equal(t,
		rop.None[rop.Result[int, string]](),
		Transpose(rop.Ok[rop.Option[int], string](rop.None[int]())))
	assert.Equal(t,
		rop.Some(rop.Err[int]("bad")),
		Transpose(rop.Err[rop.Option[int]]("bad")))
}
