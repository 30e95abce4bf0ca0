package rop_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ib-77/resultify/pkg/rop"
	"github.com/ib-77/resultify/pkg/rop/solo"
)

type user struct {
	ID   uuid.UUID
	Name string
	Boss uuid.UUID
}

var errNoUser = errors.New("no such user")

type directory map[uuid.UUID]user

func (d directory) find(id uuid.UUID) rop.Option[user] {
	u, ok := d[id]
	if !ok {
		return rop.None[user]()
	}
	return rop.Some(u)
}

func (d directory) load(id uuid.UUID) rop.Result[user, error] {
	return solo.OkOrElse(d.find(id), func() error {
		return fmt.Errorf("load %s: %w", id, errNoUser)
	})
}

var (
	aliceID = uuid.MustParse("6f1d1f38-2f0c-4d52-9a57-8c1c1e2a0d01")
	bobID   = uuid.MustParse("0b7c54f2-3a8e-4f54-8c7e-2d6a3e5b9f02")
	ghostID = uuid.MustParse("00000000-0000-0000-0000-0000000000ff")

	people = directory{
		aliceID: {ID: aliceID, Name: "alice"},
		bobID:   {ID: bobID, Name: "bob", Boss: aliceID},
	}
)

func TestDirectoryLookups(t *testing.T) {
	t.Parallel()

	bossOf := func(u user) rop.Result[user, error] { return people.load(u.Boss) }

	boss := people.load(bobID).AndThen(bossOf)
	assert.Equal(t, rop.Success(people[aliceID]), boss)

	// alice has no boss, so the second hop fails
	noBoss := people.load(aliceID).AndThen(bossOf)
	err, _ := noBoss.GetErr()
	assert.ErrorIs(t, err, errNoUser)

	assert.True(t, people.find(ghostID).IsNone())
	assert.Equal(t, "nobody", solo.MapOption(people.find(ghostID), func(u user) string { return u.Name }).UnwrapOr("nobody"))

	ids := []uuid.UUID{aliceID, bobID, ghostID, uuid.Nil}
	loaded := make([]rop.Result[user, error], 0, len(ids))
	for _, id := range ids {
		loaded = append(loaded, people.load(id))
	}
	assert.Equal(t, 2, rop.CountOk(loaded...))

	all := solo.CollectAll(loaded)
	err, _ = all.GetErr()
	assert.Len(t, rop.GetErrors(err), 2)
}

func ExampleResult_Map() {
	six, err := rop.Ok[int, string](5).Map(func(x int) int { return x + 1 }).Unwrap()
	fmt.Println(six, err)

	bad := rop.Err[int]("bad").Map(func(x int) int { return x + 1 })
	e, _ := bad.UnwrapErr()
	fmt.Println(bad.IsErr(), e)
	// Output:
	// 6 <nil>
	// true bad
}

func ExampleResult_Unwrap() {
	_, err := rop.Err[int]("bad").Unwrap()
	fmt.Println(err)
	fmt.Println(errors.Is(err, rop.ErrUnwrap))
	// Output:
	// rop: called Result.Unwrap on an Err value: bad
	// true
}

func ExampleOption_AndThen() {
	v := rop.Some(3).AndThen(func(x int) rop.Option[int] { return rop.Some(x * 2) })
	fmt.Println(v, v.MustUnwrap())

	_, err := rop.None[int]().Unwrap()
	fmt.Println(err)
	// Output:
	// Some(6) 6
	// rop: called Option.Unwrap on a None value
}

func ExampleResult_Ok() {
	name := solo.MapOption(people.load(bobID).Ok(), func(u user) string { return u.Name })
	fmt.Println(name)
	fmt.Println(people.load(ghostID).Ok())
	// Output:
	// Some(bob)
	// None
}
