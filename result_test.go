package result

import (
	"testing"

	"github.com/joomcode/errorx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tracked records its Release calls.
type tracked struct {
	name     string
	released *[]string
}

func (p tracked) Release() {
	*p.released = append(*p.released, p.name)
}

func recovered(fn func()) (p any) {
	defer func() {
		p = recover()
	}()
	fn()
	return nil
}

func TestSuccess(t *testing.T) {
	r := Success[int, string](1)

	assert.True(t, r.IsOk())
	assert.False(t, r.IsErr())
	assert.Equal(t, 1, r.Unwrap())
	assert.Equal(t, 1, r.UnwrapOr(9))
	assert.Equal(t, 1, r.UnwrapOrDefault())
	assert.Equal(t, "Ok(1)", r.String())

	require.NotNil(t, r.Value())
	assert.Equal(t, 1, *r.Value())
	assert.Nil(t, r.Error())

	v, ok := r.Get()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	_, ok = r.GetErr()
	assert.False(t, ok)
}

func TestFailure(t *testing.T) {
	r := Failure[int]("bad")

	assert.False(t, r.IsOk())
	assert.True(t, r.IsErr())
	assert.Equal(t, "bad", r.UnwrapErr())
	assert.Equal(t, 9, r.UnwrapOr(9))
	assert.Equal(t, 0, r.UnwrapOrDefault())
	assert.Equal(t, 3, r.UnwrapOrElse(func(e string) int { return len(e) }))
	assert.Equal(t, "Err(bad)", r.String())

	assert.Nil(t, r.Value())
	require.NotNil(t, r.Error())
	assert.Equal(t, "bad", *r.Error())

	_, ok := r.Get()
	assert.False(t, ok)
	e, ok := r.GetErr()
	assert.True(t, ok)
	assert.Equal(t, "bad", e)
}

func TestUnwrapPanicsWithPayload(t *testing.T) {
	type parseError struct {
		line int
	}
	r := Failure[string](parseError{line: 7})

	assert.Equal(t, parseError{line: 7}, recovered(func() { r.Unwrap() }))
}

func TestUnwrapErrPanicsWithoutPayload(t *testing.T) {
	p := recovered(func() { Success[int, string](42).UnwrapErr() })

	err, ok := p.(error)
	require.True(t, ok, "panic value %v is not an error", p)
	assert.True(t, errorx.IsOfType(err, ErrNoError))
	assert.NotContains(t, err.Error(), "42")
}

func TestValuePointsIntoResult(t *testing.T) {
	r := Success[[]int, string]([]int{1, 2})
	*r.Value() = append(*r.Value(), 3)

	assert.Equal(t, []int{1, 2, 3}, r.Unwrap())
}

func TestSuccessFunc(t *testing.T) {
	r := SuccessFunc[[]int, string](func() []int { return make([]int, 1, 2) })
	assert.Equal(t, []int{0}, r.Unwrap())
	assert.Equal(t, 2, cap(r.Unwrap()))

	f := FailureFunc[int, []string](func() []string { return []string{"a", "b"} })
	assert.Equal(t, []string{"a", "b"}, f.UnwrapErr())
}

func TestEmpty(t *testing.T) {
	var r Result[int, string]

	assert.False(t, r.IsOk())
	assert.False(t, r.IsErr())
	assert.Nil(t, r.Value())
	assert.Nil(t, r.Error())
	assert.Equal(t, 5, r.UnwrapOr(5))
	assert.Equal(t, "Empty", r.String())

	for _, fn := range []func(){
		func() { r.Unwrap() },
		func() { r.UnwrapErr() },
	} {
		err, ok := recovered(fn).(error)
		require.True(t, ok)
		assert.True(t, errorx.IsOfType(err, ErrMovedFrom))
	}
}

func TestTake(t *testing.T) {
	var released []string
	src := Success[tracked, string](tracked{name: "a", released: &released})

	dst := src.Take()

	assert.True(t, dst.IsOk())
	assert.Equal(t, "a", dst.Unwrap().name)
	assert.False(t, src.IsOk())
	assert.False(t, src.IsErr())
	assert.Empty(t, released)

	src.Release()
	assert.Empty(t, released)
	dst.Release()
	assert.Equal(t, []string{"a"}, released)
}

func TestRelease(t *testing.T) {
	var released []string

	ok := Success[tracked, tracked](tracked{name: "ok", released: &released})
	ok.Release()
	assert.Equal(t, []string{"ok"}, released)
	ok.Release()
	assert.Equal(t, []string{"ok"}, released)

	fail := Failure[tracked](tracked{name: "err", released: &released})
	fail.Release()
	assert.Equal(t, []string{"ok", "err"}, released)

	plain := Success[int, string](1)
	plain.Release()
	assert.False(t, plain.IsOk())
}

func TestAssign(t *testing.T) {
	var released []string
	mk := func(name string) tracked { return tracked{name: name, released: &released} }

	t.Run("different variant", func(t *testing.T) {
		released = nil
		dst := Success[tracked, tracked](mk("old"))
		src := Failure[tracked](mk("new"))

		dst.Assign(&src)

		assert.Equal(t, []string{"old"}, released)
		assert.True(t, dst.IsErr())
		assert.Equal(t, "new", dst.UnwrapErr().name)
		assert.False(t, src.IsErr())

		dst.Release()
		src.Release()
		assert.Equal(t, []string{"old", "new"}, released)
	})

	t.Run("same variant", func(t *testing.T) {
		released = nil
		dst := Success[tracked, tracked](mk("old"))
		src := Success[tracked, tracked](mk("new"))

		dst.Assign(&src)

		assert.Equal(t, []string{"old"}, released)
		assert.Equal(t, "new", dst.Unwrap().name)

		dst.Release()
		src.Release()
		assert.Equal(t, []string{"old", "new"}, released)
	})

	t.Run("self", func(t *testing.T) {
		released = nil
		r := Success[tracked, tracked](mk("self"))

		r.Assign(&r)

		assert.Empty(t, released)
		assert.Equal(t, "self", r.Unwrap().name)
	})
}

func TestStorage(t *testing.T) {
	s := storageOk[int, string](1)
	assert.Equal(t, 1, s.ok)
	assert.Zero(t, s.err)

	s = storageErr[int, string]("bad")
	assert.Zero(t, s.ok)
	assert.Equal(t, "bad", s.err)

	s.clear()
	assert.Equal(t, storageEmpty[int, string](), s)
}

type handle struct {
	closed int
}

func (h *handle) Release() {
	h.closed++
}

func TestReleaseNilPayload(t *testing.T) {
	ok := Success[*handle, string](nil)
	assert.NotPanics(t, ok.Release)
	assert.False(t, ok.IsOk())

	fail := Failure[int, *handle](nil)
	assert.NotPanics(t, fail.Release)

	h := &handle{}
	live := Success[*handle, string](h)
	live.Release()
	assert.Equal(t, 1, h.closed)
}

func TestGetInactiveSlot(t *testing.T) {
	var released []string
	fail := Failure[tracked](tracked{name: "err", released: &released})

	v, ok := fail.Get()
	assert.False(t, ok)
	assert.Zero(t, v)

	succ := Success[string, tracked]("v")
	e, ok := succ.GetErr()
	assert.False(t, ok)
	assert.Zero(t, e)
}
