package queue_test

import (
	stderrs "errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sirkon/dlqueue/dllist"
	"github.com/sirkon/dlqueue/internal/tlog"
	"github.com/sirkon/dlqueue/queue"
	"github.com/sirkon/dlqueue/queue/internal/mocks"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func TestQueueFIFO(t *testing.T) {
	q := queue.New[int]()
	require.True(t, q.Empty())
	require.Equal(t, 0, q.Len())

	for i := 1; i <= 3; i++ {
		q.Push(i)
		require.Equal(t, 1, q.Front())
		require.Equal(t, i, q.Back())
	}
	require.Equal(t, 3, q.Len())

	var got []int
	for !q.Empty() {
		got = append(got, q.Front())
		q.Pop()
	}
	require.True(t, slices.Equal(got, []int{1, 2, 3}), "unexpected order %v", got)
	require.Equal(t, 0, q.Len())
}

func TestQueueZeroValue(t *testing.T) {
	var q queue.Queue[string]
	require.True(t, q.Empty())

	q.Push("a")
	q.Push("b")
	require.Equal(t, 2, q.Len())
	require.Equal(t, "a", q.Front())
	require.Equal(t, "b", q.Back())
}

func TestQueueTryPop(t *testing.T) {
	q := queue.New[int]()

	_, ok := q.TryPop()
	require.False(t, ok)

	q.Push(10)
	q.Push(20)

	v, ok := q.TryPop()
	require.True(t, ok)
	require.Equal(t, 10, v)

	v, ok = q.TryPop()
	require.True(t, ok)
	require.Equal(t, 20, v)

	_, ok = q.TryPop()
	require.False(t, ok)
}

func TestQueuePopEmpty(t *testing.T) {
	q := queue.New[int]()

	err := tlog.Recover(q.Pop)
	require.Error(t, err)
	require.True(t, stderrs.Is(err, dllist.ErrEmptyList), "unexpected panic: %v", err)

	err = tlog.Recover(func() {
		q.Front()
	})
	require.True(t, stderrs.Is(err, dllist.ErrEmptyList), "unexpected panic: %v", err)
}

func TestQueueClone(t *testing.T) {
	q := queue.New[int]()
	q.Push(1)
	q.Push(2)

	c := q.Clone()
	c.Push(3)
	c.Pop()

	require.Equal(t, 2, q.Len())
	require.Equal(t, 1, q.Front())
	require.Equal(t, 2, c.Len())
	require.Equal(t, 2, c.Front())
	require.Equal(t, 3, c.Back())
}

func TestQueueEqual(t *testing.T) {
	build := func(vs ...int) *queue.Queue[int] {
		q := queue.New[int]()
		for _, v := range vs {
			q.Push(v)
		}
		return q
	}

	tests := []struct {
		name  string
		a     *queue.Queue[int]
		b     *queue.Queue[int]
		equal bool
	}{
		{
			name:  "both empty",
			a:     build(),
			b:     build(),
			equal: true,
		},
		{
			name:  "same pushes",
			a:     build(1, 2, 3),
			b:     build(1, 2, 3),
			equal: true,
		},
		{
			name:  "different size",
			a:     build(1, 2, 3),
			b:     build(1, 2),
			equal: false,
		},
		{
			name:  "empty and non empty",
			a:     build(),
			b:     build(1),
			equal: false,
		},
		{
			name:  "differ at front",
			a:     build(0, 2, 3),
			b:     build(1, 2, 3),
			equal: false,
		},
		{
			name:  "differ at back",
			a:     build(1, 2, 3),
			b:     build(1, 2, 4),
			equal: false,
		},
		{
			name:  "same values different order",
			a:     build(1, 2, 3),
			b:     build(3, 2, 1),
			equal: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alen, blen := tt.a.Len(), tt.b.Len()

			require.Equal(t, tt.equal, queue.Equal(tt.a, tt.b))
			require.Equal(t, tt.equal, queue.Equal(tt.b, tt.a))

			require.Equal(t, alen, tt.a.Len(), "compared queue must not change")
			require.Equal(t, blen, tt.b.Len(), "compared queue must not change")
		})
	}

	t.Run("self", func(t *testing.T) {
		q := build(1, 2, 3)
		require.True(t, queue.Equal(q, q))
		require.Equal(t, 3, q.Len())
		require.Equal(t, 1, q.Front())
		require.Equal(t, 3, q.Back())
	})
}

func TestQueueEqualFunc(t *testing.T) {
	a := queue.New[[]byte]()
	b := queue.New[[]byte]()
	for _, s := range []string{"hello", "world"} {
		a.Push([]byte(s))
		b.Push([]byte(s))
	}

	require.True(t, queue.EqualFunc(a, b, func(x, y []byte) bool {
		return slices.Equal(x, y)
	}))

	b.Push([]byte("!"))
	a.Push([]byte("?"))
	require.False(t, queue.EqualFunc(a, b, func(x, y []byte) bool {
		return slices.Equal(x, y)
	}))
}

func TestQueueEqualIdentifiers(t *testing.T) {
	ids := []uuid.UUID{
		uuid.MustParse("3c1b3c7e-4f3c-4c1a-9b0e-2b7f5f3d6a01"),
		uuid.MustParse("9f2e8d4a-0b6c-4d8e-a1f2-3c4b5a697802"),
		uuid.New(),
	}

	a := queue.New[uuid.UUID]()
	b := queue.New[uuid.UUID]()
	for _, id := range ids {
		a.Push(id)
		b.Push(id)
	}
	require.True(t, queue.Equal(a, b))

	c := b.Clone()
	c.Pop()
	c.Push(ids[0])
	require.False(t, queue.Equal(a, c))
	require.True(t, queue.Equal(a, b))
}

func TestQueueDelegation(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewContainerMock[string](ctrl)
	q := queue.NewWith[string](m)

	gomock.InOrder(
		m.EXPECT().PushBack("a"),
		m.EXPECT().PushBack("b"),
		m.EXPECT().Len().Return(2),
		m.EXPECT().Front().Return("a"),
		m.EXPECT().Back().Return("b"),
		m.EXPECT().PopFront(),
		m.EXPECT().Empty().Return(false),
		m.EXPECT().Front().Return("b"),
		m.EXPECT().PopFront(),
		m.EXPECT().Empty().Return(true),
	)

	q.Push("a")
	q.Push("b")
	require.Equal(t, 2, q.Len())
	require.Equal(t, "a", q.Front())
	require.Equal(t, "b", q.Back())
	q.Pop()

	v, ok := q.TryPop()
	require.True(t, ok)
	require.Equal(t, "b", v)
	require.True(t, q.Empty())
}

func TestQueueEqualDrainsCopies(t *testing.T) {
	ctrl := gomock.NewController(t)

	a := mocks.NewContainerMock[int](ctrl)
	b := mocks.NewContainerMock[int](ctrl)
	ca := mocks.NewContainerMock[int](ctrl)
	cb := mocks.NewContainerMock[int](ctrl)

	// originals are only measured and cloned, any mutation fails the test
	a.EXPECT().Len().Return(2)
	b.EXPECT().Len().Return(2)
	a.EXPECT().Clone().Return(ca)
	b.EXPECT().Clone().Return(cb)

	gomock.InOrder(
		ca.EXPECT().Empty().Return(false),
		ca.EXPECT().Front().Return(1),
		cb.EXPECT().Front().Return(1),
		ca.EXPECT().PopFront(),
		cb.EXPECT().PopFront(),
		ca.EXPECT().Empty().Return(false),
		ca.EXPECT().Front().Return(2),
		cb.EXPECT().Front().Return(3),
	)

	require.False(t, queue.Equal(queue.NewWith[int](a), queue.NewWith[int](b)))
}

func TestQueueEqualSizeShortcut(t *testing.T) {
	ctrl := gomock.NewController(t)

	a := mocks.NewContainerMock[int](ctrl)
	b := mocks.NewContainerMock[int](ctrl)
	a.EXPECT().Len().Return(1)
	b.EXPECT().Len().Return(2)

	require.False(t, queue.Equal(queue.NewWith[int](a), queue.NewWith[int](b)))
}

func TestQueueEqualNil(t *testing.T) {
	var none *queue.Queue[int]
	empty := queue.New[int]()
	full := queue.New[int]()
	full.Push(1)

	require.True(t, queue.Equal(none, none))
	require.True(t, queue.Equal(none, empty))
	require.True(t, queue.Equal(empty, none))
	require.False(t, queue.Equal(none, full))
	require.False(t, queue.Equal(full, none))
	require.Equal(t, 1, full.Len())
}

func TestQueueEqualSameQueueSkipsCopies(t *testing.T) {
	ctrl := gomock.NewController(t)

	// any call on the container fails the test
	m := mocks.NewContainerMock[int](ctrl)
	q := queue.NewWith[int](m)

	require.True(t, queue.Equal(q, q))
}
