package queue

import "github.com/sirkon/dlqueue/dllist"

// Container абстракция последовательности, поверх которой работает очередь.
// Поведение на пустом контейнере для Front, Back и PopFront определяется
// реализацией, список из dllist в этом случае паникует.
type Container[T any] interface {
	Front() T
	Back() T
	Len() int
	Empty() bool
	PushBack(v T)
	PopFront()

	// Clone независимая копия контейнера.
	Clone() Container[T]
}

// listContainer реализация Container поверх двусвязного списка.
type listContainer[T any] struct {
	*dllist.List[T]
}

func newListContainer[T any]() listContainer[T] {
	return listContainer[T]{List: dllist.New[T]()}
}

// Clone для реализации Container.
func (c listContainer[T]) Clone() Container[T] {
	return listContainer[T]{List: c.List.Clone()}
}
