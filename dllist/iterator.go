package dllist

import "github.com/sirkon/errors"

// Position позиция в списке, которую принимают Insert и Erase.
// Реализуется Iterator и ConstIterator.
type Position[T any] interface {
	position() *node[T]
}

// Iterator позиция в списке с доступом к значению на изменение.
// Итераторы сравниваются через == по идентичности узла. Итератор
// становится недействительным после удаления узла, на который указывает.
// Перенос узлов через MoveFrom итераторы не портит.
type Iterator[T any] struct {
	n *node[T]
}

// Value значение в текущей позиции. Паникует на позиции стража.
func (it Iterator[T]) Value() T {
	return deref(it.n, "read value").value
}

// Ptr ссылка на значение в текущей позиции.
func (it Iterator[T]) Ptr() *T {
	return &deref(it.n, "take value reference").value
}

// Set замена значения в текущей позиции.
func (it Iterator[T]) Set(v T) {
	deref(it.n, "set value").value = v
}

// Next следующая позиция. Следующей за End идёт голова кольца, на
// которой Prev вернёт End.
func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{n: step(it.n, "step forward").next}
}

// Prev предыдущая позиция.
func (it Iterator[T]) Prev() Iterator[T] {
	return Iterator[T]{n: step(it.n, "step backward").prev}
}

// Const та же позиция только для чтения.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{n: it.n}
}

// Equal сравнение с позицией любого вида.
func (it Iterator[T]) Equal(p Position[T]) bool {
	return samePosition[T](it, p)
}

func (it Iterator[T]) position() *node[T] {
	return it.n
}

// ConstIterator позиция в списке только для чтения.
type ConstIterator[T any] struct {
	n *node[T]
}

// Value значение в текущей позиции. Паникует на позиции стража.
func (it ConstIterator[T]) Value() T {
	return deref(it.n, "read value").value
}

// Next следующая позиция.
func (it ConstIterator[T]) Next() ConstIterator[T] {
	return ConstIterator[T]{n: step(it.n, "step forward").next}
}

// Prev предыдущая позиция.
func (it ConstIterator[T]) Prev() ConstIterator[T] {
	return ConstIterator[T]{n: step(it.n, "step backward").prev}
}

// Equal сравнение с позицией любого вида.
func (it ConstIterator[T]) Equal(p Position[T]) bool {
	return samePosition[T](it, p)
}

func (it ConstIterator[T]) position() *node[T] {
	return it.n
}

func samePosition[T any](a, b Position[T]) bool {
	if b == nil {
		return false
	}

	return a.position() == b.position()
}

func step[T any](n *node[T], op string) *node[T] {
	if n == nil || n.next == nil {
		panic(errors.Wrap(ErrInvalidPosition, op))
	}

	return n
}

func deref[T any](n *node[T], op string) *node[T] {
	switch {
	case n == nil:
		panic(errors.Wrap(ErrInvalidPosition, op))
	case n.sentinel:
		panic(errors.Wrap(ErrEndPosition, op))
	case n.prev == nil:
		panic(errors.Wrap(ErrInvalidPosition, op).Str("reason", "node was erased"))
	case n.owner() == nil:
		panic(errors.Wrap(ErrInvalidPosition, op).Str("reason", "node chain was abandoned"))
	}

	return n
}
