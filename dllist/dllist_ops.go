package dllist

import "github.com/sirkon/errors"

// Begin позиция первого элемента, на пустом списке совпадает с End.
func (l *List[T]) Begin() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{n: l.head.next}
}

// End позиция хвостового стража.
func (l *List[T]) End() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{n: &l.tail}
}

// CBegin то же, что и Begin, но только для чтения.
func (l *List[T]) CBegin() ConstIterator[T] {
	return l.Begin().Const()
}

// CEnd то же, что и End, но только для чтения.
func (l *List[T]) CEnd() ConstIterator[T] {
	return l.End().Const()
}

// Insert вставка v непосредственно перед pos с возвратом позиции
// вставленного элемента. Вставка перед End добавляет в конец.
func (l *List[T]) Insert(pos Position[T], v T) Iterator[T] {
	at := l.own(pos, "insert")
	return Iterator[T]{n: l.linkBefore(at, v)}
}

// Erase удаление элемента в позиции pos с возвратом позиции следующего
// за ним. Паникует если pos равна End.
func (l *List[T]) Erase(pos Position[T]) Iterator[T] {
	n := l.own(pos, "erase")
	if n.sentinel {
		panic(errors.Wrap(ErrEndPosition, "erase"))
	}

	return Iterator[T]{n: l.unlink(n)}
}

// Range обход элементов от первого к последнему пока f возвращает true.
// Список нельзя изменять во время обхода.
func (l *List[T]) Range(f func(v T) bool) {
	if l.size == 0 {
		return
	}

	for n := l.head.next; n != &l.tail; n = n.next {
		if !f(n.value) {
			return
		}
	}
}

// RangeBackward обход элементов от последнего к первому.
func (l *List[T]) RangeBackward(f func(v T) bool) {
	if l.size == 0 {
		return
	}

	for n := l.tail.prev; n != &l.head; n = n.prev {
		if !f(n.value) {
			return
		}
	}
}

// Values значения списка в прямом порядке.
func (l *List[T]) Values() []T {
	res := make([]T, 0, l.size)
	l.Range(func(v T) bool {
		res = append(res, v)
		return true
	})

	return res
}

// own проверка, что позиция принадлежит этому списку и указывает на
// узел перед которым можно вставлять.
func (l *List[T]) own(pos Position[T], op string) *node[T] {
	if pos == nil {
		panic(errors.Wrap(ErrInvalidPosition, op))
	}

	n := pos.position()
	switch {
	case n == nil:
		panic(errors.Wrap(ErrInvalidPosition, op))
	case n.prev == nil:
		panic(errors.Wrap(ErrInvalidPosition, op).Str("reason", "node was erased"))
	case n.owner() != l:
		panic(errors.Wrap(ErrForeignPosition, op))
	case n == &l.head:
		panic(errors.Wrap(ErrInvalidPosition, op).Str("reason", "head sentinel"))
	}

	return n
}
