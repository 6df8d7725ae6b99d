package queue

// Equal проверка очередей на равенство: одинаковая длина и попарно равные
// элементы от начала к концу. Сами очереди не меняются, очередь всегда
// равна самой себе.
func Equal[T comparable](a, b *Queue[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool {
		return x == y
	})
}

// EqualFunc то же, что и Equal, но элементы сравниваются с помощью eq.
// Сравнение идёт вычерпыванием копий очередей, так что требует O(n)
// дополнительной памяти. nil считается пустой очередью.
func EqualFunc[T any](a, b *Queue[T], eq func(x, y T) bool) bool {
	switch {
	case a == b:
		return true
	case a == nil:
		return b.Empty()
	case b == nil:
		return a.Empty()
	}

	if a.Len() != b.Len() {
		return false
	}

	ca := a.container().Clone()
	cb := b.container().Clone()
	for !ca.Empty() {
		if !eq(ca.Front(), cb.Front()) {
			return false
		}

		ca.PopFront()
		cb.PopFront()
	}

	return true
}
