package dllist

// Clone глубокая копия списка. Копия пустого списка пуста.
func (l *List[T]) Clone() *List[T] {
	c := New[T]()
	c.appendFrom(l)
	return c
}

// CopyFrom замена содержимого копией src. Копирование в себя ничего не делает.
func (l *List[T]) CopyFrom(src *List[T]) {
	if l == src {
		return
	}

	l.Clear()
	l.appendFrom(src)
}

// Move перенос цепочки узлов в новый список за O(1). Исходный
// список остаётся пустым и пригодным к использованию.
func (l *List[T]) Move() *List[T] {
	m := New[T]()
	m.MoveFrom(l)
	return m
}

// MoveFrom замена содержимого узлами src с переносом владения, src
// становится пустым. Позиции перенесённых узлов остаются действительными
// и относятся теперь к l, позиции прежних элементов l недействительны.
func (l *List[T]) MoveFrom(src *List[T]) {
	if l == src {
		return
	}

	l.Clear()
	src.lazyInit()
	if src.size > 0 {
		l.head.next = src.head.next
		l.tail.prev = src.tail.prev
		l.head.next.prev = &l.head
		l.tail.prev.next = &l.tail
		l.size = src.size
	}

	abandoned := l.chain
	l.adopt(src.chain)
	abandoned.list = nil

	src.chain = nil
	src.init()
}

func (l *List[T]) appendFrom(src *List[T]) {
	if src.size == 0 {
		return
	}

	for n := src.head.next; n != &src.tail; n = n.next {
		l.linkBefore(&l.tail, n.value)
	}
}
