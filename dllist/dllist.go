package dllist

import "github.com/sirkon/errors"

// New конструктор пустого двусвязного списка.
func New[T any]() *List[T] {
	l := &List[T]{}
	l.init()
	return l
}

// NewSize конструктор списка из count нулевых значений.
func NewSize[T any](count int) *List[T] {
	var zero T
	return NewFilled(count, zero)
}

// NewFilled конструктор списка из count копий value.
func NewFilled[T any](count int, value T) *List[T] {
	l := New[T]()
	for i := 0; i < count; i++ {
		l.linkBefore(&l.tail, value)
	}

	return l
}

// List двусвязный список с двумя стражами встроенными в саму структуру.
// Стражи замкнуты в кольцо: следующий за хвостом — голова и наоборот,
// между ними лежат узлы со значениями.
//
// Нулевое значение является пустым списком готовым к использованию.
// После первого использования список нельзя копировать присваиванием,
// так как узлы ссылаются на стражей внутри структуры. Для копирования
// служат Clone и CopyFrom, для переноса — Move и MoveFrom.
//
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type List[T any] struct {
	noCopy noCopy

	head  node[T]
	tail  node[T]
	size  int
	chain *chain[T]
}

// Len количество элементов в списке.
func (l *List[T]) Len() int {
	return l.size
}

// Empty проверка на пустоту.
func (l *List[T]) Empty() bool {
	return l.size == 0
}

// Front первый элемент списка. Паникует на пустом списке.
func (l *List[T]) Front() T {
	return l.first("get front element").value
}

// FrontPtr ссылка на значение первого элемента для изменения на месте.
func (l *List[T]) FrontPtr() *T {
	return &l.first("get front element reference").value
}

// Back последний элемент списка. Паникует на пустом списке.
func (l *List[T]) Back() T {
	return l.last("get back element").value
}

// BackPtr ссылка на значение последнего элемента.
func (l *List[T]) BackPtr() *T {
	return &l.last("get back element reference").value
}

// PushBack добавление значения в конец списка.
func (l *List[T]) PushBack(v T) {
	l.lazyInit()
	l.linkBefore(&l.tail, v)
}

// PushFront добавление значения в начало списка.
func (l *List[T]) PushFront(v T) {
	l.lazyInit()
	l.linkBefore(l.head.next, v)
}

// PopBack удаление последнего элемента. Паникует на пустом списке.
func (l *List[T]) PopBack() {
	l.unlink(l.last("pop back element"))
}

// PopFront удаление первого элемента. Паникует на пустом списке.
func (l *List[T]) PopFront() {
	l.unlink(l.first("pop front element"))
}

// Clear удаление всех элементов. Узлы отвязываются друг от друга, так что
// оставшиеся на руках итераторы не удерживают цепочку от сборки мусора.
func (l *List[T]) Clear() {
	if l.head.next != nil {
		for n := l.head.next; n != &l.tail; {
			next := n.next
			n.cleanup()
			n = next
		}
	}

	l.init()
}

func (l *List[T]) init() {
	if l.chain == nil {
		l.adopt(&chain[T]{})
	}

	l.head.next = &l.tail
	l.head.prev = &l.tail
	l.tail.next = &l.head
	l.tail.prev = &l.head
	l.size = 0
}

// adopt передача списку владения цепочкой c вместе со стражами.
func (l *List[T]) adopt(c *chain[T]) {
	c.list = l
	l.chain = c
	l.head.chain = c
	l.tail.chain = c
	l.head.sentinel = true
	l.tail.sentinel = true
}

func (l *List[T]) lazyInit() {
	if l.head.next == nil {
		l.init()
	}
}

func (l *List[T]) first(op string) *node[T] {
	if l.size == 0 {
		panic(errors.Wrap(ErrEmptyList, op))
	}

	return l.head.next
}

func (l *List[T]) last(op string) *node[T] {
	if l.size == 0 {
		panic(errors.Wrap(ErrEmptyList, op))
	}

	return l.tail.prev
}

// linkBefore вставка нового узла со значением v перед at.
func (l *List[T]) linkBefore(at *node[T], v T) *node[T] {
	n := &node[T]{
		prev:  at.prev,
		next:  at,
		chain: l.chain,
		value: v,
	}
	at.prev.next = n
	at.prev = n
	l.size++

	return n
}

// unlink удаление узла из цепочки с возвратом следующего за ним.
func (l *List[T]) unlink(n *node[T]) *node[T] {
	next := n.next
	n.prev.next = next
	next.prev = n.prev
	n.cleanup()
	l.size--

	return next
}
