package queue

// New конструктор пустой очереди поверх двусвязного списка.
func New[T any]() *Queue[T] {
	return &Queue[T]{
		c: newListContainer[T](),
	}
}

// NewWith конструктор очереди поверх данного контейнера.
// Очередь становится единственным владельцем c.
func NewWith[T any](c Container[T]) *Queue[T] {
	return &Queue[T]{
		c: c,
	}
}

// Queue очередь FIFO. Нулевое значение является пустой очередью.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type Queue[T any] struct {
	c Container[T]
}

// Push добавление значения в конец очереди.
func (q *Queue[T]) Push(v T) {
	q.container().PushBack(v)
}

// Pop удаление первого элемента. Паникует на пустой очереди.
func (q *Queue[T]) Pop() {
	q.container().PopFront()
}

// TryPop извлечение первого элемента. Возвращает false, если очередь пуста.
func (q *Queue[T]) TryPop() (v T, ok bool) {
	c := q.container()
	if c.Empty() {
		return v, false
	}

	v = c.Front()
	c.PopFront()
	return v, true
}

// Front первый элемент очереди.
func (q *Queue[T]) Front() T {
	return q.container().Front()
}

// Back последний элемент очереди.
func (q *Queue[T]) Back() T {
	return q.container().Back()
}

// Empty проверка на пустоту.
func (q *Queue[T]) Empty() bool {
	return q.container().Empty()
}

// Len количество элементов.
func (q *Queue[T]) Len() int {
	return q.container().Len()
}

// Clone копия очереди с независимым контейнером.
func (q *Queue[T]) Clone() *Queue[T] {
	return &Queue[T]{
		c: q.container().Clone(),
	}
}

func (q *Queue[T]) container() Container[T] {
	if q.c == nil {
		q.c = newListContainer[T]()
	}

	return q.c
}
