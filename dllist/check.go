package dllist

import "github.com/sirkon/errors"

// Check проверка целостности кольца: стражи замкнуты друг на друга, связи
// соседних узлов взаимны, все узлы принадлежат цепочке списка, обход в
// обе стороны проходит ровно Len узлов.
func (l *List[T]) Check() error {
	if l.head.next == nil {
		if l.size != 0 {
			return errors.New("uninitialized list reports elements").Int("size", l.size)
		}

		return nil
	}

	if l.head.prev != &l.tail || l.tail.next != &l.head {
		return errors.New("sentinels are not closed into a ring")
	}
	if !l.head.sentinel || !l.tail.sentinel {
		return errors.New("sentinel nodes are not marked")
	}
	if l.chain == nil || l.chain.list != l || l.head.chain != l.chain || l.tail.chain != l.chain {
		return errors.New("list does not own its sentinels chain")
	}

	var forward int
	prev := &l.head
	for n := l.head.next; n != &l.tail; n = n.next {
		switch {
		case n == nil:
			return errors.New("forward traversal reached a detached node").Int("position", forward)
		case n == &l.head:
			return errors.New("forward traversal returned to the head sentinel").Int("position", forward)
		case n.sentinel:
			return errors.New("forward traversal reached a foreign sentinel").Int("position", forward)
		case n.chain != l.chain:
			return errors.New("node belongs to another chain").Int("position", forward)
		case n.prev != prev:
			return errors.New("links of adjacent nodes are not reciprocal").Int("position", forward)
		}

		forward++
		if forward > l.size {
			return errors.New("forward traversal visits more nodes than the list holds").
				Int("size", l.size).
				Int("forward-count", forward)
		}
		prev = n
	}
	if l.tail.prev != prev {
		return errors.New("tail sentinel does not point to the last node").Int("position", forward)
	}
	if forward != l.size {
		return errors.New("forward traversal count mismatch").
			Int("size", l.size).
			Int("forward-count", forward)
	}

	var backward int
	for n := l.tail.prev; n != &l.head; n = n.prev {
		if n == nil || n == &l.tail {
			return errors.New("backward traversal left the ring").Int("position", backward)
		}

		backward++
		if backward > l.size {
			return errors.New("backward traversal visits more nodes than the list holds").
				Int("size", l.size).
				Int("backward-count", backward)
		}
	}
	if backward != l.size {
		return errors.New("backward traversal count mismatch").
			Int("size", l.size).
			Int("forward-count", forward).
			Int("backward-count", backward)
	}

	return nil
}
