package dllist

// node узел списка. Стражи головы и хвоста тоже являются узлами, но
// значение в них не хранится.
type node[T any] struct {
	prev *node[T]
	next *node[T]

	chain    *chain[T]
	sentinel bool

	value T
}

// owner список, в котором сейчас живёт узел, nil для брошенной цепочки.
func (n *node[T]) owner() *List[T] {
	if n.chain == nil {
		return nil
	}

	return n.chain.list
}

// cleanup отвязка узла от соседей. По nil в prev узнаются удалённые узлы.
func (n *node[T]) cleanup() {
	n.prev = nil
	n.next = nil
}

// chain владелец цепочки узлов. Переезжает вместе с узлами при MoveFrom,
// так что позиции перенесённых узлов указывают на новый список.
type chain[T any] struct {
	list *List[T]
}

// noCopy для проверки copylocks в go vet.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
