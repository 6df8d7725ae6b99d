package dllist

import "github.com/sirkon/errors"

// Нарушения контракта списка. Методы паникуют ошибками обёрнутыми
// вокруг этих значений, их можно различить через errors.Is после recover.
var (
	// ErrEmptyList обращение к элементам пустого списка.
	ErrEmptyList = errors.Const("list is empty")

	// ErrEndPosition разыменование или удаление позиции стража.
	ErrEndPosition = errors.Const("position points to a sentinel")

	// ErrForeignPosition позиция получена от другого списка.
	ErrForeignPosition = errors.Const("position belongs to another list")

	// ErrInvalidPosition нулевая позиция или позиция удалённого узла.
	ErrInvalidPosition = errors.Const("invalid position")
)
