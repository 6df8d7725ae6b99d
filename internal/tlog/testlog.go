// Package tlog вывод структурированных ошибок в тестах: текст ошибки и
// поля контекста, по одному на строку.
package tlog

import (
	"fmt"
	"strings"

	"github.com/sirkon/errors"
)

const (
	bold  = "\033[1m"
	red   = "\033[1;31m"
	reset = "\033[0m"
)

// Log вывод ошибки без провала теста.
func Log(t TestingPrinter, err error) {
	t.Helper()
	t.Log(render(err, bold))
}

// Error вывод ошибки с провалом теста.
func Error(t TestingPrinter, err error) {
	t.Helper()
	t.Error(render(err, red))
}

// Check возвращает false для nil, иначе проваливает тест с выводом ошибки.
func Check(t TestingPrinter, err error) bool {
	if err == nil {
		return false
	}

	t.Helper()
	t.Error(render(err, red))
	return true
}

// Recover выполнение op с перехватом паники. Возвращает ошибку, с которой
// паниковала op, или nil если паники не было. Паника не ошибкой
// оборачивается в ошибку с полем panic-value.
func Recover(op func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		if e, ok := r.(error); ok {
			err = e
			return
		}

		err = errors.New("non-error panic").Any("panic-value", r)
	}()

	op()
	return nil
}

func render(err error, highlight string) string {
	if err == nil {
		return "<nil>"
	}

	var b strings.Builder
	b.WriteString(highlight)
	b.WriteString(err.Error())
	b.WriteString(reset)
	b.WriteByte('\n')

	d := errors.GetContextDeliverer(err)
	if d == nil {
		return b.String()
	}

	var c contextCollector
	d.Deliver(&c)

	w := c.width()
	for _, v := range c.vars {
		b.WriteString("    ")
		b.WriteString(bold)
		b.WriteString(v.name)
		b.WriteString(reset)
		b.WriteString(": ")
		b.WriteString(strings.Repeat(" ", w-len(v.name)))
		_, _ = fmt.Fprintln(&b, v.value)
	}

	return b.String()
}
