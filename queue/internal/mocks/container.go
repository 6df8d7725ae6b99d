// Package mocks содержит моки для тестов очереди.
package mocks

import (
	"reflect"

	"github.com/golang/mock/gomock"
	"github.com/sirkon/dlqueue/queue"
)

// ContainerMock is a mock of Container interface.
type ContainerMock[T any] struct {
	ctrl     *gomock.Controller
	recorder *ContainerMockMockRecorder[T]
}

// ContainerMockMockRecorder is the mock recorder for ContainerMock.
type ContainerMockMockRecorder[T any] struct {
	mock *ContainerMock[T]
}

// NewContainerMock creates a new mock instance.
func NewContainerMock[T any](ctrl *gomock.Controller) *ContainerMock[T] {
	mock := &ContainerMock[T]{ctrl: ctrl}
	mock.recorder = &ContainerMockMockRecorder[T]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *ContainerMock[T]) EXPECT() *ContainerMockMockRecorder[T] {
	return m.recorder
}

// Back mocks base method.
func (m *ContainerMock[T]) Back() T {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Back")
	ret0, _ := ret[0].(T)
	return ret0
}

// Back indicates an expected call of Back.
func (mr *ContainerMockMockRecorder[T]) Back() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Back", reflect.TypeOf((*ContainerMock[T])(nil).Back))
}

// Clone mocks base method.
func (m *ContainerMock[T]) Clone() queue.Container[T] {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Clone")
	ret0, _ := ret[0].(queue.Container[T])
	return ret0
}

// Clone indicates an expected call of Clone.
func (mr *ContainerMockMockRecorder[T]) Clone() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Clone", reflect.TypeOf((*ContainerMock[T])(nil).Clone))
}

// Empty mocks base method.
func (m *ContainerMock[T]) Empty() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Empty")
	ret0, _ := ret[0].(bool)
	return ret0
}

// Empty indicates an expected call of Empty.
func (mr *ContainerMockMockRecorder[T]) Empty() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Empty", reflect.TypeOf((*ContainerMock[T])(nil).Empty))
}

// Front mocks base method.
func (m *ContainerMock[T]) Front() T {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Front")
	ret0, _ := ret[0].(T)
	return ret0
}

// Front indicates an expected call of Front.
func (mr *ContainerMockMockRecorder[T]) Front() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Front", reflect.TypeOf((*ContainerMock[T])(nil).Front))
}

// Len mocks base method.
func (m *ContainerMock[T]) Len() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Len")
	ret0, _ := ret[0].(int)
	return ret0
}

// Len indicates an expected call of Len.
func (mr *ContainerMockMockRecorder[T]) Len() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Len", reflect.TypeOf((*ContainerMock[T])(nil).Len))
}

// PopFront mocks base method.
func (m *ContainerMock[T]) PopFront() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "PopFront")
}

// PopFront indicates an expected call of PopFront.
func (mr *ContainerMockMockRecorder[T]) PopFront() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PopFront", reflect.TypeOf((*ContainerMock[T])(nil).PopFront))
}

// PushBack mocks base method.
func (m *ContainerMock[T]) PushBack(v T) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "PushBack", v)
}

// PushBack indicates an expected call of PushBack.
func (mr *ContainerMockMockRecorder[T]) PushBack(v interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PushBack", reflect.TypeOf((*ContainerMock[T])(nil).PushBack), v)
}

var _ queue.Container[int] = &ContainerMock[int]{}
