// MIT License
//
// Copyright (c) 2022-2026 GoAkt Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package future defines the asynchronous handle returned by controller operations.
//
// The mock controller never defers work: every Future it hands out is
// completed before it is returned, so IsDone reports true and Await never blocks.
package future

import "time"

// Future represents a value which may or may not currently be available,
// or an error if that value could not be made available.
type Future[T any] interface {
	// Await returns the result, waiting at most deadline for it
	Await(deadline time.Duration) Result[T]
	// AwaitUninterruptible waits till the future is completed
	AwaitUninterruptible() Result[T]
	// IsDone reports whether the future is completed without blocking
	IsDone() bool
	// Cancel cancels the pending work. It has no effect on a completed future.
	Cancel()
}

type completed[T any] struct {
	result *result[T]
}

// enforce compilation error
var _ Future[any] = (*completed[any])(nil)

// Completed returns a Future that is already completed with the given value.
func Completed[T any](value T) Future[T] {
	return &completed[T]{result: &result[T]{success: value}}
}

// Failed returns a Future that is already failed with the given error.
func Failed[T any](err error) Future[T] {
	return &completed[T]{result: &result[T]{failure: err}}
}

func (x *completed[T]) Await(time.Duration) Result[T] {
	return x.result
}

func (x *completed[T]) AwaitUninterruptible() Result[T] {
	return x.result
}

func (x *completed[T]) IsDone() bool {
	return true
}

func (x *completed[T]) Cancel() {}
