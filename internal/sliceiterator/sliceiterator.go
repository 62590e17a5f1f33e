// This file is part of appargs.
//
// Copyright (C) 2024  The appargs authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package sliceiterator - cursor over a slice of tokens that can consume a
// fixed number of trailing values in one step.
package sliceiterator

// Iterator - iterator data
type Iterator struct {
	data *[]string
	idx  int
}

// New - builds a string Iterator positioned before the first element.
func New(s *[]string) *Iterator {
	return &Iterator{data: s, idx: -1}
}

// Size - returns Iterator size
func (a *Iterator) Size() int {
	return len(*a.data)
}

// Index - return current index.
func (a *Iterator) Index() int {
	return a.idx
}

// Next - moves the index forward and returns a bool to indicate if there is another value.
func (a *Iterator) Next() bool {
	if a.idx < len(*a.data) {
		a.idx++
	}
	return a.idx < len(*a.data)
}

// Value - returns value at current index or an empty string if the list has
// been fully read.
func (a *Iterator) Value() string {
	if a.idx < 0 || a.idx >= len(*a.data) {
		return ""
	}
	return (*a.data)[a.idx]
}

// RemainingAfter - number of elements after the current index.
func (a *Iterator) RemainingAfter() int {
	n := len(*a.data) - (a.idx + 1)
	if n < 0 {
		return 0
	}
	return n
}

// Take - consumes the next n elements and returns them as a fresh slice.
// Returns false without advancing when fewer than n elements remain.
func (a *Iterator) Take(n int) ([]string, bool) {
	if a.RemainingAfter() < n {
		return nil, false
	}
	vals := append([]string{}, (*a.data)[a.idx+1:a.idx+1+n]...)
	a.idx += n
	return vals, true
}

// Reset - resets the index of the Iterator.
func (a *Iterator) Reset() {
	a.idx = -1
}
