// Package util holds small generic helpers shared by the ranges packages.
package util

import "iter"

// ConcatIter chains several iterators into one.
func ConcatIter[A any](iters ...iter.Seq[A]) iter.Seq[A] {
	return func(yield func(A) bool) {
		for _, thisIter := range iters {
			for v := range thisIter {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// MapIter applies f to every element of it.
func MapIter[A, B any](it iter.Seq[A], f func(A) B) iter.Seq[B] {
	return func(yield func(B) bool) {
		for v := range it {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// Reverse iterates a slice from its last element to its first.
func Reverse[A any](slice []A) iter.Seq[A] {
	return func(yield func(A) bool) {
		for i := len(slice) - 1; i >= 0; i-- {
			if !yield(slice[i]) {
				return
			}
		}
	}
}
