// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package enumerable has small generic helpers over slices.
package enumerable

import "slices"

// Filter returns the elements that satisfy keep, leaving slice untouched.
func Filter[T any](slice []T, keep func(T) bool) []T {
	return slices.DeleteFunc(slices.Clone(slice), func(elem T) bool {
		return !keep(elem)
	})
}

func Map[T, R any](slice []T, mapper func(T) R) []R {
	mapped := make([]R, 0, len(slice))
	for _, elem := range slice {
		mapped = append(mapped, mapper(elem))
	}
	return mapped
}

// GroupBy buckets elements by key, keeping first-seen key order.
func GroupBy[T any, K comparable](slice []T, key func(T) K) ([]K, map[K][]T) {
	var order []K
	groups := make(map[K][]T)
	for _, elem := range slice {
		k := key(elem)
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], elem)
	}
	return order, groups
}
