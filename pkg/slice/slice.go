// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

/*
Package slice complements the standard [slices] package by providing
functional programming utilities (Map, Filter, UniqueBy) leveraging generics.
*/
package slice

// Map maps a slice of type T to a slice of type U using the provided
// transformation function.
func Map[T any, U any](input []T, transform func(T) U) []U {
	if input == nil {
		return nil
	}

	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}

	return result
}

// Filter filters a slice, returning only elements where the predicate
// function evaluates to true.
func Filter[T any](input []T, predicate func(T) bool) []T {
	if input == nil {
		return nil
	}

	// Not pre-allocating to full length to avoid excessive memory on heavy filters
	var result []T
	for _, v := range input {
		if predicate(v) {
			result = append(result, v)
		}
	}

	return result
}

// UniqueBy de-duplicates a slice by a comparable key, preserving first-seen
// order. Tag-inheritance search unions result sets from several queries and
// relies on this to collapse items that match more than one source.
func UniqueBy[T any, K comparable](input []T, key func(T) K) []T {
	if input == nil {
		return nil
	}

	seen := make(map[K]struct{}, len(input))
	var result []T
	for _, v := range input {
		k := key(v)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		result = append(result, v)
	}

	return result
}
