// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

package slice_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ashercourt/marquee/pkg/slice"
)

func TestMap(t *testing.T) {
	got := slice.Map([]string{"film", "song"}, strings.ToUpper)
	assert.Equal(t, []string{"FILM", "SONG"}, got)
	assert.Nil(t, slice.Map(nil, strings.ToUpper))
}

func TestFilter(t *testing.T) {
	got := slice.Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
	assert.Equal(t, []int{2, 4}, got)
	assert.Nil(t, slice.Filter([]int{1, 3}, func(n int) bool { return n > 10 }))
}

func TestUniqueBy(t *testing.T) {
	type item struct{ ID string }

	input := []item{{"a"}, {"b"}, {"a"}, {"c"}, {"b"}}
	got := slice.UniqueBy(input, func(i item) string { return i.ID })

	assert.Equal(t, []item{{"a"}, {"b"}, {"c"}}, got)
	assert.Nil(t, slice.UniqueBy(nil, func(i item) string { return i.ID }))
}
