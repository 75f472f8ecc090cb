package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	cases := []struct {
		name      string
		total     int
		requested string
		want      Page
	}{
		{
			name:      "first page of a full listing",
			total:     25,
			requested: "1",
			want:      Page{Number: 1, Count: 3, Total: 25, Offset: 0, Limit: 10},
		},
		{
			name:      "last page is shorter",
			total:     25,
			requested: "3",
			want:      Page{Number: 3, Count: 3, Total: 25, Offset: 20, Limit: 5},
		},
		{
			name:      "past the end clamps to the last page",
			total:     25,
			requested: "99",
			want:      Page{Number: 3, Count: 3, Total: 25, Offset: 20, Limit: 5},
		},
		{
			name:      "zero clamps to the first page",
			total:     25,
			requested: "0",
			want:      Page{Number: 1, Count: 3, Total: 25, Offset: 0, Limit: 10},
		},
		{
			name:      "negative clamps to the first page",
			total:     25,
			requested: "-3",
			want:      Page{Number: 1, Count: 3, Total: 25, Offset: 0, Limit: 10},
		},
		{
			name:      "garbage clamps to the first page",
			total:     25,
			requested: "pterodactyl",
			want:      Page{Number: 1, Count: 3, Total: 25, Offset: 0, Limit: 10},
		},
		{
			name:      "missing parameter means the first page",
			total:     25,
			requested: "",
			want:      Page{Number: 1, Count: 3, Total: 25, Offset: 0, Limit: 10},
		},
		{
			name:      "empty listing still has one page",
			total:     0,
			requested: "5",
			want:      Page{Number: 1, Count: 1, Total: 0, Offset: 0, Limit: 0},
		},
		{
			name:      "exact multiple of the page size",
			total:     20,
			requested: "2",
			want:      Page{Number: 2, Count: 2, Total: 20, Offset: 10, Limit: 10},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Paginate(tc.total, tc.requested, PageSize))
		})
	}
}

func TestPageNavigation(t *testing.T) {
	first := Paginate(25, "1", PageSize)
	assert.False(t, first.HasPrev())
	assert.True(t, first.HasNext())
	assert.Equal(t, 2, first.Next())

	middle := Paginate(25, "2", PageSize)
	assert.True(t, middle.HasPrev())
	assert.True(t, middle.HasNext())
	assert.Equal(t, 1, middle.Prev())
	assert.Equal(t, 3, middle.Next())

	last := Paginate(25, "3", PageSize)
	assert.True(t, last.HasPrev())
	assert.False(t, last.HasNext())

	only := Paginate(4, "1", PageSize)
	assert.False(t, only.HasPrev())
	assert.False(t, only.HasNext())
}
