package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFourteenItems(t *testing.T) {
	first := New("", 14, PageSize)
	assert.Equal(t, 1, first.Number)
	assert.Equal(t, 2, first.NumPages)
	assert.Equal(t, 10, first.Len())
	assert.Equal(t, 0, first.Offset())
	assert.True(t, first.HasNext())
	assert.False(t, first.HasPrevious())

	second := New("2", 14, PageSize)
	assert.Equal(t, 2, second.Number)
	assert.Equal(t, 4, second.Len())
	assert.Equal(t, 10, second.Offset())
	assert.Equal(t, 11, second.StartIndex())
	assert.False(t, second.HasNext())
	assert.True(t, second.HasPrevious())
	assert.Equal(t, 1, second.PreviousNumber())
}

func TestNewClampsPageNumber(t *testing.T) {
	cases := map[string]int{
		"":    1,
		"abc": 1,
		"0":   1,
		"-3":  1,
		" 2 ": 2,
		"3":   3,
		"99":  3,
	}
	for raw, want := range cases {
		t.Run(raw, func(t *testing.T) {
			assert.Equal(t, want, New(raw, 25, PageSize).Number)
		})
	}
}

func TestNewEmptyCollection(t *testing.T) {
	p := New("5", 0, PageSize)
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, 1, p.NumPages)
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, 0, p.StartIndex())
	assert.False(t, p.HasOtherPages())
	assert.Equal(t, []int{1}, p.Numbers())
}

func TestNewExactMultiple(t *testing.T) {
	p := New("2", 20, PageSize)
	assert.Equal(t, 2, p.NumPages)
	assert.Equal(t, 10, p.Len())
	assert.Equal(t, 2, p.NextNumber())
}

func TestNewNonPositiveSizeUsesDefault(t *testing.T) {
	p := New("1", 30, 0)
	assert.Equal(t, PageSize, p.Size)
	assert.Equal(t, 3, p.NumPages)
}
