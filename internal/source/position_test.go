package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangeContainsSingleRow(t *testing.T) {
	r := NewRange(Position{Row: 2, Col: 4, Offset: 20}, Position{Row: 2, Col: 9, Offset: 25})

	assert.True(t, r.Contains(Position{Row: 2, Col: 4}))
	assert.True(t, r.Contains(Position{Row: 2, Col: 6}))
	assert.True(t, r.Contains(Position{Row: 2, Col: 9}))
	assert.False(t, r.Contains(Position{Row: 2, Col: 3}))
	assert.False(t, r.Contains(Position{Row: 2, Col: 10}))
	assert.False(t, r.Contains(Position{Row: 1, Col: 6}))
	assert.False(t, r.Contains(Position{Row: 3, Col: 6}))
}

func TestRangeContainsInteriorRows(t *testing.T) {
	r := NewRange(Position{Row: 1, Col: 5}, Position{Row: 4, Col: 2})

	// interior rows are contained at any column
	assert.True(t, r.Contains(Position{Row: 2, Col: 0}))
	assert.True(t, r.Contains(Position{Row: 3, Col: 80}))

	// boundary rows only on the inside of the endpoints
	assert.True(t, r.Contains(Position{Row: 1, Col: 50}))
	assert.False(t, r.Contains(Position{Row: 1, Col: 4}))
	assert.True(t, r.Contains(Position{Row: 4, Col: 0}))
	assert.False(t, r.Contains(Position{Row: 4, Col: 3}))
	assert.False(t, r.Contains(Position{Row: 5, Col: 0}))
}

func TestPositionIsAValue(t *testing.T) {
	cursor := Position{Row: 0, Col: 3, Offset: 3}
	r := NewRange(cursor, cursor)

	cursor.Col++
	cursor.Offset++

	assert.Equal(t, 3, r.Start.Offset)
	assert.Equal(t, 3, r.End.Col)
	assert.Equal(t, 0, r.Len())
}

func TestPositionString(t *testing.T) {
	assert.Equal(t, "1:1", Position{}.String())
	assert.Equal(t, "3:8", Position{Row: 2, Col: 7, Offset: 30}.String())
	assert.Equal(t, "1:1..1:4", NewRange(Position{}, Position{Col: 3, Offset: 3}).String())
}

func TestPositionAdvance(t *testing.T) {
	var pos Position
	for _, c := range []byte("ab\nc") {
		pos.Advance(c)
	}
	assert.Equal(t, Position{Row: 1, Col: 1, Offset: 4}, pos)

	pos.Advance('\n')
	assert.Equal(t, Position{Row: 2, Col: 0, Offset: 5}, pos)
}
