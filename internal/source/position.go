// Package source holds the position and text types shared by the lexer and its callers.
package source

import "fmt"

// Position is a 0-based row/column pair plus the byte offset into the input.
// It is a plain value: storing it anywhere takes a copy.
type Position struct {
	Row    int
	Col    int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row+1, p.Col+1)
}

// Before reports whether p comes before other in row/column order.
func (p Position) Before(other Position) bool {
	return p.Row < other.Row || (p.Row == other.Row && p.Col < other.Col)
}

// Advance moves p past the byte c. A newline starts the next row.
func (p *Position) Advance(c byte) {
	p.Offset++
	p.Col++
	if c == '\n' {
		p.Row++
		p.Col = 0
	}
}

// Range is the half-open span [Start, End) covered by a token or trivia run.
type Range struct {
	Start Position
	End   Position
}

// NewRange returns the range between two cursor snapshots.
func NewRange(start, end Position) Range {
	return Range{Start: start, End: end}
}

func (r Range) String() string {
	return fmt.Sprintf("%s..%s", r.Start, r.End)
}

// Len returns the byte length of the range.
func (r Range) Len() int {
	return r.End.Offset - r.Start.Offset
}

// Contains reports whether pos lies between Start and End, both inclusive,
// comparing rows first and columns only on the boundary rows.
func (r Range) Contains(pos Position) bool {
	return !pos.Before(r.Start) && !r.End.Before(pos)
}
