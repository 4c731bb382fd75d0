// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var literalLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`},
	{Name: "Punct", Pattern: `[\[\],]`},
	{Name: "whitespace", Pattern: `\s+`},
})

// literal is the grammar of a matrix literal: a bracketed list of rows.
type literal struct {
	Rows []*literalRow `parser:"\"[\" @@ ( \",\" @@ )* \"]\""`
}

// literalRow is one bracketed, comma-separated list of numbers.
type literalRow struct {
	Values []float64 `parser:"\"[\" @Number ( \",\" @Number )* \"]\""`
}

var literalParser = participle.MustBuild[literal](
	participle.Lexer(literalLexer),
)

// Parse reads a matrix literal such as "[[2, 0], [0, 2]]" into a new Dense.
// Numbers may be signed and use decimal or exponent notation.
//
// Errors:
//   - ErrParse for malformed input (unbalanced brackets, stray tokens, empty rows).
//   - ErrDimensionMismatch when rows have different lengths.
//
// Complexity: O(len(s)).
func Parse(s string) (*Dense, error) {
	lit, err := literalParser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("Parse: %w: %w", ErrParse, err)
	}
	rows := make([][]float64, len(lit.Rows))
	for i, row := range lit.Rows {
		rows[i] = row.Values
	}
	d, err := NewDenseFrom(rows)
	if err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}

	return d, nil
}

// MustParse is like Parse but panics on error. Intended for literals known
// at compile time (tests, examples).
func MustParse(s string) *Dense {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return d
}
