package postgres

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// Builder returns a squirrel statement builder using $n placeholders.
func Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// Returning renders a RETURNING clause for the given columns.
func Returning(cols []string) string {
	return "RETURNING " + strings.Join(cols, ", ")
}
