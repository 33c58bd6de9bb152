// Package sqlbuilder compiles optional search criteria and partial updates
// into parameterized PostgreSQL fragments. Values never reach the SQL text;
// every user-supplied value is bound to a $n placeholder.
package sqlbuilder

import (
	"strconv"
	"strings"
)

// args accumulates bound values and hands out their placeholders.
type args struct {
	values []any
}

func (a *args) bind(v any) string {
	a.values = append(a.values, v)
	return "$" + strconv.Itoa(len(a.values))
}

// Placeholder returns the positional placeholder for the n-th parameter (1-based).
func Placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
