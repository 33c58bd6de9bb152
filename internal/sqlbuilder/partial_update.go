package sqlbuilder

import (
	"errors"
	"fmt"
	"strings"

	"jobly/internal/domain/entity"
)

var ErrInvalidChangeSet = errors.New("invalid change set")

// JobUpdateColumns lists the job fields an update may change and their
// columns. The owning company and the identifier are never writable.
var JobUpdateColumns = map[string]string{
	"title":  "title",
	"salary": "salary",
	"equity": "equity",
}

// PartialUpdate builds the SET fragment for the fields in changes.
//
// columns is the allow-list: it maps each logical field that may be written
// to its storage column. A field outside it, or an empty change set, is
// rejected before anything is built. Assignments and the returned values
// follow the change set's insertion order, numbered from $1; the caller binds
// the record identifier after them.
func PartialUpdate(changes entity.ChangeSet, columns map[string]string) (string, []any, error) {
	if changes.Len() == 0 {
		return "", nil, fmt.Errorf("%w: no fields to update", ErrInvalidChangeSet)
	}

	fields := changes.Keys()
	for _, field := range fields {
		if _, ok := columns[field]; !ok {
			return "", nil, fmt.Errorf("%w: field %q cannot be updated", ErrInvalidChangeSet, field)
		}
	}

	var a args
	assignments := make([]string, 0, len(fields))
	for _, field := range fields {
		value, _ := changes.Get(field)
		assignments = append(assignments, quoteIdentifier(columns[field])+"="+a.bind(value))
	}

	return strings.Join(assignments, ", "), a.values, nil
}
