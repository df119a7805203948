package repository

import (
	"fmt"
	"strings"

	"codebook/internal/models"
)

// UpdateBuilder builds a partial UPDATE over a fixed, ordered column list so the
// statement shape depends only on which columns were supplied.
//
// The generated WHERE clause also requires at least one supplied column to
// differ from its stored value, so an update that changes nothing affects zero
// rows on every engine and is reported exactly like a missing row.
type UpdateBuilder struct {
	Table   string
	Key     string
	Columns []string
}

var postUpdateBuilder = UpdateBuilder{
	Table:   "post",
	Key:     "post_id",
	Columns: []string{"title", "content", "image"},
}

// Build returns the statement and its arguments. ok is false when no column in
// values is set; values for unknown columns are ignored.
func (b UpdateBuilder) Build(id any, values map[string]models.OptionalString) (query string, args []any, ok bool) {
	var sets, guards []string
	var setArgs []any

	for _, col := range b.Columns {
		v, present := values[col]
		if !present || !v.Set {
			continue
		}
		var arg any
		if p := v.Ptr(); p != nil {
			arg = *p
		}
		sets = append(sets, col+" = ?")
		guards = append(guards, col+" IS DISTINCT FROM ?")
		setArgs = append(setArgs, arg)
	}
	if len(sets) == 0 {
		return "", nil, false
	}

	query = fmt.Sprintf("UPDATE %s SET %s WHERE %s = ? AND (%s)",
		b.Table,
		strings.Join(sets, ", "),
		b.Key,
		strings.Join(guards, " OR "),
	)

	args = make([]any, 0, 2*len(setArgs)+1)
	args = append(args, setArgs...)
	args = append(args, id)
	args = append(args, setArgs...)
	return query, args, true
}

func postUpdateValues(u models.PostUpdate) map[string]models.OptionalString {
	return map[string]models.OptionalString{
		"title":   u.Title,
		"content": u.Content,
		"image":   u.Image,
	}
}
