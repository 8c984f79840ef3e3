package store

import (
	"context"
	"database/sql"
	"slices"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/SergeyParamoshkin/ncnews/internal/apperror"
)

// Entity is a table that can be checked with Exists.
type Entity string

const (
	Topics   Entity = "topics"
	Users    Entity = "users"
	Articles Entity = "articles"
	Comments Entity = "comments"
)

// keyFields lists, per entity, the columns Exists may look up by. Nothing
// outside this table is ever interpolated into SQL.
var keyFields = map[Entity][]string{
	Topics:   {"slug"},
	Users:    {"username"},
	Articles: {"article_id"},
	Comments: {"comment_id"},
}

// Row is a single database row keyed by column name.
type Row map[string]interface{}

// Exists looks up the row of kind whose field equals value. It fails with
// apperror NotFound when there is none, and with BadRequest when the entity or
// field is not recognised or the database rejects value for that column.
func (s *Store) Exists(ctx context.Context, kind Entity, field string, value interface{}) (Row, error) {
	if !slices.Contains(keyFields[kind], field) {
		return nil, apperror.BadRequest()
	}

	query, args, err := s.sq.Select("*").
		From(string(kind)).
		Where(squirrel.Eq{field: value}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build exists query")
	}

	row := Row{}
	err = s.db.QueryRowxContext(ctx, query, args...).MapScan(row)
	switch {
	case err == nil:
		return row, nil
	case errors.Is(err, sql.ErrNoRows):
		return nil, apperror.NotFound()
	case isRejectedInput(err):
		return nil, errors.Wrap(apperror.BadRequest(), err.Error())
	}

	return nil, errors.Wrapf(err, "check %s.%s exists", kind, field)
}

// isRejectedInput reports whether Postgres refused the statement because of
// the data or identifiers it was given rather than a server-side failure.
func isRejectedInput(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}

	switch pqErr.Code.Class() {
	case "22", "42": // data exception, syntax error or access rule violation
		return true
	}

	return false
}
