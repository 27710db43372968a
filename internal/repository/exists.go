package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/news-api/internal/apperrors"
	"github.com/news-api/internal/database"
)

// existenceChecker is the concrete implementation of ExistenceChecker
type existenceChecker struct {
	db *database.DB
}

// NewExistenceChecker creates a new existence checker
func NewExistenceChecker(db *database.DB) ExistenceChecker {
	return &existenceChecker{db: db}
}

// Exists returns nil when at least one row of table has column equal to
// value, and a not-found error otherwise. table and column must be
// greenlisted together; the value is always bound.
func (c *existenceChecker) Exists(ctx context.Context, table, column string, value interface{}) error {
	if !IsCheckable(table, column) {
		return apperrors.BadRequest(apperrors.MsgBadRequest)
	}

	query, args, err := psql.Select("1").
		From(table).
		Where(squirrel.Eq{column: value}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return err
	}

	var exists bool
	if err := c.db.QueryRowxContext(ctx, query, args...).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return apperrors.NotFoundIn(table, column, value)
	}
	return nil
}
