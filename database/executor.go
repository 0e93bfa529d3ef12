package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

// ErrNoRows is returned when a query expecting a row finds none
var ErrNoRows = sql.ErrNoRows

// buildBunQuery translates the accumulated builder state into a bun SELECT query
func (q *QueryBuilder[T]) buildBunQuery(model any) *bun.SelectQuery {
	query := q.db.NewSelect().Model(model)

	query = applyConditions(query, q.conditions, q.orGroups)

	for _, rel := range q.relations {
		query = query.Relation(rel)
	}

	for _, order := range q.orders {
		query = query.OrderExpr("? ?", bun.Ident(order.Column), bun.Safe(order.Direction))
	}

	if q.limit > 0 {
		query = query.Limit(q.limit)
	}
	if q.offset > 0 {
		query = query.Offset(q.offset)
	}

	return query
}

// applyConditions applies WHERE conditions and OR groups to a select query
func applyConditions(query *bun.SelectQuery, conditions []WhereCondition, orGroups []WhereGroup) *bun.SelectQuery {
	for _, cond := range conditions {
		query = query.Where(conditionSQL(cond), conditionArgs(cond)...)
	}

	for _, group := range orGroups {
		group := group
		query = query.WhereGroup(" AND ", func(sq *bun.SelectQuery) *bun.SelectQuery {
			for _, cond := range group.Conditions {
				sq = sq.WhereOr(conditionSQL(cond), conditionArgs(cond)...)
			}
			return sq
		})
	}

	return query
}

func conditionSQL(cond WhereCondition) string {
	if cond.Raw != "" {
		return cond.Raw
	}

	switch cond.Operator {
	case "IS NULL", "IS NOT NULL":
		return fmt.Sprintf("? %s", cond.Operator)
	case "IN":
		return "? IN (?)"
	default:
		return fmt.Sprintf("? %s ?", cond.Operator)
	}
}

func conditionArgs(cond WhereCondition) []any {
	if cond.Raw != "" {
		return cond.Args
	}

	switch cond.Operator {
	case "IS NULL", "IS NOT NULL":
		return []any{bun.Ident(cond.Column)}
	case "IN":
		return []any{bun.Ident(cond.Column), bun.In(cond.Value)}
	default:
		return []any{bun.Ident(cond.Column), cond.Value}
	}
}

// All executes the query and returns all matching rows
func (q *QueryBuilder[T]) All(ctx context.Context) ([]T, error) {
	queryCtx, cancel := context.WithTimeout(ctx, q.timeout)
	defer cancel()

	var results []T
	err := WithRetry(queryCtx, func() error {
		results = results[:0]
		return q.buildBunQuery(&results).Scan(queryCtx)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query %T: %w", *new(T), err)
	}

	return results, nil
}

// First executes the query and returns the first matching row.
// Returns (nil, nil) when no row matches.
func (q *QueryBuilder[T]) First(ctx context.Context) (*T, error) {
	queryCtx, cancel := context.WithTimeout(ctx, q.timeout)
	defer cancel()

	var result T
	err := WithRetry(queryCtx, func() error {
		return q.buildBunQuery(&result).Limit(1).Scan(queryCtx)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query %T: %w", result, err)
	}

	return &result, nil
}

// Count returns the number of rows matching the query
func (q *QueryBuilder[T]) Count(ctx context.Context) (int, error) {
	queryCtx, cancel := context.WithTimeout(ctx, q.timeout)
	defer cancel()

	var count int
	err := WithRetry(queryCtx, func() error {
		var model T
		var countErr error
		count, countErr = q.buildBunQuery(&model).Count(queryCtx)
		return countErr
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count rows: %w", err)
	}

	return count, nil
}

// Exists reports whether any row matches the query
func (q *QueryBuilder[T]) Exists(ctx context.Context) (bool, error) {
	queryCtx, cancel := context.WithTimeout(ctx, q.timeout)
	defer cancel()

	var exists bool
	err := WithRetry(queryCtx, func() error {
		var model T
		var existsErr error
		exists, existsErr = q.buildBunQuery(&model).Exists(queryCtx)
		return existsErr
	})
	if err != nil {
		return false, fmt.Errorf("failed to check existence: %w", err)
	}

	return exists, nil
}

// Insert inserts a single row, scans generated columns back into the model
// and returns it
func (q *QueryBuilder[T]) Insert(ctx context.Context, data *T) (*T, error) {
	queryCtx, cancel := context.WithTimeout(ctx, q.timeout)
	defer cancel()

	err := WithRetry(queryCtx, func() error {
		_, execErr := q.db.NewInsert().Model(data).Returning("*").Exec(queryCtx)
		return execErr
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert %T: %w", *data, err)
	}

	return data, nil
}

// Update applies the given column updates to all rows matching the query
// and returns the number of rows affected
func (q *QueryBuilder[T]) Update(ctx context.Context, updates map[string]any) (int64, error) {
	if len(updates) == 0 {
		return 0, fmt.Errorf("no updates provided")
	}

	queryCtx, cancel := context.WithTimeout(ctx, q.timeout)
	defer cancel()

	var affected int64
	err := WithRetry(queryCtx, func() error {
		var model T
		query := q.db.NewUpdate().Model(&model)

		for column, value := range updates {
			query = query.Set("? = ?", bun.Ident(column), value)
		}

		for _, cond := range q.conditions {
			query = query.Where(conditionSQL(cond), conditionArgs(cond)...)
		}

		result, execErr := query.Exec(queryCtx)
		if execErr != nil {
			return execErr
		}
		affected, execErr = result.RowsAffected()
		return execErr
	})
	if err != nil {
		return 0, fmt.Errorf("failed to update rows: %w", err)
	}

	return affected, nil
}

// Increment atomically adds delta to a numeric column on all matching rows
func (q *QueryBuilder[T]) Increment(ctx context.Context, column string, delta int64) (int64, error) {
	queryCtx, cancel := context.WithTimeout(ctx, q.timeout)
	defer cancel()

	var affected int64
	err := WithRetry(queryCtx, func() error {
		var model T
		query := q.db.NewUpdate().
			Model(&model).
			Set("? = ? + ?", bun.Ident(column), bun.Ident(column), delta)

		for _, cond := range q.conditions {
			query = query.Where(conditionSQL(cond), conditionArgs(cond)...)
		}

		result, execErr := query.Exec(queryCtx)
		if execErr != nil {
			return execErr
		}
		affected, execErr = result.RowsAffected()
		return execErr
	})
	if err != nil {
		return 0, fmt.Errorf("failed to increment %s: %w", column, err)
	}

	return affected, nil
}

// Delete removes all rows matching the query and returns the number of rows affected
func (q *QueryBuilder[T]) Delete(ctx context.Context) (int64, error) {
	queryCtx, cancel := context.WithTimeout(ctx, q.timeout)
	defer cancel()

	var affected int64
	err := WithRetry(queryCtx, func() error {
		var model T
		query := q.db.NewDelete().Model(&model)

		for _, cond := range q.conditions {
			query = query.Where(conditionSQL(cond), conditionArgs(cond)...)
		}

		result, execErr := query.Exec(queryCtx)
		if execErr != nil {
			return execErr
		}
		affected, execErr = result.RowsAffected()
		return execErr
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete rows: %w", err)
	}

	return affected, nil
}
