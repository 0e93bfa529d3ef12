package database

import (
	"time"
)

// WhereCondition represents a single WHERE condition
type WhereCondition struct {
	Column   string
	Operator string
	Value    any
	Raw      string // for raw SQL conditions
	Args     []any  // arguments for raw conditions
}

// WhereGroup represents a group of conditions joined by OR
type WhereGroup struct {
	Conditions []WhereCondition
}

// OrderClause represents an ORDER BY clause
type OrderClause struct {
	Column    string
	Direction string // ASC or DESC
}

// QueryBuilder provides a fluent interface for building database queries.
// The target table is derived from T's bun model tags.
type QueryBuilder[T any] struct {
	db         *DB
	conditions []WhereCondition
	orGroups   []WhereGroup
	orders     []OrderClause
	relations  []string
	limit      int
	offset     int
	timeout    time.Duration
}

// Query creates a new query builder for the model type T
func Query[T any](db *DB) *QueryBuilder[T] {
	return &QueryBuilder[T]{
		db:      db,
		timeout: 30 * time.Second,
	}
}

// Where adds an equality condition to the query
func (q *QueryBuilder[T]) Where(column string, value any) *QueryBuilder[T] {
	return q.WhereOp(column, "=", value)
}

// WhereOp adds a condition with a custom operator to the query
func (q *QueryBuilder[T]) WhereOp(column, operator string, value any) *QueryBuilder[T] {
	q.conditions = append(q.conditions, WhereCondition{
		Column:   column,
		Operator: operator,
		Value:    value,
	})
	return q
}

// WhereIn adds an IN condition to the query
func (q *QueryBuilder[T]) WhereIn(column string, values any) *QueryBuilder[T] {
	q.conditions = append(q.conditions, WhereCondition{
		Column:   column,
		Operator: "IN",
		Value:    values,
	})
	return q
}

// WhereNull adds an IS NULL condition to the query
func (q *QueryBuilder[T]) WhereNull(column string) *QueryBuilder[T] {
	q.conditions = append(q.conditions, WhereCondition{
		Column:   column,
		Operator: "IS NULL",
	})
	return q
}

// WhereRaw adds a raw SQL condition to the query
func (q *QueryBuilder[T]) WhereRaw(condition string, args ...any) *QueryBuilder[T] {
	q.conditions = append(q.conditions, WhereCondition{
		Raw:  condition,
		Args: args,
	})
	return q
}

// WhereAny adds a group of equality conditions joined by OR
func (q *QueryBuilder[T]) WhereAny(conditions ...WhereCondition) *QueryBuilder[T] {
	q.orGroups = append(q.orGroups, WhereGroup{Conditions: conditions})
	return q
}

// Eq builds an equality condition for use with WhereAny
func Eq(column string, value any) WhereCondition {
	return WhereCondition{Column: column, Operator: "=", Value: value}
}

// OrderBy adds an ORDER BY clause to the query
func (q *QueryBuilder[T]) OrderBy(column, direction string) *QueryBuilder[T] {
	if direction != "ASC" && direction != "DESC" {
		direction = "ASC"
	}
	q.orders = append(q.orders, OrderClause{
		Column:    column,
		Direction: direction,
	})
	return q
}

// Relation includes a named relation in the query result
func (q *QueryBuilder[T]) Relation(name string) *QueryBuilder[T] {
	q.relations = append(q.relations, name)
	return q
}

// Limit sets the maximum number of rows to return
func (q *QueryBuilder[T]) Limit(limit int) *QueryBuilder[T] {
	q.limit = limit
	return q
}

// Offset sets the number of rows to skip
func (q *QueryBuilder[T]) Offset(offset int) *QueryBuilder[T] {
	q.offset = offset
	return q
}

// WithTimeout sets a custom timeout for the query execution
func (q *QueryBuilder[T]) WithTimeout(timeout time.Duration) *QueryBuilder[T] {
	q.timeout = timeout
	return q
}
