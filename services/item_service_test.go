package services

import (
	"reflect"
	"strings"
	"testing"
	"vendora_server/structs/tables"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hasBunColumn reports whether the model declares the column in its bun tags
func hasBunColumn(model any, column string) bool {
	t := reflect.TypeOf(model).Elem()
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("bun")
		if tag == column || strings.HasPrefix(tag, column+",") {
			return true
		}
	}
	return false
}

func TestItemScopedTablesCoverDependents(t *testing.T) {
	// Deleting a listing must scrub every table that references it, or
	// media keeps rendering and like counts keep counting for a listing
	// that no longer exists.
	wanted := []any{
		(*tables.Media)(nil),
		(*tables.ItemView)(nil),
		(*tables.ItemLike)(nil),
		(*tables.Comment)(nil),
		(*tables.Notification)(nil),
	}
	for _, model := range wanted {
		assert.Contains(t, itemScopedTables, model, "%s missing from item cascade", reflect.TypeOf(model).Elem().Name())
	}

	for _, model := range itemScopedTables {
		require.True(t, hasBunColumn(model, "item_id"),
			"%s has no item_id column; its cascade delete would fail", reflect.TypeOf(model).Elem().Name())
	}
}

func TestStoreScopedTablesCoverDependents(t *testing.T) {
	wanted := []any{
		(*tables.Media)(nil),
		(*tables.Notification)(nil),
		(*tables.Report)(nil),
	}
	for _, model := range wanted {
		assert.Contains(t, storeScopedTables, model, "%s missing from store cascade", reflect.TypeOf(model).Elem().Name())
	}

	for _, model := range storeScopedTables {
		require.True(t, hasBunColumn(model, "store_id"),
			"%s has no store_id column; its cascade delete would fail", reflect.TypeOf(model).Elem().Name())
	}
}
