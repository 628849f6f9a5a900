package db

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gearguard/pkg/types"
)

var allowed = map[string]string{
	"stage":   "mr.stage::text",
	"team_id": "mr.team_id::text",
}

func baseBuilder() sq.SelectBuilder {
	return sq.Select("mr.id").
		From("app.maintenance_request mr").
		PlaceholderFormat(sq.Dollar)
}

func TestApplyListParamsFilters(t *testing.T) {
	filter := types.Filter{
		Filter: map[string]interface{}{
			"stage":   "NEW",
			"unknown": "dropped",
		},
		Limit: 50,
	}

	query, args, err := ApplyListParams(baseBuilder(), filter, allowed).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "mr.stage::text = $1")
	assert.NotContains(t, query, "unknown")
	assert.Contains(t, query, "LIMIT 50")
	assert.Equal(t, []interface{}{"NEW"}, args)
}

func TestApplyListParamsCommaListBecomesIn(t *testing.T) {
	filter := types.Filter{
		Filter: map[string]interface{}{"stage": "NEW,IN_PROGRESS"},
	}

	query, args, err := ApplyListParams(baseBuilder(), filter, allowed).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "mr.stage::text IN ($1,$2)")
	assert.Equal(t, []interface{}{"NEW", "IN_PROGRESS"}, args)
}

func TestApplyListParamsSort(t *testing.T) {
	filter := types.Filter{
		Sort: map[string]string{"stage": "desc"},
	}

	query, _, err := ApplyListParams(baseBuilder(), filter, allowed).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "ORDER BY mr.stage::text DESC")
}
