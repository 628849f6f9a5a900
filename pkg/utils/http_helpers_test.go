package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilterFromQueryDefaults(t *testing.T) {
	filter := ParseFilterFromQuery(url.Values{})

	assert.Equal(t, DefaultLimit, filter.Limit)
	assert.Equal(t, 0, filter.Offset)
	assert.Empty(t, filter.Filter)
}

func TestParseFilterFromQueryLimitClamp(t *testing.T) {
	filter := ParseFilterFromQuery(url.Values{
		"limit":  {"9999"},
		"offset": {"40"},
	})

	assert.Equal(t, MaxLimit, filter.Limit)
	assert.Equal(t, 40, filter.Offset)
}

func TestParseFilterFromQueryEnumUppercased(t *testing.T) {
	filter := ParseFilterFromQuery(url.Values{
		"stage":    {"in_progress"},
		"priority": {"urgent"},
		"ignored":  {"value"},
	}, "stage", "priority")

	assert.Equal(t, "IN_PROGRESS", filter.Filter["stage"])
	assert.Equal(t, "URGENT", filter.Filter["priority"])
	assert.NotContains(t, filter.Filter, "ignored")
}

func TestParseFilterFromQueryKeepsUUIDCase(t *testing.T) {
	id := "7b8a2f1e-0c4d-4a6b-9e1f-2d3c4b5a6978"
	filter := ParseFilterFromQuery(url.Values{"team_id": {id}}, "team_id")

	assert.Equal(t, id, filter.Filter["team_id"])
}
