package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRequestStage(t *testing.T) {
	cases := []struct {
		in    string
		want  RequestStage
		valid bool
	}{
		{"NEW", StageNew, true},
		{"new", StageNew, true},
		{"In_Progress", StageInProgress, true},
		{"repaired", StageRepaired, true},
		{"SCRAP", StageScrap, true},
		{"done", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := ParseRequestStage(tc.in)
		assert.Equal(t, tc.valid, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestLowercaseLabels(t *testing.T) {
	assert.Equal(t, "in_progress", StageInProgress.Lower())
	assert.Equal(t, "urgent", PriorityUrgent.Lower())
}
