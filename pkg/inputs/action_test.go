//go:build unit

package inputs

import (
	"testing"

	"github.com/sethvargo/go-githubactions"
	"github.com/stretchr/testify/assert"
)

func TestFromAction(t *testing.T) {
	env := map[string]string{
		"INPUT_TITLE":            "Weekly report",
		"INPUT_BODY":             "Body text",
		"INPUT_LABELS":           "recurring\nreport, weekly",
		"INPUT_ASSIGNEES":        "alice,bob",
		"INPUT_PINNED":           "true",
		"INPUT_CLOSE-PREVIOUS":   "True",
		"INPUT_LINKED-COMMENTS":  "1",
		"INPUT_ROTATE-ASSIGNEES": "false",
		"INPUT_PROJECT":          "5",
		"INPUT_PROJECT-TYPE":     "organization",
		"INPUT_COLUMN":           "To do",
		"INPUT_MILESTONE":        "3",
	}
	action := githubactions.New(githubactions.WithGetenv(func(key string) string {
		return env[key]
	}))

	in := FromAction(action)

	assert.Equal(t, "Weekly report", in.Title)
	assert.Equal(t, "Body text", in.Body)
	assert.Equal(t, []string{"recurring", "report", "weekly"}, in.Labels)
	assert.Equal(t, []string{"alice", "bob"}, in.Assignees)
	assert.True(t, in.Pinned)
	assert.True(t, in.ClosePrevious)
	assert.True(t, in.LinkedComments)
	assert.False(t, in.RotateAssignees)
	assert.Equal(t, 5, in.Project)
	assert.Equal(t, ProjectTypeOrganization, in.ProjectType)
	assert.Equal(t, "To do", in.Column)
	assert.Equal(t, 3, in.Milestone)
}

func TestFromAction_Defaults(t *testing.T) {
	action := githubactions.New(githubactions.WithGetenv(func(string) string {
		return ""
	}))

	in := FromAction(action)

	assert.Equal(t, Inputs{}, in)
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected []string
	}{
		{name: "Empty value", value: "", expected: nil},
		{name: "Separators only", value: " , \n ,", expected: nil},
		{name: "Single entry", value: "recurring", expected: []string{"recurring"}},
		{name: "Comma separated", value: "alice, bob", expected: []string{"alice", "bob"}},
		{name: "Newline separated", value: "alice\nbob\n", expected: []string{"alice", "bob"}},
		{name: "Mixed separators", value: "recurring\nreport, weekly", expected: []string{"recurring", "report", "weekly"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitList(tt.value))
		})
	}
}
