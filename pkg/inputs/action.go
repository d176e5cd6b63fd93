package inputs

import (
	"strconv"
	"strings"

	"github.com/sethvargo/go-githubactions"
)

// FromAction reads inputs from the GitHub Actions environment. Names follow
// the action manifest convention (kebab-case); list inputs accept newline or
// comma separated values; boolean inputs accept the usual true/false forms.
func FromAction(action *githubactions.Action) Inputs {
	return Inputs{
		Title:           action.GetInput("title"),
		Body:            action.GetInput("body"),
		Labels:          SplitList(action.GetInput("labels")),
		Assignees:       SplitList(action.GetInput("assignees")),
		Pinned:          parseBool(action.GetInput("pinned")),
		ClosePrevious:   parseBool(action.GetInput("close-previous")),
		LinkedComments:  parseBool(action.GetInput("linked-comments")),
		RotateAssignees: parseBool(action.GetInput("rotate-assignees")),
		Project:         parseInt(action.GetInput("project")),
		ProjectType:     action.GetInput("project-type"),
		Column:          action.GetInput("column"),
		Milestone:       parseInt(action.GetInput("milestone")),
	}
}

// SplitList splits a list input on newlines and commas, trimming whitespace
// and dropping empty entries.
func SplitList(value string) []string {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == '\n' || r == ','
	})

	var items []string
	for _, field := range fields {
		if trimmed := strings.TrimSpace(field); trimmed != "" {
			items = append(items, trimmed)
		}
	}

	return items
}

func parseBool(value string) bool {
	parsed, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(value)))
	return err == nil && parsed
}

func parseInt(value string) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return parsed
}
