// Package issue provides data structures and error types for handling forge issues.
package issue

// NumberNone marks the number of an absent issue, e.g. when a series has no
// previous occurrence yet.
const NumberNone = -1

// Issue represents an issue on a forge.
type Issue struct {
	Number    int      `yaml:"number"`
	ID        int64    `yaml:"id,omitempty"`
	NodeID    string   `yaml:"node_id,omitempty"`
	Title     string   `yaml:"title,omitempty"`
	State     string   `yaml:"state,omitempty"`
	URL       string   `yaml:"url,omitempty"`
	Assignees []string `yaml:"assignees,omitempty"`
}

// None returns the absent issue.
func None() *Issue {
	return &Issue{Number: NumberNone}
}

// Exists reports whether the issue refers to a real tracker issue. Absent
// issues carry a negative number; tracker numbering starts at zero or above.
func (i *Issue) Exists() bool {
	return i != nil && i.Number >= 0
}

// FirstAssignee returns the login of the first assignee, or an empty string
// when the issue has none.
func (i *Issue) FirstAssignee() string {
	if i == nil || len(i.Assignees) == 0 {
		return ""
	}
	return i.Assignees[0]
}
