// Package rotation provides round-robin selection over an assignee list.
package rotation

// Next returns the assignee that follows previous in the rotation list, as a
// single-element slice ready to be set on a new issue.
//
// The rotation rules are:
//   - The list order defines the rotation order.
//   - The successor of the last entry is the first entry (wrap-around).
//   - When previous is empty or not present in the list, rotation starts at
//     the first entry.
//   - When previous appears more than once, its first occurrence counts.
//   - An empty list yields nil.
func Next(assignees []string, previous string) []string {
	if len(assignees) == 0 {
		return nil
	}

	index := -1
	for i, assignee := range assignees {
		if assignee == previous {
			index = i
			break
		}
	}

	return []string{assignees[(index+1)%len(assignees)]}
}
