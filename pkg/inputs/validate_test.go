//go:build unit

package inputs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		inputs  Inputs
		wantErr error
	}{
		{
			name:   "Title only",
			inputs: Inputs{Title: "Weekly report"},
		},
		{
			name:    "Empty title",
			inputs:  Inputs{},
			wantErr: ErrTitleRequired,
		},
		{
			name: "Empty title with everything else set",
			inputs: Inputs{
				Body:      "body",
				Labels:    []string{"recurring"},
				Assignees: []string{"alice"},
				Pinned:    true,
			},
			wantErr: ErrTitleRequired,
		},
		{
			name:    "Pinned without labels",
			inputs:  Inputs{Title: "t", Pinned: true},
			wantErr: ErrPinnedRequiresLabels,
		},
		{
			name:   "Pinned with labels",
			inputs: Inputs{Title: "t", Pinned: true, Labels: []string{"recurring"}},
		},
		{
			name:    "Close previous without labels",
			inputs:  Inputs{Title: "t", ClosePrevious: true},
			wantErr: ErrClosePreviousRequiresLabels,
		},
		{
			name:    "Linked comments without labels",
			inputs:  Inputs{Title: "t", LinkedComments: true},
			wantErr: ErrLinkedCommentsRequiresLabels,
		},
		{
			name:    "Rotation without labels",
			inputs:  Inputs{Title: "t", RotateAssignees: true, Assignees: []string{"alice"}},
			wantErr: ErrRotateRequiresLabels,
		},
		{
			name:    "Rotation without assignees",
			inputs:  Inputs{Title: "t", RotateAssignees: true, Labels: []string{"recurring"}},
			wantErr: ErrRotateRequiresAssignees,
		},
		{
			name: "Rotation with labels and assignees",
			inputs: Inputs{
				Title:           "t",
				RotateAssignees: true,
				Labels:          []string{"recurring"},
				Assignees:       []string{"alice"},
			},
		},
		{
			name: "All previous-issue options satisfied",
			inputs: Inputs{
				Title:           "t",
				Pinned:          true,
				ClosePrevious:   true,
				LinkedComments:  true,
				RotateAssignees: true,
				Labels:          []string{"recurring"},
				Assignees:       []string{"alice", "bob"},
			},
		},
		{
			name:    "Unknown project type",
			inputs:  Inputs{Title: "t", ProjectType: "team"},
			wantErr: ErrInvalidProjectType,
		},
		{
			name:   "Organization project type",
			inputs: Inputs{Title: "t", ProjectType: ProjectTypeOrganization},
		},
		{
			name:   "User project type",
			inputs: Inputs{Title: "t", ProjectType: ProjectTypeUser},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.inputs.Validate()

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNeedsPreviousIssue(t *testing.T) {
	tests := []struct {
		name   string
		inputs Inputs
		want   bool
	}{
		{name: "No previous-issue options", inputs: Inputs{Title: "t", Labels: []string{"recurring"}}, want: false},
		{name: "Pinned", inputs: Inputs{Pinned: true}, want: true},
		{name: "Close previous", inputs: Inputs{ClosePrevious: true}, want: true},
		{name: "Linked comments", inputs: Inputs{LinkedComments: true}, want: true},
		{name: "Rotate assignees", inputs: Inputs{RotateAssignees: true}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.inputs.NeedsPreviousIssue())
		})
	}
}

func TestResolvedProjectType(t *testing.T) {
	assert.Equal(t, ProjectTypeRepository, Inputs{}.ResolvedProjectType())
	assert.Equal(t, ProjectTypeOrganization, Inputs{ProjectType: ProjectTypeOrganization}.ResolvedProjectType())
}
