package main

import (
	"fmt"

	"github.com/lerenn/issue-manager/pkg/fs"
	"github.com/lerenn/issue-manager/pkg/inputs"
	"github.com/spf13/cobra"
)

// inputFlags carries the run input flags shared by the run and validate
// commands.
type inputFlags struct {
	title           string
	body            string
	bodyFile        string
	labels          []string
	assignees       []string
	pinned          bool
	closePrevious   bool
	linkedComments  bool
	rotateAssignees bool
	project         int
	projectType     string
	column          string
	milestone       int
	file            string
}

// register declares the input flags on the command.
func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "Title of the new issue")
	cmd.Flags().StringVar(&f.body, "body", "", "Body template of the new issue")
	cmd.Flags().StringVar(&f.bodyFile, "body-file", "", "Read the body template from a file")
	cmd.Flags().StringArrayVar(&f.labels, "label", nil, "Label applied to the new issue (repeatable)")
	cmd.Flags().StringArrayVar(&f.assignees, "assignee", nil, "Assignee rotation list entry (repeatable)")
	cmd.Flags().BoolVar(&f.pinned, "pinned", false, "Pin the new issue and unpin the previous one")
	cmd.Flags().BoolVar(&f.closePrevious, "close-previous", false, "Close the previous issue of the series")
	cmd.Flags().BoolVar(&f.linkedComments, "linked-comments", false, "Cross-link the previous and new issues with comments")
	cmd.Flags().BoolVar(&f.rotateAssignees, "rotate-assignees", false, "Assign the successor of the previous assignee")
	cmd.Flags().IntVar(&f.project, "project", 0, "Project number to file the issue into")
	cmd.Flags().StringVar(&f.projectType, "project-type", "", "Project scope: repository, organization or user")
	cmd.Flags().StringVar(&f.column, "column", "", "Project column name (exact match)")
	cmd.Flags().IntVar(&f.milestone, "milestone", 0, "Milestone number to add the issue to")
	cmd.Flags().StringVar(&f.file, "file", "", "Series file with run inputs (YAML)")
}

// buildInputs assembles the run inputs from the series file and the flags.
// Explicitly set flags override file values.
func (f *inputFlags) buildInputs(cmd *cobra.Command) (inputs.Inputs, error) {
	var in inputs.Inputs

	filesystem := fs.NewFS()
	if f.file != "" {
		loaded, err := inputs.FromFile(filesystem, f.file)
		if err != nil {
			return inputs.Inputs{}, err
		}
		in = loaded
	}

	changed := cmd.Flags().Changed
	if changed("title") {
		in.Title = f.title
	}
	if changed("body") {
		in.Body = f.body
	}
	if changed("label") {
		in.Labels = f.labels
	}
	if changed("assignee") {
		in.Assignees = f.assignees
	}
	if changed("pinned") {
		in.Pinned = f.pinned
	}
	if changed("close-previous") {
		in.ClosePrevious = f.closePrevious
	}
	if changed("linked-comments") {
		in.LinkedComments = f.linkedComments
	}
	if changed("rotate-assignees") {
		in.RotateAssignees = f.rotateAssignees
	}
	if changed("project") {
		in.Project = f.project
	}
	if changed("project-type") {
		in.ProjectType = f.projectType
	}
	if changed("column") {
		in.Column = f.column
	}
	if changed("milestone") {
		in.Milestone = f.milestone
	}

	if changed("body-file") {
		data, err := filesystem.ReadFile(f.bodyFile)
		if err != nil {
			return inputs.Inputs{}, fmt.Errorf("failed to read body file: %w", err)
		}
		in.Body = string(data)
	}

	return in, nil
}
