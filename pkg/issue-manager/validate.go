package issuemanager

import (
	"fmt"

	"github.com/lerenn/issue-manager/pkg/inputs"
)

// ValidateInputs checks the run inputs without touching the forge.
func (im *realIssueManager) ValidateInputs(in inputs.Inputs) error {
	im.VerbosePrint("Validating run inputs")

	if err := in.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInputs, err)
	}

	return nil
}
