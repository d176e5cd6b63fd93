package inputs

import (
	"fmt"

	"github.com/lerenn/issue-manager/pkg/fs"
	"gopkg.in/yaml.v3"
)

// FromFile loads inputs from a YAML series file.
func FromFile(filesystem fs.FS, path string) (Inputs, error) {
	expandedPath, err := filesystem.ExpandPath(path)
	if err != nil {
		return Inputs{}, fmt.Errorf("%w: %w", ErrInputsFileRead, err)
	}

	data, err := filesystem.ReadFile(expandedPath)
	if err != nil {
		return Inputs{}, fmt.Errorf("%w: %w", ErrInputsFileRead, err)
	}

	var in Inputs
	if err := yaml.Unmarshal(data, &in); err != nil {
		return Inputs{}, fmt.Errorf("%w: %w", ErrInputsFileParse, err)
	}

	return in, nil
}
