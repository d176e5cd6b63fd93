//go:build unit

package issuemanager

import (
	"errors"
	"testing"

	"github.com/lerenn/issue-manager/pkg/config"
	"github.com/lerenn/issue-manager/pkg/dependencies"
	"github.com/lerenn/issue-manager/pkg/logger"
	"github.com/lerenn/issue-manager/pkg/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newInitTestIssueManager(t *testing.T, cfg config.Manager, p prompt.Prompter) IssueManager {
	t.Helper()

	im, err := NewIssueManager(NewIssueManagerParams{
		Dependencies: dependencies.New().
			WithConfig(cfg).
			WithPrompt(p).
			WithLogger(logger.NewNoopLogger()),
	})
	require.NoError(t, err)

	return im
}

func TestIM_Init_NonInteractiveKeepsExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockConfig := config.NewMockManager(ctrl)
	mockPrompt := prompt.NewMockPrompter(ctrl)

	existing := config.Config{Forge: "github", Repository: "acme/rotations", TokenEnv: "GH_PAT"}
	mockConfig.EXPECT().GetConfigWithFallback().Return(existing, nil)
	mockConfig.EXPECT().SaveConfig(existing).Return(nil)
	mockConfig.EXPECT().GetConfigPath().Return("/test/config.yaml")

	im := newInitTestIssueManager(t, mockConfig, mockPrompt)

	err := im.Init(InitOpts{NonInteractive: true})
	assert.NoError(t, err)
}

func TestIM_Init_FlagsOverrideExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockConfig := config.NewMockManager(ctrl)
	mockPrompt := prompt.NewMockPrompter(ctrl)

	mockConfig.EXPECT().GetConfigWithFallback().
		Return(config.Config{Forge: "github", TokenEnv: config.DefaultTokenEnv}, nil)
	mockConfig.EXPECT().SaveConfig(config.Config{
		Forge:      "github",
		Repository: "acme/rotations",
		TokenEnv:   "IM_TOKEN",
	}).Return(nil)
	mockConfig.EXPECT().GetConfigPath().Return("/test/config.yaml")

	im := newInitTestIssueManager(t, mockConfig, mockPrompt)

	err := im.Init(InitOpts{
		Repository:     "acme/rotations",
		TokenEnv:       "IM_TOKEN",
		NonInteractive: true,
	})
	assert.NoError(t, err)
}

func TestIM_Init_InteractivePrompts(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockConfig := config.NewMockManager(ctrl)
	mockPrompt := prompt.NewMockPrompter(ctrl)

	mockConfig.EXPECT().GetConfigWithFallback().
		Return(config.Config{Forge: "github"}, nil)
	mockPrompt.EXPECT().PromptForRepository("").Return("acme/rotations", nil)
	mockPrompt.EXPECT().PromptForTokenEnv(config.DefaultTokenEnv).Return("GH_PAT", nil)
	mockConfig.EXPECT().SaveConfig(config.Config{
		Forge:      "github",
		Repository: "acme/rotations",
		TokenEnv:   "GH_PAT",
	}).Return(nil)
	mockConfig.EXPECT().GetConfigPath().Return("/test/config.yaml")

	im := newInitTestIssueManager(t, mockConfig, mockPrompt)

	err := im.Init(InitOpts{})
	assert.NoError(t, err)
}

func TestIM_Init_ResetDeclined(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockConfig := config.NewMockManager(ctrl)
	mockPrompt := prompt.NewMockPrompter(ctrl)

	mockPrompt.EXPECT().
		PromptForConfirmation("This will reset your IM configuration. Are you sure?", false).
		Return(false, nil)

	im := newInitTestIssueManager(t, mockConfig, mockPrompt)

	// Declining the confirmation aborts before anything is written.
	err := im.Init(InitOpts{Reset: true})
	assert.ErrorIs(t, err, ErrInitCancelled)
}

func TestIM_Init_ResetForced(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockConfig := config.NewMockManager(ctrl)
	mockPrompt := prompt.NewMockPrompter(ctrl)

	// Force skips the confirmation, and reset starts from the defaults
	// instead of the existing file.
	mockConfig.EXPECT().DefaultConfig().
		Return(config.Config{Forge: "github", TokenEnv: config.DefaultTokenEnv})
	mockConfig.EXPECT().SaveConfig(config.Config{
		Forge:    "github",
		TokenEnv: config.DefaultTokenEnv,
	}).Return(nil)
	mockConfig.EXPECT().GetConfigPath().Return("/test/config.yaml")

	im := newInitTestIssueManager(t, mockConfig, mockPrompt)

	err := im.Init(InitOpts{Reset: true, Force: true, NonInteractive: true})
	assert.NoError(t, err)
}

func TestIM_Init_InvalidRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockConfig := config.NewMockManager(ctrl)
	mockPrompt := prompt.NewMockPrompter(ctrl)

	mockConfig.EXPECT().GetConfigWithFallback().
		Return(config.Config{Forge: "github"}, nil)

	im := newInitTestIssueManager(t, mockConfig, mockPrompt)

	err := im.Init(InitOpts{Repository: "nonsense", NonInteractive: true})
	assert.ErrorIs(t, err, config.ErrInvalidRepositoryFormat)
}

func TestIM_Init_PromptError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockConfig := config.NewMockManager(ctrl)
	mockPrompt := prompt.NewMockPrompter(ctrl)

	mockConfig.EXPECT().GetConfigWithFallback().
		Return(config.Config{Forge: "github"}, nil)
	mockPrompt.EXPECT().PromptForRepository("").Return("", errors.New("read error"))

	im := newInitTestIssueManager(t, mockConfig, mockPrompt)

	err := im.Init(InitOpts{})
	assert.Error(t, err)
}

func TestIM_Init_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockConfig := config.NewMockManager(ctrl)
	mockPrompt := prompt.NewMockPrompter(ctrl)

	mockConfig.EXPECT().GetConfigWithFallback().
		Return(config.Config{Forge: "github", TokenEnv: config.DefaultTokenEnv}, nil)
	mockConfig.EXPECT().SaveConfig(gomock.Any()).Return(errors.New("disk full"))

	im := newInitTestIssueManager(t, mockConfig, mockPrompt)

	err := im.Init(InitOpts{NonInteractive: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save configuration")
}
