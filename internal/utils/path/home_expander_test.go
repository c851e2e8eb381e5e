package pathutils_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	pathutils "github.com/readix/readix/internal/utils/path"
)

const homeDirectoryFixtureConstant = "/home/fixture"

func TestHomeExpanderExpand(testInstance *testing.T) {
	testCases := []struct {
		name          string
		candidatePath string
		providerValue string
		providerError error
		expectedPath  string
	}{
		{
			name:          "tilde_only_resolves_home",
			candidatePath: "~",
			providerValue: homeDirectoryFixtureConstant,
			expectedPath:  homeDirectoryFixtureConstant,
		},
		{
			name:          "tilde_prefix_joins_relative_path",
			candidatePath: "~/projects/demo",
			providerValue: homeDirectoryFixtureConstant,
			expectedPath:  filepath.Join(homeDirectoryFixtureConstant, "projects", "demo"),
		},
		{
			name:          "absolute_path_unchanged",
			candidatePath: "/var/tmp/demo",
			providerValue: homeDirectoryFixtureConstant,
			expectedPath:  "/var/tmp/demo",
		},
		{
			name:          "tilde_user_form_unchanged",
			candidatePath: "~someone/projects",
			providerValue: homeDirectoryFixtureConstant,
			expectedPath:  "~someone/projects",
		},
		{
			name:          "provider_error_returns_original",
			candidatePath: "~/projects",
			providerError: errors.New("home lookup failed"),
			expectedPath:  "~/projects",
		},
		{
			name:          "empty_path_unchanged",
			candidatePath: "",
			providerValue: homeDirectoryFixtureConstant,
			expectedPath:  "",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtest *testing.T) {
			expander := pathutils.NewHomeExpanderWithProvider(func() (string, error) {
				return testCase.providerValue, testCase.providerError
			})
			expandedPath := expander.Expand(testCase.candidatePath)
			require.Equal(subtest, testCase.expectedPath, expandedPath)
		})
	}
}
