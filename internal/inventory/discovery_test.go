package inventory_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/readix/readix/internal/inventory"
)

func writeFixtureFile(testInstance *testing.T, repositoryRoot string, relativePath string, contents string) {
	testInstance.Helper()
	absolutePath := filepath.Join(repositoryRoot, relativePath)
	require.NoError(testInstance, os.MkdirAll(filepath.Dir(absolutePath), 0o755))
	require.NoError(testInstance, os.WriteFile(absolutePath, []byte(contents), 0o644))
}

func TestLoadConfig(testInstance *testing.T) {
	testInstance.Run("missing_file_yields_defaults", func(subtest *testing.T) {
		configuration := inventory.LoadConfig(subtest.TempDir())
		require.Empty(subtest, configuration.OrgName)
		require.Equal(subtest, 4, configuration.DiscoveryMaxDepth())
	})

	testInstance.Run("values_parsed", func(subtest *testing.T) {
		repositoryRoot := subtest.TempDir()
		writeFixtureFile(subtest, repositoryRoot, ".readix.yaml", "org_name: Acme\napp_roots:\n  - services/api\napp_discovery_max_depth: 2\nexclude_dirs:\n  - generated\ndefault_codeowner: \"@acme/platform\"\n")
		configuration := inventory.LoadConfig(repositoryRoot)
		require.Equal(subtest, "Acme", configuration.OrgName)
		require.Equal(subtest, []string{"services/api"}, configuration.AppRoots)
		require.Equal(subtest, 2, configuration.DiscoveryMaxDepth())
		require.Equal(subtest, []string{"generated"}, configuration.ExcludeDirs)
		require.Equal(subtest, "@acme/platform", configuration.DefaultCodeowner)
	})

	testInstance.Run("malformed_file_yields_zero_config", func(subtest *testing.T) {
		repositoryRoot := subtest.TempDir()
		writeFixtureFile(subtest, repositoryRoot, ".readix.yaml", "org_name: [unclosed")
		configuration := inventory.LoadConfig(repositoryRoot)
		require.Empty(subtest, configuration.OrgName)
	})
}

func TestDiscoverUnits(testInstance *testing.T) {
	testInstance.Run("monorepo_with_multiple_manifests", func(subtest *testing.T) {
		repositoryRoot := subtest.TempDir()
		writeFixtureFile(subtest, repositoryRoot, "go.mod", "module example.com/platform\n")
		writeFixtureFile(subtest, repositoryRoot, "services/api/package.json", `{"name":"api","description":"HTTP API"}`)
		writeFixtureFile(subtest, repositoryRoot, "services/worker/pyproject.toml", "[project]\nname = \"worker\"\ndescription = \"Queue worker\"\n")
		writeFixtureFile(subtest, repositoryRoot, "node_modules/leftpad/package.json", `{"name":"leftpad"}`)

		units := inventory.DiscoverUnits(repositoryRoot, inventory.Config{})
		require.Len(subtest, units, 3)
		require.Equal(subtest, ".", units[0].Path)
		require.Equal(subtest, inventory.GoUnitKind, units[0].Kind)
		require.Equal(subtest, "example.com/platform", units[0].Name)
		require.Equal(subtest, "services/api", units[1].Path)
		require.Equal(subtest, "api", units[1].Name)
		require.Equal(subtest, "HTTP API", units[1].Description)
		require.Equal(subtest, "services/worker", units[2].Path)
		require.Equal(subtest, inventory.PythonUnitKind, units[2].Kind)
	})

	testInstance.Run("depth_cap_prunes_deep_manifests", func(subtest *testing.T) {
		repositoryRoot := subtest.TempDir()
		writeFixtureFile(subtest, repositoryRoot, "a/b/c/Cargo.toml", "[package]\nname = \"deep\"\n")
		units := inventory.DiscoverUnits(repositoryRoot, inventory.Config{AppDiscoveryMaxDepth: 2})
		require.Len(subtest, units, 1)
		require.Equal(subtest, ".", units[0].Path)
		require.Equal(subtest, inventory.UnknownUnitKind, units[0].Kind)
	})

	testInstance.Run("no_manifests_falls_back_to_root_unit", func(subtest *testing.T) {
		repositoryRoot := subtest.TempDir()
		writeFixtureFile(subtest, repositoryRoot, "main.py", "print('hello')\n")
		units := inventory.DiscoverUnits(repositoryRoot, inventory.Config{})
		require.Len(subtest, units, 1)
		require.Equal(subtest, ".", units[0].Path)
		require.Equal(subtest, inventory.PythonUnitKind, units[0].Kind)
	})

	testInstance.Run("configured_app_roots_override_walk", func(subtest *testing.T) {
		repositoryRoot := subtest.TempDir()
		writeFixtureFile(subtest, repositoryRoot, "apps/web/package.json", `{"name":"web"}`)
		writeFixtureFile(subtest, repositoryRoot, "tools/cli/go.mod", "module example.com/cli\n")
		units := inventory.DiscoverUnits(repositoryRoot, inventory.Config{AppRoots: []string{"apps/web"}})
		require.Len(subtest, units, 1)
		require.Equal(subtest, "apps/web", units[0].Path)
		require.Equal(subtest, inventory.NodeUnitKind, units[0].Kind)
	})

	testInstance.Run("configured_exclude_dirs_are_pruned", func(subtest *testing.T) {
		repositoryRoot := subtest.TempDir()
		writeFixtureFile(subtest, repositoryRoot, "generated/lib/package.json", `{"name":"gen"}`)
		writeFixtureFile(subtest, repositoryRoot, "lib/package.json", `{"name":"lib"}`)
		units := inventory.DiscoverUnits(repositoryRoot, inventory.Config{ExcludeDirs: []string{"generated"}})
		require.Len(subtest, units, 1)
		require.Equal(subtest, "lib", units[0].Path)
	})
}

func TestDescribeUnitKinds(testInstance *testing.T) {
	testCases := []struct {
		name          string
		manifestPath  string
		manifestBody  string
		expectedKind  inventory.UnitKind
		expectedName  string
		expectDefault bool
	}{
		{
			name:         "rust_cargo_manifest",
			manifestPath: "Cargo.toml",
			manifestBody: "[package]\nname = \"ferris\"\ndescription = \"A crab\"\n",
			expectedKind: inventory.RustUnitKind,
			expectedName: "ferris",
		},
		{
			name:          "java_gradle_manifest",
			manifestPath:  "build.gradle",
			manifestBody:  "plugins { id 'java' }\n",
			expectedKind:  inventory.JavaUnitKind,
			expectDefault: true,
		},
		{
			name:          "requirements_without_pyproject",
			manifestPath:  "requirements.txt",
			manifestBody:  "flask==3.0.0\n",
			expectedKind:  inventory.PythonUnitKind,
			expectDefault: true,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtest *testing.T) {
			repositoryRoot := subtest.TempDir()
			writeFixtureFile(subtest, repositoryRoot, testCase.manifestPath, testCase.manifestBody)
			unit := inventory.DescribeUnit(repositoryRoot, repositoryRoot)
			require.Equal(subtest, testCase.expectedKind, unit.Kind)
			if !testCase.expectDefault {
				require.Equal(subtest, testCase.expectedName, unit.Name)
			}
		})
	}
}

func TestDetectLanguages(testInstance *testing.T) {
	units := []inventory.Unit{
		{Path: ".", Kind: inventory.GoUnitKind},
		{Path: "web", Kind: inventory.NodeUnitKind},
		{Path: "cli", Kind: inventory.GoUnitKind},
		{Path: "misc", Kind: inventory.UnknownUnitKind},
	}
	require.Equal(testInstance, []string{"Go", "JavaScript/TypeScript"}, inventory.DetectLanguages(units))
}
