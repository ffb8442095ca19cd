package composer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sungur/bowerbridge/internal/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func clearComposerEnv(t *testing.T) {
	t.Helper()
	t.Setenv(config.Env.Manifest, "")
	t.Setenv(config.Env.VendorDir, "")
}

func TestLoadComposer2Layout(t *testing.T) {
	clearComposerEnv(t)
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "composer.json"), `{
		"name": "Acme/Shop",
		"require": {"php": ">=8.1", "Peertopark/Composer-Bower-Bridge": "^1.0"},
		"require-dev": {"phpunit/phpunit": "^10"}
	}`)
	writeFile(t, filepath.Join(dir, "vendor", "composer", "installed.json"), `{
		"packages": [
			{"name": "acme/widgets", "version": "1.2.0", "require": {"peertopark/composer-bower-bridge": "*"}, "install-path": "../acme/widgets"},
			{"name": "monolog/monolog", "version": "3.0.0", "require": {"php": ">=8.1"}, "install-path": "../monolog/monolog"},
			{"name": "acme/theme", "require-dev": {"peertopark/composer-bower-bridge": "*"}, "install-path": "../../themes/acme"}
		],
		"dev": true
	}`)

	project, err := Load(dir, LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, "acme/shop", project.Root.Name)
	assert.Equal(t, "Acme/Shop", project.Root.PrettyName)
	assert.Empty(t, project.Root.InstallPath)
	assert.Equal(t, []string{"peertopark/composer-bower-bridge", "php"}, project.Root.Requires)
	assert.Equal(t, []string{"phpunit/phpunit"}, project.Root.DevRequires)

	require.Len(t, project.Packages, 3)
	names := []string{project.Packages[0].Name, project.Packages[1].Name, project.Packages[2].Name}
	assert.Equal(t, []string{"acme/widgets", "monolog/monolog", "acme/theme"}, names, "installed.json order is preserved")

	assert.Equal(t, filepath.Join(dir, "vendor", "acme", "widgets"), project.Packages[0].InstallPath)
	assert.Equal(t, filepath.Join(dir, "themes", "acme"), project.Packages[2].InstallPath)
	assert.Equal(t, project.Packages[0].InstallPath, project.InstallPath(project.Packages[0]))
	assert.True(t, project.Packages[0].Requirement(config.MarkerPackage))
	assert.True(t, project.Packages[2].DevRequirement(config.MarkerPackage))
}

func TestLoadComposer1Layout(t *testing.T) {
	clearComposerEnv(t)
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "composer.json"), `{"require": {"acme/widgets": "^1"}}`)
	writeFile(t, filepath.Join(dir, "vendor", "composer", "installed.json"), `[
		{"name": "Acme/Widgets", "require": {"peertopark/composer-bower-bridge": "*"}}
	]`)

	project, err := Load(dir, LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, config.RootPackageName, project.Root.Name)
	require.Len(t, project.Packages, 1)
	assert.Equal(t, "acme/widgets", project.Packages[0].Name)
	assert.Equal(t, "Acme/Widgets", project.Packages[0].PrettyName)
	assert.Equal(t, filepath.Join(dir, "vendor", "acme", "widgets"), project.Packages[0].InstallPath,
		"without install-path the package lives under vendor/<name>")
}

func TestLoadWithoutInstalledFile(t *testing.T) {
	clearComposerEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "composer.json"), `{"name": "acme/fresh"}`)

	project, err := Load(dir, LoadOptions{})
	require.NoError(t, err)
	assert.Empty(t, project.Packages)
	assert.Equal(t, filepath.Join(dir, "vendor"), project.VendorDir)
}

func TestLoadVendorDirPrecedence(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "composer.json"), `{"config": {"vendor-dir": "lib/vendor"}}`)

	t.Run("manifest config", func(t *testing.T) {
		clearComposerEnv(t)
		project, err := Load(dir, LoadOptions{})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "lib", "vendor"), project.VendorDir)
	})

	t.Run("environment beats manifest", func(t *testing.T) {
		clearComposerEnv(t)
		t.Setenv(config.Env.VendorDir, "deps")
		project, err := Load(dir, LoadOptions{})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "deps"), project.VendorDir)
	})

	t.Run("option beats environment", func(t *testing.T) {
		clearComposerEnv(t)
		t.Setenv(config.Env.VendorDir, "deps")
		project, err := Load(dir, LoadOptions{VendorDir: "explicit"})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "explicit"), project.VendorDir)
	})
}

func TestLoadAlternateManifest(t *testing.T) {
	clearComposerEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "composer-legacy.json"), `{"name": "acme/legacy"}`)
	t.Setenv(config.Env.Manifest, "composer-legacy.json")

	project, err := Load(dir, LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "acme/legacy", project.Root.Name)
}

func TestLoadErrors(t *testing.T) {
	clearComposerEnv(t)

	t.Run("missing manifest", func(t *testing.T) {
		_, err := Load(t.TempDir(), LoadOptions{})
		var manifestErr *ManifestError
		require.ErrorAs(t, err, &manifestErr)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("invalid manifest", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "composer.json"), `{"name": `)
		_, err := Load(dir, LoadOptions{})
		var manifestErr *ManifestError
		require.ErrorAs(t, err, &manifestErr)
		assert.Equal(t, filepath.Join(dir, "composer.json"), manifestErr.Path)
	})

	t.Run("invalid installed.json", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "composer.json"), `{}`)
		writeFile(t, filepath.Join(dir, "vendor", "composer", "installed.json"), `{"packages": {}}`)
		_, err := Load(dir, LoadOptions{})
		var manifestErr *ManifestError
		require.ErrorAs(t, err, &manifestErr)
	})
}
