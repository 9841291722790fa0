package main

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provide-io/splashgen/pkg"
	"github.com/provide-io/splashgen/pkg/splash/imaging"
)

const manifest = `<?xml version="1.0" encoding="utf-8"?>
<manifest xmlns:android="http://schemas.android.com/apk/res/android">
    <application>
        <activity android:name=".MainActivity">
        </activity>
    </application>
</manifest>
`

func writeProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	mainDir := filepath.Join(dir, "android", "app", "src", "main")
	require.NoError(t, os.MkdirAll(filepath.Join(mainDir, "res"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(mainDir, "AndroidManifest.xml"), []byte(manifest), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "ios", "Runner", "Assets.xcassets"), 0o755))

	data, err := imaging.EncodePNG(imaging.SolidFill(color.RGBA{R: 255, A: 255}, 32, 32))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "logo.png"), data, 0o644))
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("SPLASHGEN_LOG_LEVEL", "error")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerate(t *testing.T) {
	dir := writeProject(t)
	cfgPath := filepath.Join(dir, "splash.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("color: \"#112233\"\nimage: logo.png\n"), 0o644))

	out, err := execute(t, "--config", cfgPath, "--project", dir, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "✅ android: drawables:")
	assert.Contains(t, out, "✅ ios: Info.plist:")
	assert.NotContains(t, out, "❌")

	fsys := afero.NewOsFs()
	img, err := imaging.Decode(fsys, filepath.Join(dir, "ios", "Runner", "Assets.xcassets", "SplashImage.imageset", "splash_image@3x.png"))
	require.NoError(t, err)
	assert.Equal(t, 384, img.Bounds().Dx())

	m, err := os.ReadFile(filepath.Join(dir, "android", "app", "src", "main", "AndroidManifest.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(m), "splashgen.background")

	// no temporary files are left behind
	err = filepath.WalkDir(dir, func(path string, _ os.DirEntry, err error) error {
		assert.False(t, strings.HasSuffix(path, ".tmp"), path)
		return err
	})
	require.NoError(t, err)
}

func TestMissingConfigPrintsUsage(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "--config")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "-V")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "splashgen "+version+"\n"), out)
	assert.Contains(t, out, "Built: ")
}

func TestFailuresExitZeroUnlessStrict(t *testing.T) {
	dir := writeProject(t)
	cfgPath := filepath.Join(dir, "splash.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("color: \"#112233\"\n"), 0o644))

	out, err := execute(t, "-c", cfgPath, "-p", dir, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "❌ config: image:")

	_, err = execute(t, "-c", cfgPath, "-p", dir, "--no-color", "--strict")
	require.Error(t, err)
	assert.ErrorIs(t, err, errStrict)
}

func TestUnreadableConfig(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "-c", filepath.Join(dir, "missing.yaml"), "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "❌ config: load:")
}

func TestPlatformFlagAndCheck(t *testing.T) {
	dir := writeProject(t)
	cfgPath := filepath.Join(dir, "splash.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("image = \"logo.png\"\n"), 0o644))

	out, err := execute(t, "-c", cfgPath, "-p", dir, "--platform", "ios", "--check", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "✅ ios: layout: project layout valid")
	assert.NotContains(t, out, "android")

	_, err = os.Stat(filepath.Join(dir, "ios", "Runner", "Info.plist"))
	assert.True(t, os.IsNotExist(err), "check must not write files")

}

func TestUnknownPlatformIsACLIError(t *testing.T) {
	dir := writeProject(t)
	cfgPath := filepath.Join(dir, "splash.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("image = \"logo.png\"\n"), 0o644))

	out, err := execute(t, "-c", cfgPath, "-p", dir, "--platform", "windows", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "❌ cli: platform:")
	assert.Contains(t, out, `unknown platform "windows"`)
	assert.NotContains(t, out, "config: load")

	_, err = execute(t, "-c", cfgPath, "-p", dir, "--platform", "windows", "--strict")
	require.Error(t, err)
	assert.ErrorIs(t, err, pkg.ErrConfig)
}
