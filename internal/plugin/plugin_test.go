package plugin

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sungur/bowerbridge/internal/bridge"
	"github.com/sungur/bowerbridge/internal/composer"
	"github.com/sungur/bowerbridge/internal/config"
	"github.com/sungur/bowerbridge/internal/finder"
	"github.com/sungur/bowerbridge/internal/log"
)

type recordingClient struct {
	calls []string
}

func (c *recordingClient) Install(_ context.Context, path string, includeDev bool) error {
	if includeDev {
		c.calls = append(c.calls, "install "+path)
	} else {
		c.calls = append(c.calls, "install --production "+path)
	}
	return nil
}

func (c *recordingClient) Update(_ context.Context, path string) error {
	c.calls = append(c.calls, "update "+path)
	return nil
}

func newPlugin() (*Plugin, *recordingClient) {
	client := &recordingClient{}
	return New(bridge.NewFactory(finder.New(), client)), client
}

func project() *composer.Project {
	return &composer.Project{
		Root: composer.Package{Name: "app/app", PrettyName: "app/app", Requires: []string{config.MarkerPackage}},
		Packages: []composer.Package{{
			Name:        "acme/ui",
			PrettyName:  "Acme/UI",
			Requires:    []string{config.MarkerPackage},
			InstallPath: "/app/vendor/acme/ui",
		}},
	}
}

func TestSubscribedEvents(t *testing.T) {
	p, _ := newPlugin()
	events := p.SubscribedEvents()

	assert.Len(t, events, 2)
	assert.Contains(t, events, PostInstallCmd)
	assert.Contains(t, events, PostUpdateCmd)
	assert.Equal(t, []string{PostInstallCmd, PostUpdateCmd}, EventNames())
}

func TestDispatchPostInstall(t *testing.T) {
	tests := []struct {
		name    string
		devMode bool
		want    []string
	}{
		{"dev", true, []string{"install ", "install --production /app/vendor/acme/ui"}},
		{"no-dev", false, []string{"install --production ", "install --production /app/vendor/acme/ui"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, client := newPlugin()
			err := p.Dispatch(context.Background(), Event{
				Name:     PostInstallCmd,
				IO:       log.Discard{},
				Composer: project(),
				DevMode:  tt.devMode,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, client.calls)
		})
	}
}

func TestDispatchPostUpdate(t *testing.T) {
	p, client := newPlugin()
	err := p.Dispatch(context.Background(), Event{Name: PostUpdateCmd, IO: log.Discard{}, Composer: project()})
	require.NoError(t, err)
	assert.Equal(t, []string{"update ", "install ", "install --production /app/vendor/acme/ui"}, client.calls)
}

func TestDispatchUnsupportedEvent(t *testing.T) {
	p, client := newPlugin()
	err := p.Dispatch(context.Background(), Event{Name: "pre-autoload-dump", Composer: project()})

	var unsupported *UnsupportedEventError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "pre-autoload-dump", unsupported.Name)
	assert.Contains(t, err.Error(), PostInstallCmd)
	assert.Empty(t, client.calls)
}

func TestDispatchWithoutProject(t *testing.T) {
	p, client := newPlugin()
	err := p.Dispatch(context.Background(), Event{Name: PostInstallCmd})
	assert.Error(t, err)
	assert.Empty(t, client.calls)
}

// writeProject creates an opted-in root project whose local bower appends
// token to the shared log.
func writeProject(t *testing.T, token string) *composer.Project {
	t.Helper()
	dir := t.TempDir()
	bin := filepath.Join(dir, "node_modules", ".bin")
	require.NoError(t, os.MkdirAll(bin, 0755))
	script := "#!/bin/sh\necho " + token + " >> \"$BOWER_LOG\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(bin, "bower"), []byte(script), 0755))
	return &composer.Project{
		Dir:  dir,
		Root: composer.Package{Name: "app/" + token, PrettyName: "app/" + token, Requires: []string{config.MarkerPackage}},
	}
}

func TestDefaultFactoryFollowsEachProject(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake bower is a POSIX shell script")
	}
	bowerLog := filepath.Join(t.TempDir(), "bower.log")
	t.Setenv("HOME", t.TempDir())
	t.Setenv("BOWER_LOG", bowerLog)
	t.Setenv(config.Env.Bower, "bowerbridge-missing-bower")

	p := New(nil)
	for _, token := range []string{"first", "second"} {
		err := p.Dispatch(context.Background(), Event{
			Name:     PostInstallCmd,
			IO:       log.Discard{},
			Composer: writeProject(t, token),
			DevMode:  true,
		})
		require.NoError(t, err)
	}

	data, err := os.ReadFile(bowerLog)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, strings.Fields(string(data)))
}
