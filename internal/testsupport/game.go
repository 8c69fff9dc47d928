package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/handiism/lobbygen/internal/config"
)

// NewGameRoot creates a temp game checkout with the default resource
// layout and returns settings pointing at it. The lobby audio directory
// and both prototype directories exist but are empty.
func NewGameRoot(t testing.TB) *config.Settings {
	t.Helper()

	settings := config.DefaultSettings()
	settings.RootDir = t.TempDir()

	for _, dir := range []string{
		settings.ResolvedAudioDir(),
		filepath.Dir(settings.ResolvedCollectionPath()),
		filepath.Dir(settings.ResolvedJukeboxPath()),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	return settings
}

// LobbyFile returns the on-disk path of name inside the lobby audio directory.
func LobbyFile(settings *config.Settings, name string) string {
	return filepath.Join(settings.ResolvedAudioDir(), name)
}

// ReadOutput returns the content of an output file, failing the test if
// it cannot be read.
func ReadOutput(t testing.TB, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
