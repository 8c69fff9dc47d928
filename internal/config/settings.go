package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	ioutils "github.com/handiism/lobbygen/internal/io"
	"github.com/handiism/lobbygen/internal/model"
	"github.com/pelletier/go-toml/v2"
)

// Metadata reader backends.
const (
	ReaderNative = "native"
	ReaderTaglib = "taglib"
)

// Settings holds all configuration options.
type Settings struct {
	// Resource tree
	RootDir        string `toml:"root_dir"`
	AudioDir       string `toml:"audio_dir"`
	CollectionPath string `toml:"collection_path"`
	JukeboxPath    string `toml:"jukebox_path"`

	// Prototype content
	VirtualPrefix string `toml:"virtual_prefix"`
	CollectionID  string `toml:"collection_id"`

	// Scanning
	MatchMode string `toml:"match_mode"` // substring, suffix

	// Metadata
	MetadataReader  string `toml:"metadata_reader"` // native, taglib
	NormalizeTitles bool   `toml:"normalize_titles"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		RootDir:        ".",
		AudioDir:       filepath.Join("Resources", "Audio", "Lobby"),
		CollectionPath: filepath.Join("Resources", "Prototypes", "Soundcollections", "lobby.yml"),
		JukeboxPath:    filepath.Join("Resources", "Prototypes", "Catalog", "Jukebox", "Standard.yml"),

		VirtualPrefix: "/Audio/Lobby/",
		CollectionID:  "LobbyMusic",

		MatchMode: model.MatchSubstring.String(),

		MetadataReader:  ReaderNative,
		NormalizeTitles: false,
	}
}

// Load reads settings from a TOML file.
//
// A missing file yields the defaults. Keys absent from the file keep
// their default values. The result is validated before it is returned.
func Load(path string) (*Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to a TOML file, creating parent directories.
func (s *Settings) Save(path string) error {
	return s.SaveContext(context.Background(), path)
}

// SaveContext is Save with a context checked before the file is written.
func (s *Settings) SaveContext(ctx context.Context, path string) error {
	if err := ioutils.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	return ioutils.WriteFile(ctx, path, data)
}

// Validate rejects unknown enum values and empty required fields.
func (s *Settings) Validate() error {
	if _, err := model.ParseMatchMode(s.MatchMode); err != nil {
		return err
	}

	switch strings.ToLower(s.MetadataReader) {
	case "", ReaderNative, ReaderTaglib:
	default:
		return fmt.Errorf("unknown metadata reader %q (want %s or %s)", s.MetadataReader, ReaderNative, ReaderTaglib)
	}

	if strings.TrimSpace(s.AudioDir) == "" {
		return errors.New("audio_dir must not be empty")
	}
	if strings.TrimSpace(s.CollectionPath) == "" {
		return errors.New("collection_path must not be empty")
	}
	if strings.TrimSpace(s.JukeboxPath) == "" {
		return errors.New("jukebox_path must not be empty")
	}
	if strings.TrimSpace(s.CollectionID) == "" {
		return errors.New("collection_id must not be empty")
	}

	return nil
}

// ToMatchMode converts the configured match mode.
//
// Invalid values fall back to substring matching; Validate reports them.
func (s *Settings) ToMatchMode() model.MatchMode {
	mode, err := model.ParseMatchMode(s.MatchMode)
	if err != nil {
		return model.MatchSubstring
	}
	return mode
}

// ResolvedAudioDir returns the audio directory joined onto RootDir.
func (s *Settings) ResolvedAudioDir() string {
	return s.resolve(s.AudioDir)
}

// ResolvedCollectionPath returns the collection file path joined onto RootDir.
func (s *Settings) ResolvedCollectionPath() string {
	return s.resolve(s.CollectionPath)
}

// ResolvedJukeboxPath returns the jukebox file path joined onto RootDir.
func (s *Settings) ResolvedJukeboxPath() string {
	return s.resolve(s.JukeboxPath)
}

func (s *Settings) resolve(path string) string {
	if filepath.IsAbs(path) || s.RootDir == "" {
		return path
	}
	return filepath.Join(s.RootDir, path)
}
