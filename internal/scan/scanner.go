package scan

import (
	"context"
	"fmt"

	ioutils "github.com/handiism/lobbygen/internal/io"
	"github.com/handiism/lobbygen/internal/model"
)

// Scanner lists the lobby music files in a directory.
//
// Example:
//
//	s := NewScanner(model.MatchSubstring)
//	names, err := s.Scan(ctx, "/game/Resources/Audio/Lobby")
type Scanner struct {
	mode model.MatchMode
}

// NewScanner creates a Scanner using the given match mode.
func NewScanner(mode model.MatchMode) *Scanner {
	return &Scanner{mode: mode}
}

// Mode returns the match mode the scanner filters with.
func (s *Scanner) Mode() model.MatchMode {
	return s.mode
}

// Scan returns the names of qualifying audio files directly inside dir.
//
// Every regular file is tested once, so each qualifying file appears
// exactly once in the result. Order follows the directory listing.
// A missing directory is returned as an error.
func (s *Scanner) Scan(ctx context.Context, dir string) ([]string, error) {
	names, err := ioutils.ListFiles(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	matched := make([]string, 0, len(names))
	for _, name := range names {
		if model.IsAudioFileName(name, s.mode) {
			matched = append(matched, name)
		}
	}
	return matched, nil
}
