package model

import (
	"fmt"
	"strings"
)

// MatchMode selects how file names are tested for an audio extension.
type MatchMode int

const (
	// MatchSubstring accepts names that contain ".mp3" or ".ogg" anywhere,
	// ignoring case. "song.mp3.bak" qualifies.
	MatchSubstring MatchMode = iota

	// MatchSuffix accepts names that end in ".mp3" or ".ogg", ignoring case.
	MatchSuffix
)

// audioMarkers are the lower-case extensions the scanner looks for.
var audioMarkers = []string{".mp3", ".ogg"}

// String returns the config spelling of the mode.
func (m MatchMode) String() string {
	if m == MatchSuffix {
		return "suffix"
	}
	return "substring"
}

// ParseMatchMode converts a config value into a MatchMode.
func ParseMatchMode(s string) (MatchMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "substring":
		return MatchSubstring, nil
	case "suffix":
		return MatchSuffix, nil
	default:
		return MatchSubstring, fmt.Errorf("unknown match mode %q (want substring or suffix)", s)
	}
}

// IsAudioFileName reports whether name qualifies as lobby music.
//
// A name is tested once against all markers, so "Song.MP3" is
// accepted exactly once regardless of how many markers it carries.
func IsAudioFileName(name string, mode MatchMode) bool {
	lower := strings.ToLower(name)
	for _, marker := range audioMarkers {
		if mode == MatchSuffix {
			if strings.HasSuffix(lower, marker) {
				return true
			}
			continue
		}
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
