package model

import (
	"path/filepath"
	"strings"
)

// Extension identifies the audio container a track is read as.
//
// Only MP3 and Ogg Vorbis files carry readable titles. Any other
// name that made it through the scan is reported as ExtensionOther
// and always falls back to its file name stem.
type Extension int

const (
	// ExtensionOther is any file name not ending in .mp3 or .ogg.
	ExtensionOther Extension = iota

	// ExtensionMP3 marks files ending in .mp3 (any case).
	// Titles are read from the ID3v2 TIT2 frame.
	ExtensionMP3

	// ExtensionOGG marks files ending in .ogg (any case).
	// Titles are read from the Vorbis "title" comment.
	ExtensionOGG
)

// String returns the lower-case extension name without the dot.
func (e Extension) String() string {
	switch e {
	case ExtensionMP3:
		return "mp3"
	case ExtensionOGG:
		return "ogg"
	default:
		return "other"
	}
}

// ExtensionOf classifies a file name by its case-insensitive suffix.
//
// Example:
//
//	ExtensionOf("Song.MP3")       // ExtensionMP3
//	ExtensionOf("song.mp3.bak")   // ExtensionOther
func ExtensionOf(fileName string) Extension {
	lower := strings.ToLower(fileName)
	switch {
	case strings.HasSuffix(lower, ".mp3"):
		return ExtensionMP3
	case strings.HasSuffix(lower, ".ogg"):
		return ExtensionOGG
	default:
		return ExtensionOther
	}
}

// TitleSource records where a track's display title came from.
type TitleSource int

const (
	// TitleFromFileName means the title is the file name stem.
	TitleFromFileName TitleSource = iota

	// TitleFromTag means the title was read from embedded metadata.
	TitleFromTag
)

// String returns a short label used in scan listings.
func (s TitleSource) String() string {
	if s == TitleFromTag {
		return "tag"
	}
	return "file name"
}

// Track is one audio file found in the lobby music directory.
//
// A Track lives for a single run: it is built during the scan,
// written out as a jukebox record and then dropped.
//
// Example:
//
//	track := NewTrack("Intro Theme.mp3")
//	track.ID()                       // "Intro Theme"
//	track.VirtualPath("/Audio/Lobby/") // "/Audio/Lobby/Intro Theme.mp3"
type Track struct {
	// FileName is the base name of the file inside the audio directory.
	FileName string

	// Extension is derived from FileName by NewTrack.
	Extension Extension

	// Title is the resolved display title. NewTrack sets it to the stem;
	// a metadata reader may replace it with a tag value.
	Title string

	// TitleSource tells whether Title came from a tag or the file name.
	TitleSource TitleSource
}

// NewTrack creates a Track whose title defaults to the file name stem.
func NewTrack(fileName string) *Track {
	return &Track{
		FileName:    fileName,
		Extension:   ExtensionOf(fileName),
		Title:       Stem(fileName),
		TitleSource: TitleFromFileName,
	}
}

// ID returns the jukebox identifier for the track, which is its stem.
func (t *Track) ID() string {
	return Stem(t.FileName)
}

// VirtualPath joins the virtual asset prefix and the file name.
//
// The prefix is used verbatim, so it must carry its trailing slash.
func (t *Track) VirtualPath(prefix string) string {
	return prefix + t.FileName
}

// Stem removes the final extension segment from a file name.
//
// Only the last dot-separated segment is dropped:
//
//	Stem("Intro Theme.mp3") // "Intro Theme"
//	Stem("song.mp3.bak")    // "song.mp3"
//	Stem("README")          // "README"
func Stem(fileName string) string {
	base := filepath.Base(fileName)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
