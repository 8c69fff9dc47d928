package audio

import (
	"fmt"
	"io"
	"strings"

	"github.com/handiism/lobbygen/internal/model"
)

// CatalogFormat represents the prototype documents lobbygen writes.
//
// Both formats are YAML sequences read by the game's prototype loader:
//   - SoundCollection: a single record listing every lobby track
//   - Jukebox: one record per track with a display name
type CatalogFormat int

const (
	// FormatSoundCollection creates the soundCollection prototype that
	// the lobby music system picks tracks from.
	FormatSoundCollection CatalogFormat = iota

	// FormatJukebox creates one jukebox prototype per track.
	FormatJukebox
)

// String returns the prototype type name written for the format.
func (f CatalogFormat) String() string {
	if f == FormatJukebox {
		return "jukebox"
	}
	return "soundCollection"
}

// CatalogWriter renders the sound collection and jukebox prototypes.
//
// The output is plain text assembled line by line so that it stays
// byte-for-byte stable between runs.
//
// Example:
//
//	writer := NewCatalogWriter("/Audio/Lobby/", "LobbyMusic")
//	content := writer.CreateCollection([]string{"Intro Theme.mp3"})
//
//	// Result:
//	// - type: soundCollection
//	//   id: LobbyMusic
//	//   files:
//	//     - /Audio/Lobby/Intro Theme.mp3
type CatalogWriter struct {
	prefix       string
	collectionID string
}

// NewCatalogWriter creates a new CatalogWriter.
//
// Parameters:
//   - prefix: Virtual asset path prefix including the trailing slash
//   - collectionID: Identifier of the soundCollection record
func NewCatalogWriter(prefix, collectionID string) *CatalogWriter {
	return &CatalogWriter{
		prefix:       prefix,
		collectionID: collectionID,
	}
}

// CreateCollection generates the soundCollection document for files.
//
// An empty file list still produces the record with an empty
// "files:" key as its last line.
func (c *CatalogWriter) CreateCollection(files []string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("- type: %s\n", FormatSoundCollection))
	sb.WriteString(fmt.Sprintf("  id: %s\n", c.collectionID))
	sb.WriteString("  files:\n")

	for _, name := range files {
		sb.WriteString(fmt.Sprintf("    - %s%s\n", c.prefix, name))
	}

	return sb.String()
}

// WriteCollection writes the soundCollection document to w.
func (c *CatalogWriter) WriteCollection(w io.Writer, files []string) error {
	_, err := io.WriteString(w, c.CreateCollection(files))
	return err
}

// CreateJukeboxRecord generates one jukebox record, including the
// blank line that separates it from the next record.
//
// Format:
//
//	- type: jukebox
//	  id: Intro Theme
//	  name: Arrival
//	  path:
//	    path: /Audio/Lobby/Intro Theme.mp3
func (c *CatalogWriter) CreateJukeboxRecord(track *model.Track) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("- type: %s\n", FormatJukebox))
	sb.WriteString(fmt.Sprintf("  id: %s\n", track.ID()))
	sb.WriteString(fmt.Sprintf("  name: %s\n", track.Title))
	sb.WriteString("  path:\n")
	sb.WriteString(fmt.Sprintf("    path: %s\n\n", track.VirtualPath(c.prefix)))

	return sb.String()
}

// WriteJukeboxRecord appends one jukebox record to w.
//
// Records are written one at a time as titles are resolved, so a run
// that fails partway leaves the records written so far.
func (c *CatalogWriter) WriteJukeboxRecord(w io.Writer, track *model.Track) error {
	_, err := io.WriteString(w, c.CreateJukeboxRecord(track))
	return err
}
