package generate

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/handiism/lobbygen/internal/audio"
	"github.com/handiism/lobbygen/internal/config"
	ioutils "github.com/handiism/lobbygen/internal/io"
	"github.com/handiism/lobbygen/internal/model"
	"github.com/handiism/lobbygen/internal/scan"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a generation progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Manager coordinates the scan and both prototype writes.
type Manager struct {
	settings *config.Settings
	scanner  *scan.Scanner
	reader   audio.TitleReader
	catalog  *audio.CatalogWriter

	files          []string
	totalTracks    int32
	resolvedTracks int32
	taggedTracks   int32

	onProgress func(ProgressEvent)
	mu         sync.RWMutex
}

// NewManager creates a new generation Manager.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		settings:   settings,
		scanner:    scan.NewScanner(settings.ToMatchMode()),
		reader:     NewTitleReader(settings),
		catalog:    audio.NewCatalogWriter(settings.VirtualPrefix, settings.CollectionID),
		onProgress: onProgress,
	}
}

// NewTitleReader builds the metadata reader selected by settings.
func NewTitleReader(settings *config.Settings) audio.TitleReader {
	var reader audio.TitleReader
	switch strings.ToLower(settings.MetadataReader) {
	case config.ReaderTaglib:
		reader = audio.NewTaglibReader()
	default:
		reader = audio.NewNativeReader()
	}

	if settings.NormalizeTitles {
		reader = audio.NewNormalizingReader(reader)
	}
	return reader
}

// Initialize scans the lobby audio directory.
//
// A missing or unreadable directory is returned as an error.
func (m *Manager) Initialize(ctx context.Context) error {
	dir := m.settings.ResolvedAudioDir()
	m.progress(ProgressEvent{Message: fmt.Sprintf("Scanning %s (%s match)", dir, m.scanner.Mode()), Level: LevelVerbose})

	files, err := m.scanner.Scan(ctx, dir)
	if err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error scanning %s: %v", dir, err), Level: LevelError})
		return err
	}

	m.mu.Lock()
	m.files = files
	m.mu.Unlock()

	atomic.StoreInt32(&m.totalTracks, int32(len(files)))
	m.resetCounters()

	m.progress(ProgressEvent{Message: fmt.Sprintf("Found %d track(s) in %s", len(files), dir), Level: LevelInfo})
	return nil
}

// Generate writes the sound collection file, then the jukebox file.
//
// The jukebox file is truncated first and receives one record per
// track as soon as its title is resolved. Cancellation is checked
// between tracks; a cancelled or failed run leaves the records written
// so far.
func (m *Manager) Generate(ctx context.Context) error {
	files := m.GetFiles()

	if err := m.writeCollection(ctx, files); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error writing sound collection: %v", err), Level: LevelError})
		return err
	}

	if err := m.writeJukebox(ctx, files); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error writing jukebox catalog: %v", err), Level: LevelError})
		return err
	}

	_, total, tagged := m.GetProgress()
	m.progress(ProgressEvent{Message: fmt.Sprintf("Wrote %d jukebox record(s), %d titled from tags", total, tagged), Level: LevelSuccess})
	return nil
}

// Preview resolves every scanned track without writing any file.
func (m *Manager) Preview(ctx context.Context) ([]*model.Track, error) {
	files := m.GetFiles()
	tracks := make([]*model.Track, 0, len(files))
	m.resetCounters()

	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return tracks, err
		}
		tracks = append(tracks, m.resolve(name))
	}

	return tracks, nil
}

// GetFiles returns the file names found by Initialize.
func (m *Manager) GetFiles() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	files := make([]string, len(m.files))
	copy(files, m.files)
	return files
}

// GetProgress returns current resolution progress.
func (m *Manager) GetProgress() (resolved, total, tagged int32) {
	return atomic.LoadInt32(&m.resolvedTracks), atomic.LoadInt32(&m.totalTracks),
		atomic.LoadInt32(&m.taggedTracks)
}

// Settings returns the settings the manager was created with.
func (m *Manager) Settings() *config.Settings {
	return m.settings
}

func (m *Manager) writeCollection(ctx context.Context, files []string) error {
	path := m.settings.ResolvedCollectionPath()

	f, err := ioutils.CreateFile(ctx, path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := m.catalog.WriteCollection(f, files); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Wrote sound collection %s (%d file(s))", path, len(files)), Level: LevelSuccess})
	return nil
}

func (m *Manager) writeJukebox(ctx context.Context, files []string) error {
	path := m.settings.ResolvedJukeboxPath()

	f, err := ioutils.CreateFile(ctx, path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	m.resetCounters()
	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		track := m.resolve(name)
		if err := m.catalog.WriteJukeboxRecord(f, track); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Wrote jukebox catalog %s", path), Level: LevelSuccess})
	return nil
}

// resolve builds a track and fills in its title, falling back to the stem.
func (m *Manager) resolve(name string) *model.Track {
	track := model.NewTrack(name)

	if err := audio.ResolveTitle(m.reader, m.settings.ResolvedAudioDir(), track); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Using file name for %s: %v", name, err), Level: LevelVerbose})
	} else {
		atomic.AddInt32(&m.taggedTracks, 1)
		m.progress(ProgressEvent{Message: fmt.Sprintf("%s: %q", name, track.Title), Level: LevelVerbose})
	}

	atomic.AddInt32(&m.resolvedTracks, 1)
	return track
}

func (m *Manager) resetCounters() {
	atomic.StoreInt32(&m.resolvedTracks, 0)
	atomic.StoreInt32(&m.taggedTracks, 0)
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
