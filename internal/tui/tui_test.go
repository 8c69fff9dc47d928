package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/handiism/lobbygen/internal/generate"
	"github.com/handiism/lobbygen/internal/model"
	"github.com/handiism/lobbygen/internal/testsupport"
)

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return got
}

func key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func TestModel_OptionToggles(t *testing.T) {
	m := NewModel(nil)

	m = update(t, m, key(tea.KeyTab))
	m = update(t, m, key(tea.KeyCtrlT))
	m = update(t, m, key(tea.KeyCtrlL))

	settings := m.Settings()
	if settings.ToMatchMode() != model.MatchSuffix {
		t.Errorf("MatchMode = %q, want suffix", settings.MatchMode)
	}
	if !settings.NormalizeTitles {
		t.Error("NormalizeTitles should be toggled on")
	}
	if !m.verbose {
		t.Error("verbose should be toggled on")
	}
	if !strings.Contains(m.View(), "[×] Match extensions as suffix only") {
		t.Errorf("input view should show the suffix option checked:\n%s", m.View())
	}
}

func TestModel_VerboseEventsFiltered(t *testing.T) {
	m := NewModel(nil)

	m = update(t, m, ProgressMsg{Event: generate.ProgressEvent{Message: "detail", Level: generate.LevelVerbose}})
	m = update(t, m, ProgressMsg{Event: generate.ProgressEvent{Message: "found", Level: generate.LevelInfo}})

	if len(m.logs) != 1 || m.logs[0].Message != "found" {
		t.Errorf("logs = %+v, want only the info event", m.logs)
	}
}

func TestModel_LogsCapped(t *testing.T) {
	m := NewModel(nil)
	for i := 0; i < maxLogs+5; i++ {
		m = update(t, m, ProgressMsg{Event: generate.ProgressEvent{Message: "event", Level: generate.LevelInfo}})
	}
	if len(m.logs) != maxLogs {
		t.Errorf("len(logs) = %d, want %d", len(m.logs), maxLogs)
	}
}

func TestModel_ScanFailure(t *testing.T) {
	m := NewModel(nil)
	m = update(t, m, key(tea.KeyEnter))
	if m.State() != StateScanning {
		t.Fatalf("State() = %v, want scanning", m.State())
	}

	m = update(t, m, ScanDoneMsg{Err: errors.New("no such directory")})
	if m.State() != StateError {
		t.Fatalf("State() = %v, want error", m.State())
	}
	if !strings.Contains(m.View(), "no such directory") {
		t.Errorf("error view should show the cause:\n%s", m.View())
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if m.State() != StateInput || m.Err() != nil {
		t.Errorf("after reset State() = %v, Err() = %v", m.State(), m.Err())
	}
}

func TestModel_CancelWhileScanning(t *testing.T) {
	m := NewModel(nil)
	m = update(t, m, key(tea.KeyEnter))
	m = update(t, m, key(tea.KeyEsc))

	if m.State() != StateError {
		t.Fatalf("State() = %v, want error", m.State())
	}
	if m.ctx.Err() == nil {
		t.Error("context should be cancelled")
	}

	// A late scan result must not leave the error state.
	m = update(t, m, ScanDoneMsg{})
	if m.State() != StateError {
		t.Errorf("State() = %v after late scan result, want error", m.State())
	}
}

func TestModel_ScanReviewGenerate(t *testing.T) {
	settings := testsupport.NewGameRoot(t)
	testsupport.WriteTaggedMP3(t, testsupport.LobbyFile(settings, "Intro Theme.mp3"), "Arrival")
	testsupport.WriteVorbis(t, testsupport.LobbyFile(settings, "track02.ogg"))

	m := NewModel(settings)
	m = update(t, m, key(tea.KeyEnter))

	scanned := m.startScan()()
	done, ok := scanned.(ScanDoneMsg)
	if !ok {
		t.Fatalf("scan returned %T", scanned)
	}
	if done.Err != nil {
		t.Fatalf("scan error = %v", done.Err)
	}

	m = update(t, m, done)
	if m.State() != StateReview {
		t.Fatalf("State() = %v, want review", m.State())
	}
	view := m.View()
	for _, want := range []string{"Found 2 track(s)", "Arrival", "track02 (file name)", settings.ResolvedJukeboxPath()} {
		if !strings.Contains(view, want) {
			t.Errorf("review view missing %q:\n%s", want, view)
		}
	}

	m = update(t, m, key(tea.KeyEnter))
	if m.State() != StateWriting {
		t.Fatalf("State() = %v, want writing", m.State())
	}

	generated := m.startGenerate()()
	m = update(t, m, generated)
	if m.State() != StateComplete {
		t.Fatalf("State() = %v, want complete (err %v)", m.State(), m.Err())
	}
	if m.totalTracks != 2 || m.taggedTracks != 1 {
		t.Errorf("total, tagged = %d, %d, want 2, 1", m.totalTracks, m.taggedTracks)
	}

	jukebox := testsupport.ReadOutput(t, settings.ResolvedJukeboxPath())
	if !strings.Contains(jukebox, "  name: Arrival\n") {
		t.Errorf("jukebox missing tagged record:\n%s", jukebox)
	}
}

func TestModel_ReviewBack(t *testing.T) {
	m := NewModel(nil)
	m = update(t, m, key(tea.KeyEnter))
	m = update(t, m, ScanDoneMsg{Manager: generate.NewManager(m.Settings(), nil)})
	if m.State() != StateReview {
		t.Fatalf("State() = %v, want review", m.State())
	}
	if !strings.Contains(m.View(), "No lobby tracks found") {
		t.Errorf("empty review should warn:\n%s", m.View())
	}

	m = update(t, m, key(tea.KeyEsc))
	if m.State() != StateInput {
		t.Errorf("State() = %v, want input", m.State())
	}
}
