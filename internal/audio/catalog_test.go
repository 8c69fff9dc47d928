package audio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/handiism/lobbygen/internal/model"
	"gopkg.in/yaml.v3"
)

func TestCatalogWriter_Collection(t *testing.T) {
	writer := NewCatalogWriter("/Audio/Lobby/", "LobbyMusic")

	content := writer.CreateCollection([]string{"Intro Theme.mp3", "track02.ogg"})

	want := "- type: soundCollection\n" +
		"  id: LobbyMusic\n" +
		"  files:\n" +
		"    - /Audio/Lobby/Intro Theme.mp3\n" +
		"    - /Audio/Lobby/track02.ogg\n"
	if content != want {
		t.Errorf("CreateCollection() =\n%s\nwant\n%s", content, want)
	}
}

func TestCatalogWriter_CollectionEmpty(t *testing.T) {
	writer := NewCatalogWriter("/Audio/Lobby/", "LobbyMusic")

	content := writer.CreateCollection(nil)

	if !strings.HasSuffix(content, "  files:\n") {
		t.Errorf("empty collection should end with files key, got %q", content)
	}

	var docs []struct {
		Type  string   `yaml:"type"`
		ID    string   `yaml:"id"`
		Files []string `yaml:"files"`
	}
	if err := yaml.Unmarshal([]byte(content), &docs); err != nil {
		t.Fatalf("collection is not valid YAML: %v", err)
	}
	if len(docs) != 1 || len(docs[0].Files) != 0 {
		t.Errorf("parsed collection = %+v, want one record with no files", docs)
	}
}

func TestCatalogWriter_CollectionParses(t *testing.T) {
	writer := NewCatalogWriter("/Audio/Lobby/", "LobbyMusic")

	var buf bytes.Buffer
	if err := writer.WriteCollection(&buf, []string{"a.mp3", "b.ogg", "Song.MP3"}); err != nil {
		t.Fatalf("WriteCollection() error = %v", err)
	}

	var docs []struct {
		Type  string   `yaml:"type"`
		ID    string   `yaml:"id"`
		Files []string `yaml:"files"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &docs); err != nil {
		t.Fatalf("collection is not valid YAML: %v", err)
	}

	if len(docs) != 1 {
		t.Fatalf("got %d records, want 1", len(docs))
	}
	if docs[0].Type != "soundCollection" || docs[0].ID != "LobbyMusic" {
		t.Errorf("record header = %q/%q", docs[0].Type, docs[0].ID)
	}
	want := []string{"/Audio/Lobby/a.mp3", "/Audio/Lobby/b.ogg", "/Audio/Lobby/Song.MP3"}
	if strings.Join(docs[0].Files, ",") != strings.Join(want, ",") {
		t.Errorf("files = %v, want %v", docs[0].Files, want)
	}
}

func TestCatalogWriter_JukeboxRecord(t *testing.T) {
	writer := NewCatalogWriter("/Audio/Lobby/", "LobbyMusic")

	track := model.NewTrack("Intro Theme.mp3")
	track.Title = "Arrival"
	track.TitleSource = model.TitleFromTag

	got := writer.CreateJukeboxRecord(track)

	want := "- type: jukebox\n" +
		"  id: Intro Theme\n" +
		"  name: Arrival\n" +
		"  path:\n" +
		"    path: /Audio/Lobby/Intro Theme.mp3\n" +
		"\n"
	if got != want {
		t.Errorf("CreateJukeboxRecord() =\n%q\nwant\n%q", got, want)
	}
}

func TestCatalogWriter_JukeboxRecordsParse(t *testing.T) {
	writer := NewCatalogWriter("/Audio/Lobby/", "LobbyMusic")

	first := model.NewTrack("Intro Theme.mp3")
	first.Title = "Arrival"
	second := model.NewTrack("track02.ogg")

	var buf bytes.Buffer
	for _, track := range []*model.Track{first, second} {
		if err := writer.WriteJukeboxRecord(&buf, track); err != nil {
			t.Fatalf("WriteJukeboxRecord() error = %v", err)
		}
	}

	var docs []struct {
		Type string `yaml:"type"`
		ID   string `yaml:"id"`
		Name string `yaml:"name"`
		Path struct {
			Path string `yaml:"path"`
		} `yaml:"path"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &docs); err != nil {
		t.Fatalf("jukebox is not valid YAML: %v", err)
	}

	if len(docs) != 2 {
		t.Fatalf("got %d records, want 2", len(docs))
	}
	if docs[0].ID != "Intro Theme" || docs[0].Name != "Arrival" {
		t.Errorf("first record = %+v", docs[0])
	}
	if docs[1].ID != "track02" || docs[1].Name != "track02" {
		t.Errorf("second record = %+v", docs[1])
	}
	if docs[1].Path.Path != "/Audio/Lobby/track02.ogg" {
		t.Errorf("second path = %q", docs[1].Path.Path)
	}
}

func TestCatalogFormat_String(t *testing.T) {
	if FormatSoundCollection.String() != "soundCollection" {
		t.Errorf("FormatSoundCollection = %q", FormatSoundCollection.String())
	}
	if FormatJukebox.String() != "jukebox" {
		t.Errorf("FormatJukebox = %q", FormatJukebox.String())
	}
}
