package audio

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/handiism/lobbygen/internal/testsupport"
)

func commentBlock(vendor string, comments ...string) []byte {
	var b bytes.Buffer
	_ = binary.Write(&b, binary.LittleEndian, uint32(len(vendor)))
	b.WriteString(vendor)
	_ = binary.Write(&b, binary.LittleEndian, uint32(len(comments)))
	for _, c := range comments {
		_ = binary.Write(&b, binary.LittleEndian, uint32(len(c)))
		b.WriteString(c)
	}
	return b.Bytes()
}

func TestFindComment(t *testing.T) {
	tests := []struct {
		name    string
		block   []byte
		want    string
		wantOK  bool
		wantErr bool
	}{
		{"first of repeated", commentBlock("v", "TITLE=One", "title=Two"), "One", true, false},
		{"skips other keys", commentBlock("v", "artist=A", "Title=Song"), "Song", true, false},
		{"value keeps equals", commentBlock("v", "title=a=b"), "a=b", true, false},
		{"missing key", commentBlock("v", "artist=A"), "", false, false},
		{"no comments", commentBlock("v"), "", false, false},
		{"truncated comment", commentBlock("v", "title=One")[:14], "", false, true},
		{"oversized length", []byte{0xFF, 0xFF, 0xFF, 0x7F}, "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := findComment(tt.block, "title")
			if (err != nil) != tt.wantErr {
				t.Fatalf("findComment() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("findComment() = %q, %v, want %q, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFirstVorbisComment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.ogg")
	testsupport.WriteVorbis(t, path, "title=Station Dawn", "TITLE=Later")

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	got, ok, err := firstVorbisComment(f, "title")
	if err != nil || !ok {
		t.Fatalf("firstVorbisComment() = %q, %v, %v", got, ok, err)
	}
	if got != "Station Dawn" {
		t.Errorf("firstVorbisComment() = %q, want %q", got, "Station Dawn")
	}
}

func TestFirstVorbisComment_NotOgg(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.ogg")
	testsupport.WriteGarbage(t, path)

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if _, _, err := firstVorbisComment(f, "title"); err == nil {
		t.Error("firstVorbisComment() should reject a non-Ogg stream")
	}
}
