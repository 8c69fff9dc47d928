package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2"
	"github.com/dhowden/tag"
	"github.com/h2non/filetype"
	ioutils "github.com/handiism/lobbygen/internal/io"
	"github.com/handiism/lobbygen/internal/model"
	"go.senan.xyz/taglib"
	"golang.org/x/text/unicode/norm"
)

const (
	// id3TitleFrame is the ID3v2 frame holding the track title.
	id3TitleFrame = "TIT2"

	// vorbisTitleKey is the Vorbis comment key holding the track title.
	// dhowden/tag lower-cases comment keys.
	vorbisTitleKey = "title"

	// sniffLen is the header size filetype needs to match any type.
	sniffLen = 262
)

var (
	// ErrUnsupportedFormat is returned for extensions without a title reader.
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrUnreadableContainer is returned when the file header does not
	// match its extension.
	ErrUnreadableContainer = errors.New("unreadable audio container")

	// ErrNoTitle is returned when the container parses but carries no title.
	ErrNoTitle = errors.New("no title tag")
)

// TitleReader reads the embedded title of an audio file.
//
// Implementations return ErrUnsupportedFormat for extensions they do
// not handle. An empty title with a nil error is treated as missing.
type TitleReader interface {
	ReadTitle(path string, ext model.Extension) (string, error)
}

// NativeReader reads titles with pure Go tag parsers.
//
// MP3 titles come from the ID3v2 TIT2 frame (bogem/id3v2) and Ogg
// titles from the Vorbis "title" comment (dhowden/tag). Before either
// parser runs, the file header is sniffed so that a renamed or corrupt
// file is rejected instead of parsed as an empty tag.
//
// Example:
//
//	reader := NewNativeReader()
//	title, err := reader.ReadTitle("/lobby/Intro Theme.mp3", model.ExtensionMP3)
type NativeReader struct{}

// NewNativeReader creates a new NativeReader.
func NewNativeReader() *NativeReader {
	return &NativeReader{}
}

// ReadTitle implements TitleReader.
func (r *NativeReader) ReadTitle(path string, ext model.Extension) (string, error) {
	switch ext {
	case model.ExtensionMP3:
		if err := sniff(path, "mp3"); err != nil {
			return "", err
		}
		return readID3Title(path)
	case model.ExtensionOGG:
		if err := sniff(path, "ogg"); err != nil {
			return "", err
		}
		return readVorbisTitle(path)
	default:
		return "", ErrUnsupportedFormat
	}
}

// sniff checks that the file header matches the expected container type.
func sniff(path, ext string) error {
	head, err := ioutils.ReadHead(path, sniffLen)
	if err != nil {
		return err
	}
	if !filetype.Is(head, ext) {
		return fmt.Errorf("%w: %s is not %s", ErrUnreadableContainer, filepath.Base(path), ext)
	}
	return nil
}

func readID3Title(path string) (string, error) {
	t, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return "", err
	}
	defer t.Close()

	return firstValue(t.GetTextFrame(id3TitleFrame).Text), nil
}

func readVorbisTitle(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	m, err := tag.ReadOGGTags(f)
	if err != nil {
		return "", err
	}

	title, _ := m.Raw()[vorbisTitleKey].(string)
	if title == "" {
		return "", nil
	}

	// The stream parsed, so a second pass can pick the first of
	// repeated title comments.
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	if first, ok, err := firstVorbisComment(f, vorbisTitleKey); err == nil && ok {
		title = first
	}
	return firstValue(title), nil
}

// firstValue keeps the first of several NUL-separated tag values.
func firstValue(s string) string {
	first, _, _ := strings.Cut(s, "\x00")
	return first
}

// TaglibReader reads titles through TagLib compiled to WebAssembly.
//
// TagLib exposes one property map for every container, so both MP3
// and Ogg titles come from the TITLE property.
type TaglibReader struct{}

// NewTaglibReader creates a new TaglibReader.
func NewTaglibReader() *TaglibReader {
	return &TaglibReader{}
}

// ReadTitle implements TitleReader.
func (r *TaglibReader) ReadTitle(path string, ext model.Extension) (string, error) {
	if ext != model.ExtensionMP3 && ext != model.ExtensionOGG {
		return "", ErrUnsupportedFormat
	}

	tags, err := taglib.ReadTags(path)
	if err != nil {
		return "", err
	}
	if values := tags[taglib.Title]; len(values) > 0 {
		return firstValue(values[0]), nil
	}
	return "", nil
}

// NormalizingReader wraps a TitleReader, converts titles to NFC and
// trims surrounding whitespace. A whitespace-only title becomes empty
// and so counts as missing.
type NormalizingReader struct {
	next TitleReader
}

// NewNormalizingReader wraps next with NFC normalization.
func NewNormalizingReader(next TitleReader) *NormalizingReader {
	return &NormalizingReader{next: next}
}

// ReadTitle implements TitleReader.
func (r *NormalizingReader) ReadTitle(path string, ext model.Extension) (string, error) {
	title, err := r.next.ReadTitle(path, ext)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(norm.NFC.String(title)), nil
}

// ResolveTitle sets track.Title from the file's embedded title.
//
// The file is looked up as dir/track.FileName. On any failure the
// title is left as the file name stem and the cause is returned so the
// caller can report it; the error never means the track is unusable.
// Parser panics on malformed files are recovered the same way. An
// empty title counts as missing; any other value is kept as read.
//
// Example:
//
//	track := model.NewTrack("track02.ogg")
//	if err := ResolveTitle(reader, dir, track); err != nil {
//	    // track.Title == "track02"
//	}
func ResolveTitle(reader TitleReader, dir string, track *model.Track) (err error) {
	track.Title = model.Stem(track.FileName)
	track.TitleSource = model.TitleFromFileName

	defer func() {
		if rec := recover(); rec != nil {
			track.Title = model.Stem(track.FileName)
			track.TitleSource = model.TitleFromFileName
			err = fmt.Errorf("read title of %s: panic: %v", track.FileName, rec)
		}
	}()

	title, err := reader.ReadTitle(filepath.Join(dir, track.FileName), track.Extension)
	if err != nil {
		return fmt.Errorf("read title of %s: %w", track.FileName, err)
	}

	if title == "" {
		return fmt.Errorf("read title of %s: %w", track.FileName, ErrNoTitle)
	}

	track.Title = title
	track.TitleSource = model.TitleFromTag
	return nil
}
