package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"strings"
)

const oggPageHeaderLen = 27

var (
	oggCapturePattern = []byte("OggS")

	// Comment packets of Vorbis and Opus streams.
	commentPacketPrefixes = [][]byte{[]byte("\x03vorbis"), []byte("OpusTags")}
)

// firstVorbisComment returns the first comment named key in the Ogg
// stream read from r. Keys compare case-insensitively.
//
// dhowden/tag keeps one value per key and lets later comments win, so
// repeated keys are looked up here. Page checksums are not verified;
// callers run the stream through tag.ReadOGGTags first.
func firstVorbisComment(r io.Reader, key string) (string, bool, error) {
	header := make([]byte, oggPageHeaderLen)
	var packet bytes.Buffer

	for {
		if _, err := io.ReadFull(r, header); err != nil {
			return "", false, err
		}
		if !bytes.Equal(header[:4], oggCapturePattern) {
			return "", false, errors.New("expected Ogg page")
		}

		lacing := make([]byte, header[26])
		if _, err := io.ReadFull(r, lacing); err != nil {
			return "", false, err
		}

		for _, size := range lacing {
			if _, err := io.CopyN(&packet, r, int64(size)); err != nil {
				return "", false, err
			}
			if size == 255 {
				continue
			}
			for _, prefix := range commentPacketPrefixes {
				if bytes.HasPrefix(packet.Bytes(), prefix) {
					return findComment(packet.Bytes()[len(prefix):], key)
				}
			}
			packet.Reset()
		}
	}
}

// findComment walks a Vorbis comment block: vendor string, comment
// count, then length-prefixed "key=value" entries.
func findComment(block []byte, key string) (string, bool, error) {
	r := bytes.NewReader(block)

	if _, err := readLengthPrefixed(r); err != nil {
		return "", false, err
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return "", false, err
	}

	for i := uint32(0); i < count; i++ {
		comment, err := readLengthPrefixed(r)
		if err != nil {
			return "", false, err
		}
		k, v, ok := strings.Cut(comment, "=")
		if ok && strings.EqualFold(k, key) {
			return v, true, nil
		}
	}
	return "", false, nil
}

func readLengthPrefixed(r *bytes.Reader) (string, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return "", err
	}
	if int64(n) > int64(r.Len()) {
		return "", io.ErrUnexpectedEOF
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}
