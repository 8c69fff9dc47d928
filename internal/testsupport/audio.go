// Package testsupport builds audio fixtures and game resource trees for tests.
package testsupport

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2"
)

// mpegFrameHeader is an MPEG-1 Layer III frame sync (128 kbps, 44.1 kHz).
var mpegFrameHeader = []byte{0xFF, 0xFB, 0x90, 0x64}

// WriteUntaggedMP3 writes a single silent MPEG frame with no ID3 tag.
func WriteUntaggedMP3(t testing.TB, path string) {
	t.Helper()

	frame := make([]byte, 417)
	copy(frame, mpegFrameHeader)
	writeFile(t, path, frame)
}

// WriteTaggedMP3 writes an MPEG frame preceded by an ID3v2.4 tag whose
// TIT2 frame holds title.
func WriteTaggedMP3(t testing.TB, path, title string) {
	t.Helper()

	WriteUntaggedMP3(t, path)

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("open %s for tagging: %v", path, err)
	}
	defer tag.Close()

	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	tag.SetTitle(title)
	if err := tag.Save(); err != nil {
		t.Fatalf("save tag to %s: %v", path, err)
	}
}

// WriteVorbis writes a minimal Ogg Vorbis stream with the identification
// and comment header pages. Each comment is a raw "key=value" string.
func WriteVorbis(t testing.TB, path string, comments ...string) {
	t.Helper()

	var id bytes.Buffer
	id.WriteByte(1)
	id.WriteString("vorbis")
	writeLE(&id, uint32(0))     // vorbis_version
	id.WriteByte(2)             // audio_channels
	writeLE(&id, uint32(44100)) // audio_sample_rate
	writeLE(&id, int32(0))      // bitrate_maximum
	writeLE(&id, int32(128000)) // bitrate_nominal
	writeLE(&id, int32(0))      // bitrate_minimum
	id.WriteByte(0xB8)          // blocksize_0 and blocksize_1
	id.WriteByte(1)             // framing

	var comment bytes.Buffer
	comment.WriteByte(3)
	comment.WriteString("vorbis")
	vendor := "lobbygen fixture"
	writeLE(&comment, uint32(len(vendor)))
	comment.WriteString(vendor)
	writeLE(&comment, uint32(len(comments)))
	for _, c := range comments {
		writeLE(&comment, uint32(len(c)))
		comment.WriteString(c)
	}
	comment.WriteByte(1)

	var out bytes.Buffer
	out.Write(oggPage(0, 0x02, id.Bytes()))
	out.Write(oggPage(1, 0x00, comment.Bytes()))
	writeFile(t, path, out.Bytes())
}

// WriteGarbage writes bytes that match no audio container.
func WriteGarbage(t testing.TB, path string) {
	t.Helper()
	writeFile(t, path, []byte("this is not an audio file at all"))
}

// oggCRCTable is the CRC-32 table for Ogg pages: polynomial 0x04c11db7,
// not reflected, zero initial value.
var oggCRCTable = func() (table [256]uint32) {
	for i := range table {
		crc := uint32(i) << 24
		for j := 0; j < 8; j++ {
			if crc&0x80000000 != 0 {
				crc = crc<<1 ^ 0x04c11db7
			} else {
				crc <<= 1
			}
		}
		table[i] = crc
	}
	return table
}()

func oggCRC(page []byte) uint32 {
	var crc uint32
	for _, b := range page {
		crc = crc<<8 ^ oggCRCTable[byte(crc>>24)^b]
	}
	return crc
}

// oggPage wraps one packet in an Ogg page with a valid checksum.
func oggPage(seq uint32, headerType byte, packet []byte) []byte {
	var lacing []byte
	n := len(packet)
	for n >= 255 {
		lacing = append(lacing, 255)
		n -= 255
	}
	lacing = append(lacing, byte(n))

	var page bytes.Buffer
	page.WriteString("OggS")
	page.WriteByte(0) // stream_structure_version
	page.WriteByte(headerType)
	writeLE(&page, uint64(0)) // granule_position
	writeLE(&page, uint32(1)) // bitstream_serial_number
	writeLE(&page, seq)
	writeLE(&page, uint32(0)) // CRC_checksum, filled in below
	page.WriteByte(byte(len(lacing)))
	page.Write(lacing)
	page.Write(packet)

	out := page.Bytes()
	binary.LittleEndian.PutUint32(out[22:26], oggCRC(out))
	return out
}

func writeLE(buf *bytes.Buffer, v any) {
	_ = binary.Write(buf, binary.LittleEndian, v)
}

func writeFile(t testing.TB, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
