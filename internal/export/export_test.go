package export

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func dataURL(mediaType string, raw []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(raw)
}

func TestDecodeImageWithDataURLPrefix(t *testing.T) {
	t.Parallel()

	raw, ext, err := DecodeImage(dataURL("image/png", pngBytes))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if ext != "png" {
		t.Fatalf("expected png extension, got %q", ext)
	}
	if len(raw) != len(pngBytes) {
		t.Fatalf("expected %d bytes, got %d", len(pngBytes), len(raw))
	}
}

func TestDecodeImageBarePayloadDefaultsToPNG(t *testing.T) {
	t.Parallel()

	raw, ext, err := DecodeImage(base64.StdEncoding.EncodeToString(pngBytes))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if ext != "png" || len(raw) == 0 {
		t.Fatalf("unexpected decode result ext=%q len=%d", ext, len(raw))
	}
}

func TestDecodeImageJPEG(t *testing.T) {
	t.Parallel()

	_, ext, err := DecodeImage(dataURL("image/jpeg", []byte{0xff, 0xd8, 0xff}))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if ext != "jpg" {
		t.Fatalf("expected jpg extension, got %q", ext)
	}
}

func TestDecodeImageRejectsBadInput(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"empty":            "",
		"whitespace":       "   ",
		"unsupported type": dataURL("image/gif", []byte{0x47}),
		"malformed url":    "data:image/png;base64",
		"bad base64":       "data:image/png;base64,!!!not-base64!!!",
		"empty body":       "data:image/png;base64,",
	}
	for name, payload := range cases {
		if _, _, err := DecodeImage(payload); err == nil {
			t.Fatalf("%s: expected decode error", name)
		}
	}
}

func TestArchiverStore(t *testing.T) {
	t.Parallel()

	archiver := Archiver{Dir: filepath.Join(t.TempDir(), "generated")}

	filename, err := archiver.Store(42, pngBytes, "png")
	if err != nil {
		t.Fatalf("store failed: %v", err)
	}
	if !strings.HasPrefix(filename, "diploma_42_") || !strings.HasSuffix(filename, ".png") {
		t.Fatalf("unexpected archive filename %q", filename)
	}

	stored, err := os.ReadFile(filepath.Join(archiver.Dir, filename))
	if err != nil {
		t.Fatalf("read archived file: %v", err)
	}
	if string(stored) != string(pngBytes) {
		t.Fatal("archived bytes differ from input")
	}

	if size := archiver.FileSize(filename); size != int64(len(pngBytes)) {
		t.Fatalf("expected size %d, got %d", len(pngBytes), size)
	}

	entries, err := os.ReadDir(archiver.Dir)
	if err != nil {
		t.Fatalf("read archive dir: %v", err)
	}
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".partial") {
			t.Fatalf("partial file left behind: %s", entry.Name())
		}
	}
}

func TestArchiverStoreRejectsEmptyImage(t *testing.T) {
	t.Parallel()

	archiver := Archiver{Dir: t.TempDir()}
	if _, err := archiver.Store(1, nil, "png"); err == nil {
		t.Fatal("expected error for empty image")
	}
}

func TestArchiverFilenamesDoNotCollide(t *testing.T) {
	t.Parallel()

	archiver := Archiver{Dir: t.TempDir()}
	first, err := archiver.Store(7, pngBytes, "png")
	if err != nil {
		t.Fatalf("first store failed: %v", err)
	}
	second, err := archiver.Store(7, pngBytes, "png")
	if err != nil {
		t.Fatalf("second store failed: %v", err)
	}
	if first == second {
		t.Fatal("expected unique archive filenames for the same diploma")
	}
}

func TestDownloadFilename(t *testing.T) {
	t.Parallel()

	now := time.UnixMilli(1717200000000)
	name := DownloadFilename("Lincoln High!", now)
	if name != "diploma_Lincoln_High__1717200000000.png" {
		t.Fatalf("unexpected filename %q", name)
	}

	name = DownloadFilename("@#$%", now)
	if !strings.HasPrefix(name, "diploma_diploma_") {
		t.Fatalf("expected fallback stem for all-symbol school name, got %q", name)
	}
}

func TestHumanSize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{-5, "0 B"},
		{512, "512 B"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{2 * 1024 * 1024, "2 MB"},
		{3 * 1024 * 1024 * 1024, "3 GB"},
	}
	for _, tt := range cases {
		if got := HumanSize(tt.bytes); got != tt.want {
			t.Fatalf("HumanSize(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}
