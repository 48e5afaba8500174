// Package export handles the server side of the diploma export pipeline:
// decoding client-rasterized images, archiving them on disk, and deriving
// download filenames. Rasterization itself happens in the browser; this
// package only consumes its output as an opaque byte blob.
package export

import (
	"encoding/base64"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Canvas dimensions the client rasterizes at: 8.5in x 11in at 150 DPI.
// The builder page advertises them as data attributes on the preview surface.
const (
	CanvasWidth  = 1275
	CanvasHeight = 1650
)

// MaxImageBytes caps decoded archive payloads.
const MaxImageBytes = 16 << 20 // 16 MiB

var extensions = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
}

// DecodeImage parses a base64 image payload as produced by canvas.toDataURL,
// with or without the data URL prefix. It returns the raw bytes and the file
// extension for the detected media type.
func DecodeImage(payload string) ([]byte, string, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil, "", fmt.Errorf("image payload is empty")
	}

	mediaType := "image/png"
	if strings.HasPrefix(payload, "data:") {
		rest := strings.TrimPrefix(payload, "data:")
		meta, data, found := strings.Cut(rest, ",")
		if !found {
			return nil, "", fmt.Errorf("malformed image data URL")
		}
		mediaType = strings.TrimSuffix(meta, ";base64")
		payload = data
	}

	ext, ok := extensions[mediaType]
	if !ok {
		return nil, "", fmt.Errorf("unsupported image type %q", mediaType)
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("decode image payload: %w", err)
	}
	if len(raw) == 0 {
		return nil, "", fmt.Errorf("image payload is empty")
	}
	if len(raw) > MaxImageBytes {
		return nil, "", fmt.Errorf("image payload exceeds %d bytes", MaxImageBytes)
	}

	return raw, ext, nil
}

// Archiver stores exported diploma images under a base directory.
type Archiver struct {
	Dir string
}

// Store writes the image bytes for a diploma record and returns the path
// relative to the archive directory. The write goes through a temporary file
// so a failure never leaves a partial archive behind.
func (a Archiver) Store(diplomaID uint, image []byte, ext string) (string, error) {
	if len(image) == 0 {
		return "", fmt.Errorf("refusing to archive empty image")
	}

	if err := os.MkdirAll(a.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create archive directory: %w", err)
	}

	filename := fmt.Sprintf("diploma_%d_%s.%s", diplomaID, uuid.NewString(), ext)
	finalPath := filepath.Join(a.Dir, filename)

	tmp, err := os.CreateTemp(a.Dir, "diploma-*.partial")
	if err != nil {
		return "", fmt.Errorf("create archive file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(image); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("write archive file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("close archive file: %w", err)
	}
	if err := os.Rename(tmpName, finalPath); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("finalize archive file: %w", err)
	}

	return filename, nil
}

// FileSize returns the archived file's size, or zero when it is missing.
func (a Archiver) FileSize(filename string) int64 {
	info, err := os.Stat(filepath.Join(a.Dir, filename))
	if err != nil {
		return 0
	}
	return info.Size()
}

// DownloadFilename derives the client-facing filename from the school name:
// non-alphanumeric runs become underscores, followed by a timestamp.
func DownloadFilename(schoolName string, now time.Time) string {
	var b strings.Builder
	for _, r := range schoolName {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	name := b.String()
	if strings.Trim(name, "_") == "" {
		name = "diploma"
	}
	return fmt.Sprintf("diploma_%s_%d.png", name, now.UnixMilli())
}

// HumanSize renders a byte count the way the admin screens display it.
func HumanSize(bytes int64) string {
	if bytes <= 0 {
		return "0 B"
	}
	units := []string{"B", "KB", "MB", "GB"}
	pow := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if pow >= len(units) {
		pow = len(units) - 1
	}
	value := float64(bytes) / math.Pow(1024, float64(pow))
	return fmt.Sprintf("%s %s", trimZeros(value), units[pow])
}

func trimZeros(value float64) string {
	s := fmt.Sprintf("%.2f", value)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
