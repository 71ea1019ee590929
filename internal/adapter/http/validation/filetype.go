// Package validation provides upload checks for video files.
package validation

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"
)

// ErrDisallowedFileType is returned when an upload does not look like a video.
var ErrDisallowedFileType = errors.New("file must be a video")

// allowedMIMETypes is the allowlist of video MIME types, detected or declared.
var allowedMIMETypes = map[string]bool{
	"video/mp4":        true,
	"video/avi":        true,
	"video/quicktime":  true,
	"video/x-msvideo":  true,
	"video/x-ms-wmv":   true,
	"video/x-flv":      true,
	"video/webm":       true,
	"video/x-matroska": true,
}

// videoExtensions are accepted even when the content sniffing is inconclusive.
var videoExtensions = map[string]bool{
	".mp4":  true,
	".avi":  true,
	".mov":  true,
	".mkv":  true,
	".wmv":  true,
	".flv":  true,
	".webm": true,
	".m4v":  true,
}

// magicBytesBufferSize is the number of bytes to read for content type detection.
const magicBytesBufferSize = 512

// ValidateMagicBytes detects a file's content type from its first bytes and
// reports whether it is an allowed video type. The reader is rewound to the
// start before returning.
func ValidateMagicBytes(reader io.ReadSeeker) (mime string, allowed bool, err error) {
	buf := make([]byte, magicBytesBufferSize)
	n, err := io.ReadFull(reader, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", false, err
	}

	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return "", false, err
	}

	if n == 0 {
		return "application/octet-stream", false, nil
	}
	buf = buf[:n]

	mime = detectVideoMagicBytes(buf)
	if mime == "" {
		mime = http.DetectContentType(buf)
	}

	return mime, allowedMIMETypes[mime], nil
}

// detectVideoMagicBytes recognizes container formats http.DetectContentType
// reports poorly or not at all.
func detectVideoMagicBytes(buf []byte) string {
	if len(buf) < 4 {
		return ""
	}

	// EBML header shared by WebM and Matroska; the doctype tells them apart.
	if buf[0] == 0x1A && buf[1] == 0x45 && buf[2] == 0xDF && buf[3] == 0xA3 {
		if bytes.Contains(buf, []byte("matroska")) {
			return "video/x-matroska"
		}
		return "video/webm"
	}

	// FLV: "FLV" followed by version 1
	if buf[0] == 'F' && buf[1] == 'L' && buf[2] == 'V' && buf[3] == 0x01 {
		return "video/x-flv"
	}

	// ASF container used by WMV
	asf := []byte{0x30, 0x26, 0xB2, 0x75, 0x8E, 0x66, 0xCF, 0x11}
	if bytes.HasPrefix(buf, asf) {
		return "video/x-ms-wmv"
	}

	if len(buf) < 12 {
		return ""
	}

	// AVI: RIFF....AVI
	if string(buf[0:4]) == "RIFF" && string(buf[8:11]) == "AVI" {
		return "video/x-msvideo"
	}

	// MP4/QuickTime: ftyp box at offset 4
	if string(buf[4:8]) == "ftyp" {
		switch string(buf[8:12]) {
		case "qt  ":
			return "video/quicktime"
		case "M4A ", "M4B ", "M4P ":
			return "audio/mp4"
		default:
			return "video/mp4"
		}
	}

	return ""
}

// IsVideo decides whether an upload is accepted: sniffed content wins, then a
// known video extension, then a declared video/* content type.
func IsVideo(filename, declaredType, sniffedType string) bool {
	if allowedMIMETypes[sniffedType] {
		return true
	}
	if videoExtensions[strings.ToLower(filepath.Ext(filename))] {
		return true
	}
	declared := strings.ToLower(strings.TrimSpace(declaredType))
	if i := strings.IndexByte(declared, ';'); i >= 0 {
		declared = strings.TrimSpace(declared[:i])
	}
	return allowedMIMETypes[declared] || strings.HasPrefix(declared, "video/")
}
