package upload

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Size limits for uploaded files.
const (
	MaxResumeSize  = 5 << 20 // 5 MB
	MaxPictureSize = 2 << 20 // 2 MB
)

// Magic byte signatures for allowed file types.
// Maps lowercase extension to possible magic byte prefixes.
var magicBytes = map[string][][]byte{
	".jpg":  {{0xFF, 0xD8, 0xFF}},
	".jpeg": {{0xFF, 0xD8, 0xFF}},
	".png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	".gif":  {{0x47, 0x49, 0x46, 0x38, 0x37, 0x61}, {0x47, 0x49, 0x46, 0x38, 0x39, 0x61}}, // GIF87a & GIF89a
	".webp": {{0x52, 0x49, 0x46, 0x46}},                                                   // RIFF header
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},                                                   // %PDF
	".doc":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}},                           // OLE Compound Document
	".docx": {{0x50, 0x4B, 0x03, 0x04}},                                                   // ZIP (PK..)
}

var documentExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ValidateResume checks a resume upload: size cap and document extension,
// then content sniffing against the extension's magic bytes.
func ValidateResume(filename string, data []byte) error {
	return validate(filename, data, MaxResumeSize, documentExtensions, "resume")
}

// ValidatePicture checks a profile picture or company logo upload.
func ValidatePicture(filename string, data []byte) error {
	return validate(filename, data, MaxPictureSize, imageExtensions, "image")
}

func validate(filename string, data []byte, maxSize int64, allowed map[string]bool, kind string) error {
	if int64(len(data)) > maxSize {
		return fmt.Errorf("%s exceeds the maximum size of %d MB", kind, maxSize>>20)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return fmt.Errorf("%s file has no extension", kind)
	}
	if !allowed[ext] {
		return fmt.Errorf("%s extension not allowed: %s (allowed: %s)", kind, ext, extList(allowed))
	}

	if !validateMagicBytes(ext, data) {
		return fmt.Errorf("%s content does not match extension %s", kind, ext)
	}

	return nil
}

// validateMagicBytes checks if file content starts with expected magic bytes
func validateMagicBytes(ext string, data []byte) bool {
	if len(data) < 4 {
		return false // File too small to validate
	}

	signatures, ok := magicBytes[ext]
	if !ok {
		return false // Unknown extension
	}

	for _, sig := range signatures {
		if len(data) >= len(sig) && bytes.HasPrefix(data, sig) {
			return true
		}
	}

	return false
}

func extList(allowed map[string]bool) string {
	exts := make([]string, 0, len(allowed))
	for ext := range allowed {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return strings.Join(exts, ", ")
}
