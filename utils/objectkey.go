package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxFilenameBase = 50

// SanitizeFilename replaces every character outside [A-Za-z0-9.-] with '_'
// and truncates the base name to 50 characters before the extension is
// appended by the caller.
func SanitizeFilename(name string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case r >= 'A' && r <= 'Z':
			return r
		case r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-':
			return r
		default:
			return '_'
		}
	}, name)

	if len(mapped) > maxFilenameBase {
		mapped = mapped[:maxFilenameBase]
	}
	return mapped
}

// BuildObjectKey synthesizes a storage key: folder prefix, a
// time-based-plus-random token, and a sanitized filename with extension.
func BuildObjectKey(folder, name, ext string) string {
	if folder == "" {
		folder = "audio"
	}
	folder = strings.Trim(folder, "/")

	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	token := fmt.Sprintf("%d-%s", time.Now().UnixNano(), uuid.NewString()[:8])
	return fmt.Sprintf("%s/%s-%s%s", folder, token, SanitizeFilename(name), ext)
}
