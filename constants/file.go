package constants

import "strings"

// InputFormats holds the allowed input formats for document submission.
var InputFormats = []string{"PDF", "TXT"}

// AllowedExtensions holds the default allowed file extensions for document input.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
	"txt": {},
	"md":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a file extension to an input format, or "" when the
// extension is not supported.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return "PDF"
	case "txt", "md":
		return "TXT"
	default:
		return ""
	}
}
