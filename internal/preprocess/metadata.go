package preprocess

import (
	"regexp"
	"strings"
)

// Metadata is best-effort document metadata pulled from the first page.
// Every field is optional; extraction failures yield empty strings.
type Metadata struct {
	Title  string `json:"title,omitempty"`
	Date   string `json:"date,omitempty"`
	Author string `json:"author,omitempty"`
}

var (
	dateRx = regexp.MustCompile(`(?i)\b(january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2},?\s+\d{4}\b` +
		`|\b\d{1,2}/\d{1,2}/\d{4}\b` +
		`|\b(19|20)\d{2}\b`)
	authorRx = regexp.MustCompile(`(?im)^\s*prepared\s+(?:by|for)[:\s]+([^\n]+)$`)
)

// ExtractMetadata scans the leading portion of the document for a title line,
// a publication date, and an authoring organization.
func ExtractMetadata(raw string) Metadata {
	head := raw
	const firstPage = 3000
	if len(head) > firstPage {
		head = head[:firstPage]
	}

	var md Metadata
	for _, line := range strings.Split(head, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		// first substantial line wins; skip obvious page furniture
		if len(line) >= 8 && len(line) <= 120 && !strings.HasPrefix(strings.ToLower(line), "page ") {
			md.Title = line
			break
		}
	}
	if m := dateRx.FindString(head); m != "" {
		md.Date = strings.TrimSpace(m)
	}
	if m := authorRx.FindStringSubmatch(head); m != nil {
		md.Author = strings.TrimSpace(strings.Trim(m[1], " .,"))
	}
	return md
}
