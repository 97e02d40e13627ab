package llm

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/mamaaak/pdf-extraction-tool/internal/common"
)

var (
	fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")
	bareObject  = regexp.MustCompile(`(?s)\{.*\}`)
)

// ExtractJSON locates and parses the single JSON object in a free-form model
// reply. Fenced code blocks are preferred; otherwise the first balanced-
// looking brace span is tried. There is no partial recovery: a reply with no
// parseable object is a hard ParseError for the request.
func ExtractJSON(reply string) (map[string]any, error) {
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return nil, common.NewParseError("empty completion reply", nil)
	}

	candidate := ""
	if m := fencedBlock.FindStringSubmatch(reply); m != nil {
		candidate = m[1]
	} else if m := bareObject.FindString(reply); m != "" {
		candidate = m
	}
	if candidate == "" {
		return nil, common.NewParseError("no JSON object found in completion reply", nil)
	}

	var record map[string]any
	if err := json.Unmarshal([]byte(candidate), &record); err != nil {
		// Greedy capture can overshoot when prose follows the object; retry
		// with the shortest prefix that decodes.
		if rec, ok := decodePrefix(candidate); ok {
			return rec, nil
		}
		return nil, common.NewParseError("candidate span is not valid JSON", err)
	}
	return record, nil
}

// decodePrefix attempts a strict decode of the leading JSON value in s.
func decodePrefix(s string) (map[string]any, bool) {
	dec := json.NewDecoder(strings.NewReader(s))
	var record map[string]any
	if err := dec.Decode(&record); err != nil {
		return nil, false
	}
	return record, true
}
