package report

import (
	"fmt"
	"strings"
)

// Coerce turns the untyped record that survived filtering into the fixed
// ExtractedReport shape. Missing sections become empty arrays, missing
// scalars become zero values, and loosely-typed values (numbers as strings,
// strings as numbers) are converted rather than rejected. By this point the
// record has already been filtered and validated.
func Coerce(record map[string]any) ExtractedReport {
	rep := ExtractedReport{
		Goals:           []Goal{},
		BMPs:            []BMP{},
		Implementation:  []Activity{},
		Monitoring:      []Metric{},
		Outreach:        []OutreachActivity{},
		GeographicAreas: []GeographicArea{},
	}

	if s, ok := record["summary"].(map[string]any); ok {
		rep.Summary = Summary{
			TotalGoals:     asInt(s["totalGoals"]),
			TotalBMPs:      asInt(s["totalBMPs"]),
			CompletionRate: clamp(asFloat(s["completionRate"]), 0, 100),
		}
	}

	for i, e := range entities(record, "goals") {
		rep.Goals = append(rep.Goals, Goal{
			ID:          idOr(e["id"], "goal", i),
			Description: asString(e["description"]),
			Status:      asString(e["status"]),
			TargetDate:  asString(e["targetDate"]),
			RelatedBMPs: asStringSlice(e["relatedBMPs"]),
		})
	}
	for i, e := range entities(record, "bmps") {
		rep.BMPs = append(rep.BMPs, BMP{
			ID:            idOr(e["id"], "bmp", i),
			Name:          asString(e["name"]),
			Description:   asString(e["description"]),
			Category:      asString(e["category"]),
			Effectiveness: clamp(asFloat(e["effectiveness"]), 0, 100),
		})
	}
	for i, e := range entities(record, "implementation") {
		rep.Implementation = append(rep.Implementation, Activity{
			ID:          idOr(e["id"], "activity", i),
			Description: asString(e["description"]),
			Status:      asString(e["status"]),
			Progress:    clamp(asFloat(e["progress"]), 0, 100),
			Responsible: asStringSlice(e["responsible"]),
			Timeline:    asString(e["timeline"]),
		})
	}
	for i, e := range entities(record, "monitoring") {
		rep.Monitoring = append(rep.Monitoring, Metric{
			ID:          idOr(e["id"], "metric", i),
			Metric:      asString(e["metric"]),
			Value:       asString(e["value"]),
			Target:      asString(e["target"]),
			Unit:        asString(e["unit"]),
			Frequency:   asString(e["frequency"]),
			Responsible: asStringSlice(e["responsible"]),
		})
	}
	for i, e := range entities(record, "outreach") {
		rep.Outreach = append(rep.Outreach, OutreachActivity{
			ID:       idOr(e["id"], "outreach", i),
			Activity: asString(e["activity"]),
			Audience: asStringSlice(e["audience"]),
			Type:     asString(e["type"]),
			Timeline: asString(e["timeline"]),
		})
	}
	for i, e := range entities(record, "geographicAreas") {
		rep.GeographicAreas = append(rep.GeographicAreas, GeographicArea{
			ID:          idOr(e["id"], "area", i),
			Name:        asString(e["name"]),
			Size:        asFloat(e["size"]),
			Unit:        asString(e["unit"]),
			Priority:    asString(e["priority"]),
			Description: asString(e["description"]),
		})
	}

	return rep
}

// Entities returns the object entries of a list section in an untyped
// record, skipping anything that is not an object.
func Entities(record map[string]any, section string) []map[string]any {
	return entities(record, section)
}

func entities(record map[string]any, section string) []map[string]any {
	arr, ok := record[section].([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(arr))
	for _, v := range arr {
		if m, ok := v.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", t), "0"), ".")
	case bool:
		return fmt.Sprintf("%t", t)
	default:
		return ""
	}
}

func asFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case string:
		var f float64
		if _, err := fmt.Sscanf(strings.TrimSuffix(strings.TrimSpace(t), "%"), "%f", &f); err == nil {
			return f
		}
	}
	return 0
}

func asInt(v any) int {
	n := int(asFloat(v))
	if n < 0 {
		return 0
	}
	return n
}

func asStringSlice(v any) []string {
	switch t := v.(type) {
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s := asString(item); s != "" {
				out = append(out, s)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil
		}
		return []string{s}
	default:
		return nil
	}
}

func idOr(v any, prefix string, i int) string {
	if s := asString(v); s != "" {
		return s
	}
	return fmt.Sprintf("%s-%d", prefix, i+1)
}

func clamp(f, lo, hi float64) float64 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}
