package report

// BuildReportJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. It is embedded in the extraction prompt and reused by the
// validator's structural check. Entity fields beyond the identifying one are
// deliberately optional: the fidelity rules tell the model to use null for
// unknown scalars, and coercion tolerates their absence.
func BuildReportJSONSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"totalGoals":     map[string]any{"type": "integer", "minimum": 0},
					"totalBMPs":      map[string]any{"type": "integer", "minimum": 0},
					"completionRate": map[string]any{"type": "number", "minimum": 0, "maximum": 100},
				},
			},
			"goals": entityArray(map[string]any{
				"id":          map[string]any{"type": "string"},
				"description": map[string]any{"type": "string", "minLength": 1},
				"status":      nullable("string"),
				"targetDate":  nullable("string"),
				"relatedBMPs": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			}, "description"),
			"bmps": entityArray(map[string]any{
				"id":            map[string]any{"type": "string"},
				"name":          map[string]any{"type": "string", "minLength": 1},
				"description":   nullable("string"),
				"category":      nullable("string"),
				"effectiveness": map[string]any{"type": []string{"number", "null"}, "minimum": 0, "maximum": 100},
			}, "name"),
			"implementation": entityArray(map[string]any{
				"id":          map[string]any{"type": "string"},
				"description": map[string]any{"type": "string", "minLength": 1},
				"status":      nullable("string"),
				"progress":    map[string]any{"type": []string{"number", "null"}, "minimum": 0, "maximum": 100},
				"responsible": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"timeline":    nullable("string"),
			}, "description"),
			"monitoring": entityArray(map[string]any{
				"id":          map[string]any{"type": "string"},
				"metric":      map[string]any{"type": "string", "minLength": 1},
				"value":       nullable("string"),
				"target":      nullable("string"),
				"unit":        nullable("string"),
				"frequency":   nullable("string"),
				"responsible": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			}, "metric"),
			"outreach": entityArray(map[string]any{
				"id":       map[string]any{"type": "string"},
				"activity": map[string]any{"type": "string", "minLength": 1},
				"audience": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"type":     nullable("string"),
				"timeline": nullable("string"),
			}, "activity"),
			"geographicAreas": entityArray(map[string]any{
				"id":          map[string]any{"type": "string"},
				"name":        map[string]any{"type": "string", "minLength": 1},
				"size":        map[string]any{"type": []string{"number", "null"}},
				"unit":        nullable("string"),
				"priority":    nullable("string"),
				"description": nullable("string"),
			}, "name"),
		},
	}
}

func entityArray(props map[string]any, required string) map[string]any {
	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":       "object",
			"properties": props,
			"required":   []string{required},
		},
	}
}

func nullable(typ string) map[string]any {
	return map[string]any{"type": []string{typ, "null"}}
}
