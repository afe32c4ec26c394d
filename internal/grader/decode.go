package grader

import (
	"encoding/json"
	"strconv"
)

// Field aliases tolerated in responses. Providers drift from the schema
// under load or with smaller models; any recognizable spelling of a
// field is accepted and anything unusable is silently dropped.
var (
	arrayAliases      = []string{"answers", "results", "grades", "items"}
	okAliases         = []string{"ok", "correct", "passed"}
	correctionAliases = []string{"correction", "suggestion", "model"}
	tipAliases        = []string{"tip", "hint"}
	whyAliases        = []string{"why", "reason", "rationale"}
)

// decodeResult extracts per-answer verdicts from a grading response.
// Malformed entries degrade field by field: a bad index drops the entry,
// a bad field value leaves that field at its zero value.
func decodeResult(content json.RawMessage, n int) *Result {
	result := &Result{Verdicts: make([]Verdict, n)}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(content, &top); err != nil {
		return result
	}

	var entries []map[string]json.RawMessage
	for _, key := range arrayAliases {
		raw, ok := top[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, &entries); err == nil {
			break
		}
		entries = nil
	}

	for pos, entry := range entries {
		idx, ok := intField(entry, "index")
		if !ok {
			// No index: fall back to array position.
			idx = pos
		}
		if idx < 0 || idx >= n {
			continue
		}

		v := &result.Verdicts[idx]
		for _, key := range okAliases {
			if b, found := boolField(entry, key); found {
				v.OK = &b
				break
			}
		}
		v.Correction = firstString(entry, correctionAliases)
		v.Tip = firstString(entry, tipAliases)
		v.Why = firstString(entry, whyAliases)
	}

	return result
}

func intField(m map[string]json.RawMessage, key string) (int, bool) {
	raw, ok := m[key]
	if !ok {
		return 0, false
	}
	var i int
	if err := json.Unmarshal(raw, &i); err == nil {
		return i, true
	}
	// Some models quote integers.
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if j, err := strconv.Atoi(s); err == nil {
			return j, true
		}
	}
	return 0, false
}

func boolField(m map[string]json.RawMessage, key string) (bool, bool) {
	raw, ok := m[key]
	if !ok {
		return false, false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		switch s {
		case "true", "yes", "ok":
			return true, true
		case "false", "no":
			return false, true
		}
	}
	return false, false
}

func firstString(m map[string]json.RawMessage, keys []string) string {
	for _, key := range keys {
		raw, ok := m[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil && s != "" {
			return s
		}
	}
	return ""
}
