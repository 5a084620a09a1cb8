package models

// Record is a schemaless JSON object as stored in the flat-file databases.
// Loads carry free-form extra fields and call payloads arrive from untrusted
// callers with no enforced schema, so both are kept as generic records with
// typed accessors instead of rigid structs.
type Record map[string]interface{}

// String returns the value for key as a string, or "" when the key is absent
// or holds a non-string value.
func (r Record) String(key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}

// Float returns the value for key as a float64. JSON numbers decode to
// float64, so this covers miles, rates and negotiation rounds alike.
func (r Record) Float(key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
