package recordstore

import "maps"

// Record is one open-schema entry in a namespace. Field sets vary per entity
// type; the only field the store itself interprets is "id".
type Record map[string]any

// idField is the one field every stored record carries.
const idField = "id"

// ID returns the record's id, or 0 if the id is missing or not numeric.
//
// Records decoded from JSON carry float64 ids; records fresh from [Store.Add]
// carry int64. Both are treated uniformly, and a missing or zero id counts
// as 0 for max-finding during id assignment.
func (r Record) ID() int64 {
	switch v := r[idField].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	}
	return 0
}

// setID assigns the record's id.
func (r Record) setID(id int64) {
	r[idField] = id
}

// Clone returns a shallow copy. Nested values are shared, matching the
// shallow-merge semantics of [Store.Update].
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	return maps.Clone(r)
}

// merge applies patch fields over the record. Patch fields win; fields absent
// from the patch are preserved. The id field cannot be patched away.
func (r Record) merge(patch Record) {
	id := r.ID()
	maps.Copy(r, patch)
	r.setID(id)
}

// normalize converts a JSON-decoded float64 id to int64 so that ids compare
// consistently regardless of whether the record round-tripped through disk.
func (r Record) normalize() {
	if v, ok := r[idField].(float64); ok {
		r[idField] = int64(v)
	}
}

func cloneAll(recs []Record) []Record {
	out := make([]Record, len(recs))
	for i, r := range recs {
		out[i] = r.Clone()
	}
	return out
}
