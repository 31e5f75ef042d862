// Package merge implements the host-wins deep merge used everywhere a
// resolved document absorbs content from an included fragment, an extends
// base, or a dictionary attribute entry.
//
// The rule is simple and applied uniformly: object keys merge recursively,
// a key present on the host always wins over the same key from the source
// (including an explicit null on the host), and arrays are never
// concatenated, the host's array replaces the source's outright.
package merge

// Into merges source into host in place, treating host as the winner of any
// key conflict. host must be a non-nil map; source may be nil, in which case
// Into is a no-op. Values copied from source are deep-copied first so host
// and source never end up sharing mutable nested structure.
func Into(host map[string]any, source map[string]any) {
	for key, sourceValue := range source {
		hostValue, present := host[key]
		if !present {
			host[key] = DeepCopy(sourceValue)
			continue
		}

		hostMap, hostIsMap := hostValue.(map[string]any)
		sourceMap, sourceIsMap := sourceValue.(map[string]any)
		if hostIsMap && sourceIsMap {
			Into(hostMap, sourceMap)
			continue
		}

		// Any other conflict, including a host array, a host scalar, or an
		// explicit host null: host wins unconditionally.
	}
}

// DeepCopy returns a structurally independent copy of v. Maps and slices are
// copied recursively; everything else (including nil) is returned as-is
// since JSON-decoded scalars are already immutable values.
func DeepCopy(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return DeepCopyMap(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = DeepCopy(item)
		}
		return out
	default:
		return v
	}
}

// DeepCopyMap returns a deep copy of m.
func DeepCopyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for key, value := range m {
		out[key] = DeepCopy(value)
	}
	return out
}
