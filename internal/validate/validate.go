// Package validate implements the structural checks that run over a fully
// resolved schema tree: required and unknown top-level keys, and name
// collisions across sibling documents. The unused/undefined-attribute and
// redundant-profile checks are raised directly by the resolver as it walks
// the dictionary and profiles directives respectively, since by the time a
// document is "resolved" those directives no longer exist to re-inspect;
// see internal/resolve for those.
package validate

import (
	"sort"

	"github.com/ocsf-tools/ocsflint/internal/diag"
	"github.com/ocsf-tools/ocsflint/internal/reader"
	"github.com/ocsf-tools/ocsflint/internal/recordtype"
)

// RequiredKeys reports a missing_required_key diagnostic for every document
// whose recordtype.Spec declares a required key it doesn't have, and for
// every entry inside a declared attribute container that is itself missing
// one of recordtype.NestedAttributeRequired's keys.
func RequiredKeys(r *reader.Reader, c *diag.Collector) error {
	for _, path := range r.AllPaths() {
		spec, ok := recordtype.Table[r.KindOf(path)]
		if !ok {
			continue
		}
		doc, ok := r.Get(path)
		if !ok {
			continue
		}
		for _, key := range spec.Required {
			if _, present := doc[key]; present {
				continue
			}
			if err := c.Add(diag.KindMissingRequiredKey, path, map[string]any{
				"path": path,
				"key":  key,
			}); err != nil {
				return err
			}
		}
		if err := nestedRequiredKeys(c, path, spec, doc); err != nil {
			return err
		}
	}
	return nil
}

// nestedRequiredKeys checks each entry of every attribute container spec
// declares against recordtype.NestedAttributeRequired, since a container
// entry is a record in its own right (merged in from the dictionary or
// declared inline) and isn't covered by the top-level Required walk above.
func nestedRequiredKeys(c *diag.Collector, path string, spec recordtype.Spec, doc reader.Document) error {
	for _, container := range spec.AttributeContainers {
		entries, ok := doc[container].(map[string]any)
		if !ok {
			continue
		}
		names := make([]string, 0, len(entries))
		for name := range entries {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			entry, ok := entries[name].(map[string]any)
			if !ok {
				continue
			}
			for _, key := range recordtype.NestedAttributeRequired {
				if _, present := entry[key]; present {
					continue
				}
				if err := c.Add(diag.KindMissingRequiredKey, path, map[string]any{
					"path":      path,
					"attribute": name,
					"key":       key,
				}); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// UnknownKeys reports an unknown_key diagnostic for every top-level key on a
// document that its recordtype.Spec does not declare as required or
// optional.
func UnknownKeys(r *reader.Reader, c *diag.Collector) error {
	for _, path := range r.AllPaths() {
		spec, ok := recordtype.Table[r.KindOf(path)]
		if !ok {
			continue
		}
		doc, ok := r.Get(path)
		if !ok {
			continue
		}
		keys := make([]string, 0, len(doc))
		for key := range doc {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if spec.Allowed(key) {
				continue
			}
			if err := c.Add(diag.KindUnknownKey, path, map[string]any{
				"path": path,
				"key":  key,
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

// NameCollision reports a name_collision diagnostic whenever two or more
// documents of the same recordtype.Kind declare the same "name" value.
func NameCollision(r *reader.Reader, c *diag.Collector) error {
	byKindAndName := make(map[recordtype.Kind]map[string][]string)

	for _, path := range r.AllPaths() {
		kind := r.KindOf(path)
		if _, ok := recordtype.Table[kind]; !ok {
			continue
		}
		doc, ok := r.Get(path)
		if !ok {
			continue
		}
		name, ok := doc["name"].(string)
		if !ok || name == "" {
			continue
		}
		if byKindAndName[kind] == nil {
			byKindAndName[kind] = make(map[string][]string)
		}
		byKindAndName[kind][name] = append(byKindAndName[kind][name], path)
	}

	kinds := make([]recordtype.Kind, 0, len(byKindAndName))
	for kind := range byKindAndName {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	for _, kind := range kinds {
		names := make([]string, 0, len(byKindAndName[kind]))
		for name := range byKindAndName[kind] {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			paths := byKindAndName[kind][name]
			if len(paths) < 2 {
				continue
			}
			sort.Strings(paths)
			if err := c.Add(diag.KindNameCollision, paths[0], map[string]any{
				"name":  name,
				"paths": paths,
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

// UnclassifiablePaths reports an unclassifiable_path diagnostic for every
// loaded document the Path Matcher could not classify into a known
// recordtype.Kind (recordtype.Unknown) — a JSON file present in the tree
// that matches none of the directory conventions a schema root defines.
func UnclassifiablePaths(r *reader.Reader, c *diag.Collector) error {
	for _, path := range r.AllPaths() {
		if r.KindOf(path) != recordtype.Unknown {
			continue
		}
		if err := c.Add(diag.KindUnclassifiablePath, path, map[string]any{
			"path": path,
		}); err != nil {
			return err
		}
	}
	return nil
}

// All runs every validator over r in a fixed order, reporting into c.
func All(r *reader.Reader, c *diag.Collector) error {
	if err := RequiredKeys(r, c); err != nil {
		return err
	}
	if err := UnknownKeys(r, c); err != nil {
		return err
	}
	if err := NameCollision(r, c); err != nil {
		return err
	}
	return UnclassifiablePaths(r, c)
}
