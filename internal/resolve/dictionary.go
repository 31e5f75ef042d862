package resolve

import (
	"github.com/ocsf-tools/ocsflint/internal/diag"
	"github.com/ocsf-tools/ocsflint/internal/merge"
	"github.com/ocsf-tools/ocsflint/internal/pathmatch"
	"github.com/ocsf-tools/ocsflint/internal/recordtype"
)

// resolveDictionaryPass walks every attribute container on every resolved
// document other than the dictionaries themselves and merges in the matching dictionary entry's definition,
// dictionary-wins-on-absence (the attribute entry's own keys still take
// priority, same host-wins rule as everywhere else). An extension's own
// dictionary.json is preferred over the root dictionary for attributes
// referenced from within that extension; this also records the set of
// attribute names actually used, for the unused-attribute check.
func (p *Processor) resolveDictionaryPass() error {
	dictionaries := p.loadDictionaries()
	used := make(map[string]map[string]bool) // dictionary path -> attribute name -> used

	for _, path := range p.r.AllPaths() {
		kind := p.r.KindOf(path)
		spec, ok := recordtype.Table[kind]
		if !ok || kind == recordtype.Dictionary || !spec.HasAttributeContainer("attributes") {
			continue
		}
		doc, ok := p.r.Get(path)
		if !ok {
			continue
		}
		rawAttrs, ok := doc["attributes"].(map[string]any)
		if !ok {
			continue
		}

		dictPath, dict := p.dictionaryFor(path, dictionaries)

		for name, rawEntry := range rawAttrs {
			entry, ok := rawEntry.(map[string]any)
			if !ok {
				continue
			}
			defEntry, found := dict[name]
			if !found {
				if err := p.collector.Add(diag.KindUndefinedAttribute, path, map[string]any{
					"path":      path,
					"attribute": name,
				}); err != nil {
					return err
				}
				continue
			}
			if defMap, ok := defEntry.(map[string]any); ok {
				merge.Into(entry, merge.DeepCopyMap(defMap))
			}
			if dictPath != "" {
				if used[dictPath] == nil {
					used[dictPath] = make(map[string]bool)
				}
				used[dictPath][name] = true
			}
		}
	}

	return p.reportUnusedAttributes(dictionaries, used)
}

// loadDictionaries returns, for every dictionary.json the Reader loaded
// (root and each extension), its attributes map keyed by the dictionary's
// own document path.
func (p *Processor) loadDictionaries() map[string]map[string]any {
	out := make(map[string]map[string]any)
	for _, path := range p.r.AllPaths() {
		if p.r.KindOf(path) != recordtype.Dictionary {
			continue
		}
		doc, ok := p.r.Get(path)
		if !ok {
			continue
		}
		if attrs, ok := doc["attributes"].(map[string]any); ok {
			out[path] = attrs
		}
	}
	return out
}

// dictionaryFor picks the dictionary that applies to a document at path: its
// own extension's dictionary if it lives in one and that extension defines
// one, falling back to the root dictionary.
func (p *Processor) dictionaryFor(path string, dictionaries map[string]map[string]any) (string, map[string]any) {
	if ext, ok := pathmatch.InExtension(path); ok {
		extDictPath := pathmatch.Join("extensions", ext, "dictionary.json")
		if dict, ok := dictionaries[extDictPath]; ok {
			return extDictPath, dict
		}
	}
	const rootDict = "dictionary.json"
	if dict, ok := dictionaries[rootDict]; ok {
		return rootDict, dict
	}
	return "", nil
}

func (p *Processor) reportUnusedAttributes(dictionaries map[string]map[string]any, used map[string]map[string]bool) error {
	for dictPath, attrs := range dictionaries {
		for name := range attrs {
			if used[dictPath] != nil && used[dictPath][name] {
				continue
			}
			if err := p.collector.Add(diag.KindUnusedAttribute, dictPath, map[string]any{
				"path":      dictPath,
				"attribute": name,
			}); err != nil {
				return err
			}
		}
	}
	return nil
}
