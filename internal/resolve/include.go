package resolve

import (
	"github.com/ocsf-tools/ocsflint/internal/diag"
	"github.com/ocsf-tools/ocsflint/internal/merge"
	"github.com/ocsf-tools/ocsflint/internal/reader"
)

// resolveIncludesIn resolves and merges every $include directive found
// anywhere in doc, depth-first: an included fragment's own $include
// directives are resolved before it is merged into its host. The $include
// key is deleted from every map it's found on once processed, whether or
// not resolution succeeded, so later passes never see it.
func (p *Processor) resolveIncludesIn(doc reader.Document, path string, active []string) error {
	return p.resolveIncludesInMap(doc, path, active)
}

func (p *Processor) resolveIncludesInMap(m map[string]any, path string, active []string) error {
	if raw, ok := m["$include"]; ok {
		targets := extractIncludeTargets(raw)
		delete(m, "$include")
		for _, ref := range targets {
			if err := p.mergeInclude(m, path, ref, active); err != nil {
				return err
			}
		}
	}

	for _, value := range m {
		if err := p.recurseIncludes(value, path, active); err != nil {
			return err
		}
	}
	return nil
}

func (p *Processor) recurseIncludes(value any, path string, active []string) error {
	switch v := value.(type) {
	case map[string]any:
		return p.resolveIncludesInMap(v, path, active)
	case []any:
		for _, item := range v {
			if err := p.recurseIncludes(item, path, active); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *Processor) mergeInclude(host map[string]any, path, ref string, active []string) error {
	target, ok := p.r.FindInclude(path, ref)
	if !ok {
		return p.collector.Add(diag.KindUnresolvedInclude, path, map[string]any{
			"path":   path,
			"target": ref,
		})
	}

	fragment, err := p.dependOn("$include", path, target, active)
	if err != nil {
		return err
	}
	if fragment == nil {
		return nil
	}
	merge.Into(host, fragment)
	return nil
}
