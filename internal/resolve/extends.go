package resolve

import (
	"github.com/ocsf-tools/ocsflint/internal/diag"
	"github.com/ocsf-tools/ocsflint/internal/merge"
	"github.com/ocsf-tools/ocsflint/internal/reader"
	"github.com/ocsf-tools/ocsflint/internal/recordtype"
)

// resolveExtendsIn merges doc's extends base, if any, into doc. Only Event
// and Object records carry extends; other kinds pass through untouched.
func (p *Processor) resolveExtendsIn(doc reader.Document, path string, kind recordtype.Kind, active []string) error {
	if kind != recordtype.Event && kind != recordtype.Object {
		return nil
	}

	raw, ok := doc["extends"]
	if !ok {
		return nil
	}
	ref, ok := raw.(string)
	if !ok {
		return nil
	}

	target, fellBack, ok := p.r.FindBase(path, ref)
	if !ok {
		return p.collector.Add(diag.KindUnresolvedExtends, path, map[string]any{
			"path":   path,
			"target": ref,
		})
	}
	if fellBack {
		if err := p.collector.Add(diag.KindExtendsFallbackToSibling, path, map[string]any{
			"path":   path,
			"target": ref,
		}); err != nil {
			return err
		}
	}

	base, err := p.dependOn("extends", path, target, active)
	if err != nil {
		return err
	}
	if base == nil {
		return nil
	}

	merge.Into(doc, base)
	delete(doc, "extends")
	return nil
}
