package resolve

import (
	"github.com/ocsf-tools/ocsflint/internal/diag"
	"github.com/ocsf-tools/ocsflint/internal/merge"
	"github.com/ocsf-tools/ocsflint/internal/reader"
)

// resolveProfilesIn merges every profile named in doc's profiles list into
// doc, additively: unlike extends and $include, the profiles key itself is
// left in place after resolution rather than deleted, since a consumer
// downstream (and the RedundantProfileInclude check) needs to see which
// profiles were actually requested on this document, not just their merged
// content. This is a deliberate asymmetry with $include/extends, not an
// oversight.
func (p *Processor) resolveProfilesIn(doc reader.Document, path string, active []string) error {
	raw, ok := doc["profiles"]
	if !ok {
		return nil
	}
	names := extractIncludeTargets(raw)

	snapshot := p.includeSnapshot[path]
	for _, name := range names {
		if includedRedundantly(snapshot, name) {
			if err := p.collector.Add(diag.KindRedundantProfileInclude, path, map[string]any{
				"path":   path,
				"target": name,
			}); err != nil {
				return err
			}
		}

		target, ok := p.r.FindProfile(path, name)
		if !ok {
			if err := p.collector.Add(diag.KindUnresolvedProfile, path, map[string]any{
				"path":   path,
				"target": name,
			}); err != nil {
				return err
			}
			continue
		}

		profile, err := p.dependOn("profiles", path, target, active)
		if err != nil {
			return err
		}
		if profile == nil {
			continue
		}
		merge.Into(doc, profile)
	}
	return nil
}

// includedRedundantly reports whether name (or a path ending in name.json)
// appears among a document's pre-pass-1 $include targets, meaning the same
// content was already pulled in before the explicit profiles directive
// requested it again.
func includedRedundantly(includeTargets []string, profileName string) bool {
	for _, target := range includeTargets {
		if target == profileName || target == profileName+".json" {
			return true
		}
		if hasBaseName(target, profileName) {
			return true
		}
	}
	return false
}

func hasBaseName(path, name string) bool {
	base := path
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			base = path[i+1:]
			break
		}
	}
	return base == name || base == name+".json"
}
