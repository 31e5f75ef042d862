// Package resolve implements the four-pass directive resolution pipeline:
// $include, profiles, extends, then the implicit dictionary merge. Profiles
// run before extends deliberately: profiles name-space a document's own
// members before inheritance computes the final attribute set, so when a
// key is absent from the host and both profiles and extends supply it,
// profiles content (the document's own declared intent) wins over
// inherited content. Each document is resolved exactly
// once; include, profile, and extends chains are resolved depth-first, so
// that merging in a target always merges in its own, already-fully-resolved
// content.
package resolve

import (
	"github.com/ocsf-tools/ocsflint/internal/diag"
	"github.com/ocsf-tools/ocsflint/internal/merge"
	"github.com/ocsf-tools/ocsflint/internal/reader"
)

// state tracks a document's position in the depth-first resolution walk.
type state int

const (
	unresolved state = iota
	inProgress
	resolved
)

// Processor drives resolution of an entire loaded schema tree.
type Processor struct {
	r         *reader.Reader
	collector *diag.Collector

	state map[string]state

	// includeSnapshot records each document's root-level $include targets
	// as they existed before pass 1 consumed them, keyed by document path.
	// resolveProfilesIn consults this to raise RedundantProfileInclude.
	includeSnapshot map[string][]string

	dictionaryTypes map[string]map[string]any
}

// NewProcessor builds a Processor over r, reporting findings to collector.
func NewProcessor(r *reader.Reader, collector *diag.Collector) *Processor {
	return &Processor{
		r:               r,
		collector:       collector,
		state:           make(map[string]state),
		includeSnapshot: make(map[string][]string),
	}
}

// ResolveAll runs the full pipeline over every document the Reader loaded,
// in a stable order, and then performs the implicit dictionary merge across
// the whole tree. It does no I/O: diagnostics are reported through the
// Collector, and the only errors it returns are ones Collector.Add returned
// other than diag.ErrFatal. An ErrFatal stops the document (or the
// dictionary pass) it came from, and resolution goes on with the next
// document.
func (p *Processor) ResolveAll() error {
	for _, path := range p.r.AllPaths() {
		p.snapshotIncludes(path)
	}

	for _, path := range p.r.AllPaths() {
		if err := p.resolveDocument(path, nil); err != nil && err != diag.ErrFatal {
			return err
		}
	}

	if err := p.ResolveDictionary(); err != nil && err != diag.ErrFatal {
		return err
	}
	return nil
}

func (p *Processor) snapshotIncludes(path string) {
	doc, ok := p.r.Get(path)
	if !ok {
		return
	}
	targets := extractIncludeTargets(doc["$include"])
	if len(targets) > 0 {
		p.includeSnapshot[path] = targets
	}
}

func extractIncludeTargets(v any) []string {
	switch val := v.(type) {
	case string:
		return []string{val}
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// resolveDocument resolves path and everything it transitively depends on
// through $include and extends, skipping documents already resolved and
// reporting a cycle diagnostic for any re-entrant path still inProgress.
// active is the stack of paths currently being resolved in this DFS branch,
// used only for rendering the cycle diagnostic's context.
func (p *Processor) resolveDocument(path string, active []string) error {
	switch p.state[path] {
	case resolved:
		return nil
	case inProgress:
		return p.cycleDiagnostic(path, active)
	}

	p.state[path] = inProgress
	active = append(active, path)

	doc, ok := p.r.Get(path)
	if !ok {
		p.state[path] = resolved
		return nil
	}

	kind := p.r.KindOf(path)
	err := p.resolveIncludesIn(doc, path, active)
	if err == nil {
		err = p.resolveProfilesIn(doc, path, active)
	}
	if err == nil {
		err = p.resolveExtendsIn(doc, path, kind, active)
	}

	// Whatever was merged before an abort is still committed: an Eager-mode
	// abort stops further directive resolution on this document, it doesn't
	// unwind partial progress. The document is marked resolved either way so
	// dependents don't mistake the abort for a live cycle.
	p.r.Set(path, doc)
	p.state[path] = resolved
	return err
}

func (p *Processor) cycleDiagnostic(target string, active []string) error {
	directive := "extends"
	from := target
	if len(active) > 0 {
		from = active[len(active)-1]
	}
	return p.collector.Add(diag.KindCycleDetected, from, map[string]any{
		"directive": directive,
		"path":      from,
		"target":    target,
	})
}

// dependOn resolves target as a dependency of path reached via directive,
// deep-copies its resolved content, and returns it for the caller to merge.
// It reports a cycle diagnostic (rather than resolving) if target is
// currently inProgress in this DFS branch.
func (p *Processor) dependOn(directive, path, target string, active []string) (reader.Document, error) {
	if p.state[target] == inProgress {
		return nil, p.collector.Add(diag.KindCycleDetected, path, map[string]any{
			"directive": directive,
			"path":      path,
			"target":    target,
		})
	}
	if err := p.resolveDocument(target, active); err != nil {
		return nil, err
	}
	targetDoc, ok := p.r.Get(target)
	if !ok {
		return nil, nil
	}
	return merge.DeepCopyMap(targetDoc), nil
}

// ResolveDictionary is exposed separately from the per-document pipeline
// since it operates on the whole tree at once: every attribute entry's name
// is looked up against the (possibly extension-local) dictionary, and the
// dictionary's definition is merged in underneath whatever the attribute
// entry already declares.
func (p *Processor) ResolveDictionary() error {
	return p.resolveDictionaryPass()
}
