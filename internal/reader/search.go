package reader

import "github.com/ocsf-tools/ocsflint/internal/pathmatch"

// FindInclude resolves an $include reference string seen at fromPath,
// trying, in order: the reference inside fromPath's own extension (if any),
// then the reference at the schema root, each tried both as given and with
// a .json suffix appended.
func (r *Reader) FindInclude(fromPath, ref string) (string, bool) {
	return r.findByExtensionThenRoot(fromPath, ref)
}

// FindProfile resolves a profiles reference string seen at fromPath, trying,
// in order: fromPath's extension's profiles/ directory, the root's
// profiles/ directory, fromPath's extension root, then the schema root.
// Each candidate is tried both as given and with a .json suffix appended.
func (r *Reader) FindProfile(fromPath, ref string) (string, bool) {
	candidates := make([]string, 0, 8)

	if ext, ok := pathmatch.InExtension(fromPath); ok {
		candidates = append(candidates, pathmatch.Join("extensions", ext, "profiles", ref))
	}
	candidates = append(candidates, pathmatch.Join("profiles", ref))

	if ext, ok := pathmatch.InExtension(fromPath); ok {
		candidates = append(candidates, pathmatch.Join("extensions", ext, ref))
	}
	candidates = append(candidates, ref)

	return r.firstExisting(candidates)
}

// findByExtensionThenRoot tries ref relative to fromPath's extension (if
// any), then relative to the schema root.
func (r *Reader) findByExtensionThenRoot(fromPath, ref string) (string, bool) {
	candidates := make([]string, 0, 4)
	if ext, ok := pathmatch.InExtension(fromPath); ok {
		candidates = append(candidates, pathmatch.Join("extensions", ext, ref))
	}
	candidates = append(candidates, ref)
	return r.firstExisting(candidates)
}

// firstExisting returns the first candidate (tried as given, then with a
// .json suffix) that names a loaded document.
func (r *Reader) firstExisting(candidates []string) (string, bool) {
	for _, c := range candidates {
		if r.Contains(c) {
			return c, true
		}
		withSuffix := pathmatch.WithJSONSuffix(c)
		if withSuffix != c && r.Contains(withSuffix) {
			return withSuffix, true
		}
	}
	return "", false
}

// FindBase resolves an extends reference string seen at fromPath. Its search
// order walks both the extension-rooted and the root-rooted ("stripped")
// ancestor directory chains of fromPath in lockstep, nearest ancestor first,
// trying ref joined onto each; the extension-rooted chain's final candidate
// is the bare extension root itself, while the root-rooted chain never
// offers the bare schema root. If nothing in either chain matches, it falls
// back to ref in another category directory under the same events/
// directory as fromPath (the extension's events/ for a path inside an
// extension), taking the first match in load order, and reports
// fellBack=true so the caller can raise the fallback warning.
func (r *Reader) FindBase(fromPath, ref string) (resolved string, fellBack bool, ok bool) {
	extChain, rootChain := ancestorChains(fromPath)

	n := len(extChain)
	if len(rootChain) > n {
		n = len(rootChain)
	}
	for i := 0; i < n; i++ {
		if i < len(extChain) {
			candidate := pathmatch.Join(extChain[i], ref)
			if found, ok := r.firstExisting([]string{candidate}); ok {
				return found, false, true
			}
		}
		if i < len(rootChain) {
			candidate := pathmatch.Join(rootChain[i], ref)
			if found, ok := r.firstExisting([]string{candidate}); ok {
				return found, false, true
			}
		}
	}

	if category, ok := pathmatch.CategoryOfEvent(fromPath); ok {
		eventsDir := "events"
		if ext, extOK := pathmatch.InExtension(fromPath); extOK {
			eventsDir = pathmatch.Join("extensions", ext, "events")
		}
		ownDir := pathmatch.Join(eventsDir, category)
		for _, loaded := range r.AllPaths() {
			siblingDir := pathmatch.Dir(loaded)
			if siblingDir == ownDir || pathmatch.Dir(siblingDir) != eventsDir {
				continue
			}
			if found, ok := r.firstExisting([]string{pathmatch.Join(siblingDir, ref)}); ok {
				return found, true, true
			}
		}
	}

	return "", false, false
}

// ancestorChains builds the two ancestor-directory candidate lists FindBase
// interleaves. extChain walks up from fromPath's own directory to its
// extension root inclusive (empty if fromPath is not under an extension).
// rootChain walks the same directories with any extensions/<name>/ prefix
// stripped, but never includes the bare schema root.
func ancestorChains(fromPath string) (extChain, rootChain []string) {
	dir := pathmatch.Dir(fromPath)
	ext, inExt := pathmatch.InExtension(fromPath)

	for dir != "" {
		if inExt {
			extChain = append(extChain, dir)
		}
		stripped := pathmatch.StripExtensionPrefix(dir)
		if stripped != "" {
			rootChain = append(rootChain, stripped)
		}
		if inExt && dir == pathmatch.Join("extensions", ext) {
			break
		}
		next := pathmatch.Dir(dir)
		if next == dir {
			break
		}
		dir = next
	}
	return extChain, rootChain
}
