// Package pathmatch classifies schema file paths by the structural role
// their location within a schema root implies, and answers the small set of
// path-algebra questions the resolver and validators need: which extension
// (if any) a path lives under, what category a path falls under, and how to
// strip an extension prefix down to a root-relative remainder.
package pathmatch

import (
	"path"
	"strings"

	"github.com/ocsf-tools/ocsflint/internal/recordtype"
)

const (
	extensionsDir = "extensions"
	eventsDir     = "events"
	objectsDir    = "objects"
	profilesDir   = "profiles"
	dictionaryFile = "dictionary.json"
	categoriesFile = "categories.json"
	extensionFile  = "extension.json"
)

// Classify inspects a slash-separated path relative to a schema root (which
// may itself be an extension root) and reports the recordtype.Kind implied
// by its location. Paths that match none of the known shapes classify as
// recordtype.Unknown, including fragments reached only through $include:
// nothing reclassifies them as recordtype.Include.
func Classify(relPath string) recordtype.Kind {
	clean := path.Clean(filepathToSlash(relPath))
	segments := strings.Split(clean, "/")

	// extensions/<name>/... recurses one level down, with the extension's
	// own dictionary.json or extension.json terminating at that level.
	if segments[0] == extensionsDir && len(segments) >= 2 {
		rest := strings.Join(segments[2:], "/")
		if len(segments) == 3 && segments[2] == dictionaryFile {
			return recordtype.Dictionary
		}
		if len(segments) == 3 && segments[2] == extensionFile {
			return recordtype.Extension
		}
		if len(segments) == 3 && segments[2] == categoriesFile {
			return recordtype.Category
		}
		if rest == "" {
			return recordtype.Unknown
		}
		return classifyBody(strings.Join(segments[2:], "/"))
	}

	if len(segments) == 1 {
		switch segments[0] {
		case dictionaryFile:
			return recordtype.Dictionary
		case categoriesFile:
			return recordtype.Category
		}
		return recordtype.Unknown
	}

	return classifyBody(clean)
}

// classifyBody classifies a path already stripped of any extensions/<name>/
// prefix.
func classifyBody(clean string) recordtype.Kind {
	segments := strings.Split(clean, "/")
	switch segments[0] {
	case eventsDir:
		return recordtype.Event
	case objectsDir:
		return recordtype.Object
	case profilesDir:
		return recordtype.Profile
	}
	return recordtype.Unknown
}

// InExtension reports whether relPath lives under an extensions/<name>/
// prefix, returning that name. ok is false for root-level paths.
func InExtension(relPath string) (name string, ok bool) {
	clean := path.Clean(filepathToSlash(relPath))
	segments := strings.Split(clean, "/")
	if len(segments) >= 2 && segments[0] == extensionsDir {
		return segments[1], true
	}
	return "", false
}

// StripExtensionPrefix removes a leading extensions/<name>/ segment pair
// from relPath, if present, returning the root-relative remainder. A path
// with no such prefix is returned unchanged.
func StripExtensionPrefix(relPath string) string {
	clean := path.Clean(filepathToSlash(relPath))
	segments := strings.Split(clean, "/")
	if len(segments) >= 2 && segments[0] == extensionsDir {
		return strings.Join(segments[2:], "/")
	}
	return clean
}

// CategoryOfEvent extracts the category segment from an event path, i.e.
// events/<category>/<name>.json yields <category>. Ok is false if relPath,
// once stripped of any extension prefix, does not have the events/<cat>/...
// shape.
func CategoryOfEvent(relPath string) (category string, ok bool) {
	body := StripExtensionPrefix(relPath)
	segments := strings.Split(body, "/")
	if len(segments) >= 2 && segments[0] == eventsDir {
		return segments[1], true
	}
	return "", false
}

// Dir returns the slash-separated directory component of relPath, the way
// the ancestor-walk algorithms need it: "" for a path with no directory
// component.
func Dir(relPath string) string {
	clean := filepathToSlash(relPath)
	d := path.Dir(clean)
	if d == "." {
		return ""
	}
	return d
}

// Join mirrors path.Join but is exported under this package's vocabulary so
// resolver code never has to import "path" directly to build candidate
// paths.
func Join(elem ...string) string {
	return path.Join(elem...)
}

// WithJSONSuffix appends ".json" to ref unless it already carries one.
func WithJSONSuffix(ref string) string {
	if strings.HasSuffix(ref, ".json") {
		return ref
	}
	return ref + ".json"
}

// filepathToSlash normalizes any OS-specific separators a caller might pass
// in (references in schema documents are always slash-separated, but
// directory-walk results on Windows would not be).
func filepathToSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}
