// Package recordtype declares the static table of OCSF document shapes.
//
// The table replaces what the upstream validator did with runtime reflection
// over generated struct tags: here every record type's required and optional
// top-level keys, plus its nested attribute containers, are plain data.
package recordtype

// Kind tags a schema document by the structural role its path implies.
type Kind int

const (
	// Unknown is the zero value: a path the Path Matcher could not classify.
	// Fatal if encountered where a classification is required.
	Unknown Kind = iota
	// Dictionary is dictionary.json at the schema root or an extension root.
	Dictionary
	// Category is categories.json.
	Category
	// Event is anything under events/.
	Event
	// Object is anything under objects/.
	Object
	// Profile is anything under profiles/.
	Profile
	// Extension is extensions/<name>/extension.json, the extension marker file.
	Extension
	// Include is a fragment referenced only via $include; it carries no fixed
	// shape of its own and is never subject to the RequiredKeys/UnknownKeys
	// validators.
	Include
)

// String renders the kind the way diagnostics and tests expect to see it.
func (k Kind) String() string {
	switch k {
	case Dictionary:
		return "dictionary"
	case Category:
		return "category"
	case Event:
		return "event"
	case Object:
		return "object"
	case Profile:
		return "profile"
	case Extension:
		return "extension"
	case Include:
		return "include"
	default:
		return "unknown"
	}
}

// Spec declares the allowed top-level shape of one record Kind.
type Spec struct {
	// Required top-level keys. Missing ones produce MissingRequiredKeyError.
	Required []string
	// Optional top-level keys. Anything else produces UnknownKeyError.
	Optional []string
	// AttributeContainers names top-level keys whose value is itself a map of
	// name -> nested-attribute-record (currently only "attributes").
	AttributeContainers []string
}

// allowed returns the union of Required and Optional as a set, used by the
// UnknownKeys validator.
func (s Spec) allowed() map[string]struct{} {
	set := make(map[string]struct{}, len(s.Required)+len(s.Optional))
	for _, k := range s.Required {
		set[k] = struct{}{}
	}
	for _, k := range s.Optional {
		set[k] = struct{}{}
	}
	return set
}

// Allowed reports whether key is a declared required or optional top-level
// key for this Spec.
func (s Spec) Allowed(key string) bool {
	_, ok := s.allowed()[key]
	return ok
}

// HasAttributeContainer reports whether key names one of this Spec's nested
// attribute containers.
func (s Spec) HasAttributeContainer(key string) bool {
	for _, c := range s.AttributeContainers {
		if c == key {
			return true
		}
	}
	return false
}

// Table is the authoritative, static map from Kind to its declared shape.
// Include and Unknown have no entry: they carry no fixed schema, and
// RequiredKeys/UnknownKeys skip any document whose Kind is absent here.
var Table = map[Kind]Spec{
	Dictionary: {
		Required:            []string{"attributes", "types"},
		Optional:            []string{"name", "caption", "description"},
		AttributeContainers: []string{"attributes"},
	},
	Category: {
		Required:            []string{"attributes"},
		Optional:            []string{"name", "caption", "description"},
		AttributeContainers: []string{"attributes"},
	},
	Event: {
		Required:            []string{"caption", "name", "uid"},
		Optional:            []string{"description", "extends", "profiles", "attributes", "category", "severity"},
		AttributeContainers: []string{"attributes"},
	},
	Object: {
		Required:            []string{"caption", "name"},
		Optional:            []string{"description", "extends", "profiles", "attributes"},
		AttributeContainers: []string{"attributes"},
	},
	Profile: {
		Required:            []string{"caption", "name"},
		Optional:            []string{"description", "attributes", "meta"},
		AttributeContainers: []string{"attributes"},
	},
	Extension: {
		Required: []string{"name", "uid"},
		Optional: []string{"caption", "description", "version"},
	},
}

// NestedAttributeRequired lists the keys a single entry inside an "attributes"
// container must carry once resolution (including the dictionary merge) has
// run. Declared separately from Table because an attribute entry is not
// itself one of the top-level Kinds.
var NestedAttributeRequired = []string{"type"}
