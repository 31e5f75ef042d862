// Package diag models the linter's diagnostics: severities, kinds, the
// Diagnostic value itself, and the Collector that accumulates them across a
// run, in either mode, with optional localization of the rendered message.
package diag

import (
	"fmt"
	"strings"

	"github.com/kaptinlin/go-i18n"
)

// Severity ranks a Diagnostic's importance. Ordering matters: Fatal sorts
// first and a Collector's WorstSeverity picks the numerically lowest value
// seen.
type Severity int

const (
	// Fatal is the most severe level. In Eager mode, recording one stops
	// resolution of the affected document; no further passes run over it.
	Fatal Severity = iota
	// Error fails the run but resolution continues to surface more findings.
	Error
	// Warning flags a questionable but structurally legal document.
	Warning
	// Info is purely informational.
	Info
	// Ignore suppresses a Kind entirely: Collector never stores it.
	Ignore
)

// String renders a Severity the way CLI output and config files spell it.
func (s Severity) String() string {
	switch s {
	case Fatal:
		return "fatal"
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	case Ignore:
		return "ignore"
	default:
		return "unknown"
	}
}

// ParseSeverity inverts String, for config and flag parsing.
func ParseSeverity(s string) (Severity, bool) {
	switch s {
	case "fatal":
		return Fatal, true
	case "error":
		return Error, true
	case "warning":
		return Warning, true
	case "info":
		return Info, true
	case "ignore":
		return Ignore, true
	default:
		return 0, false
	}
}

// Kind identifies the specific check that produced a Diagnostic. Each Kind
// has exactly one message template, registered in messageTemplates and the
// locale bundles under the same code string.
type Kind string

// Diagnostic kinds, grouped the way the resolver and validators that raise
// them are grouped.
const (
	KindCycleDetected               Kind = "cycle_detected"
	KindUnresolvedInclude           Kind = "unresolved_include"
	KindUnresolvedExtends           Kind = "unresolved_extends"
	KindUnresolvedProfile           Kind = "unresolved_profile"
	KindUnresolvedDictionaryType    Kind = "unresolved_dictionary_type"
	KindRedundantProfileInclude     Kind = "redundant_profile_include"
	KindExtendsFallbackToSibling    Kind = "extends_fallback_to_sibling"
	KindMissingRequiredKey          Kind = "missing_required_key"
	KindUnknownKey                  Kind = "unknown_key"
	KindUnusedAttribute             Kind = "unused_attribute"
	KindUndefinedAttribute          Kind = "undefined_attribute"
	KindNameCollision               Kind = "name_collision"
	KindUnclassifiablePath          Kind = "unclassifiable_path"
	KindMalformedJSON               Kind = "malformed_json"
)

// DefaultSeverity is the out-of-the-box severity table, overridable per Kind
// through runner configuration.
var DefaultSeverity = map[Kind]Severity{
	KindCycleDetected:            Error,
	KindUnresolvedInclude:        Error,
	KindUnresolvedExtends:        Error,
	KindUnresolvedProfile:        Error,
	KindUnresolvedDictionaryType: Error,
	KindRedundantProfileInclude:  Warning,
	KindExtendsFallbackToSibling: Warning,
	KindMissingRequiredKey:       Warning,
	KindUnknownKey:               Warning,
	KindUnusedAttribute:          Warning,
	KindUndefinedAttribute:       Warning,
	KindNameCollision:            Warning,
	KindUnclassifiablePath:       Warning,
	KindMalformedJSON:            Fatal,
}

// messageTemplates backs the English fallback used whenever a Localizer is
// nil or a locale bundle is missing a code; the locale JSON files under
// locales/ carry the authoritative, translated copies of these same
// templates keyed by Kind string.
var messageTemplates = map[Kind]string{
	KindCycleDetected:            "cycle detected while resolving {directive} at {path}: re-entered {target}",
	KindUnresolvedInclude:        "$include target {target} referenced from {path} could not be found",
	KindUnresolvedExtends:        "extends target {target} referenced from {path} could not be found",
	KindUnresolvedProfile:        "profile {target} referenced from {path} could not be found",
	KindUnresolvedDictionaryType: "attribute {attribute} in {path} has no matching dictionary entry",
	KindRedundantProfileInclude:  "{path} both $include:s and profiles: the profile {target}, which is redundant",
	KindExtendsFallbackToSibling: "extends target {target} for {path} fell back to a sibling-category match",
	KindMissingRequiredKey:       "{path} is missing required key {key}",
	KindUnknownKey:               "{path} has unknown key {key}",
	KindUnusedAttribute:          "dictionary attribute {attribute} is never referenced",
	KindUndefinedAttribute:       "attribute {attribute} in {path} is not declared in the dictionary",
	KindNameCollision:            "{name} is declared more than once: {paths}",
	KindUnclassifiablePath:       "{path} does not match any known record type and was skipped",
	KindMalformedJSON:            "{path} could not be parsed as JSON: {error}",
}

// Diagnostic is a single finding, tagged with the Kind that raised it, the
// resolved Severity it was assigned at emission time, the schema-relative
// path it concerns, and whatever parameters its message template needs.
type Diagnostic struct {
	Kind     Kind
	Severity Severity
	Path     string
	Params   map[string]any
}

// Error satisfies the error interface with the untranslated, English
// message, so a Diagnostic can be wrapped or returned directly wherever Go
// idiom expects an error.
func (d *Diagnostic) Error() string {
	return d.render(nil)
}

// Localize renders the Diagnostic's message using localizer, falling back to
// the English template if localizer is nil or lacks the Kind's code.
func (d *Diagnostic) Localize(localizer *i18n.Localizer) string {
	return d.render(localizer)
}

func (d *Diagnostic) render(localizer *i18n.Localizer) string {
	if localizer != nil {
		if msg := localizer.Get(string(d.Kind), i18n.Vars(d.Params)); msg != "" {
			return msg
		}
	}
	template, ok := messageTemplates[d.Kind]
	if !ok {
		return fmt.Sprintf("%s: %v", d.Kind, d.Params)
	}
	return substitute(template, d.Params)
}

func substitute(template string, params map[string]any) string {
	out := template
	for key, value := range params {
		placeholder := "{" + key + "}"
		out = strings.ReplaceAll(out, placeholder, fmt.Sprint(value))
	}
	return out
}

// New constructs a Diagnostic, resolving its Severity from severities (a nil
// map falls back to DefaultSeverity).
func New(kind Kind, path string, params map[string]any, severities map[Kind]Severity) *Diagnostic {
	return &Diagnostic{
		Kind:     kind,
		Severity: severityFor(kind, severities),
		Path:     path,
		Params:   params,
	}
}

func severityFor(kind Kind, severities map[Kind]Severity) Severity {
	if severities != nil {
		if s, ok := severities[kind]; ok {
			return s
		}
	}
	if s, ok := DefaultSeverity[kind]; ok {
		return s
	}
	return Error
}
