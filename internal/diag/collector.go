package diag

import (
	"embed"
	"sort"

	"github.com/kaptinlin/go-i18n"
)

//go:embed locales/*.json
var localesFS embed.FS

// Bundle returns an initialized internationalization bundle with the
// embedded English and Simplified Chinese locales loaded.
func Bundle() (*i18n.I18n, error) {
	bundle := i18n.NewBundle(
		i18n.WithDefaultLocale("en"),
		i18n.WithLocales("en", "zh-Hans"),
	)

	err := bundle.LoadFS(localesFS, "locales/*.json")

	return bundle, err
}

// Mode selects whether a Collector stops at the first Fatal finding or
// gathers everything it can before reporting.
type Mode int

const (
	// Eager returns ErrFatal from Add as soon as a Fatal diagnostic lands,
	// letting resolution abort the current document immediately.
	Eager Mode = iota
	// Deferred keeps accumulating regardless of severity; the caller
	// inspects WorstSeverity after resolution finishes.
	Deferred
)

// Collector accumulates Diagnostics in emission order and assigns each one
// its Severity from an optionally overridden table.
type Collector struct {
	mode        Mode
	severities  map[Kind]Severity
	localizer   *i18n.Localizer
	diagnostics []*Diagnostic
}

// NewCollector builds a Collector. severities may be nil to use
// DefaultSeverity throughout; localizer may be nil to always render English.
func NewCollector(mode Mode, severities map[Kind]Severity, localizer *i18n.Localizer) *Collector {
	return &Collector{
		mode:       mode,
		severities: severities,
		localizer:  localizer,
	}
}

// Add records a new Diagnostic of the given Kind, path, and params. It
// returns ErrFatal when running in Eager mode and the resolved severity is
// Fatal, signaling the caller to unwind the current document resolution. A
// Kind whose resolved severity is Ignore is dropped silently and Add returns
// nil.
func (c *Collector) Add(kind Kind, path string, params map[string]any) error {
	severity := severityFor(kind, c.severities)
	if severity == Ignore {
		return nil
	}

	d := &Diagnostic{Kind: kind, Severity: severity, Path: path, Params: params}
	c.diagnostics = append(c.diagnostics, d)

	if c.mode == Eager && severity == Fatal {
		return ErrFatal
	}
	return nil
}

// All returns the diagnostics collected so far, in emission order.
func (c *Collector) All() []*Diagnostic {
	return c.diagnostics
}

// WorstSeverity returns the numerically lowest (most severe) Severity seen,
// or Info if nothing was collected.
func (c *Collector) WorstSeverity() Severity {
	worst := Info
	for _, d := range c.diagnostics {
		if d.Severity < worst {
			worst = d.Severity
		}
	}
	return worst
}

// HasFatal reports whether any collected diagnostic is Fatal.
func (c *Collector) HasFatal() bool {
	for _, d := range c.diagnostics {
		if d.Severity == Fatal {
			return true
		}
	}
	return false
}

// HasErrorOrWorse reports whether any collected diagnostic is Error or
// Fatal, the threshold the runner uses to decide its process exit code.
func (c *Collector) HasErrorOrWorse() bool {
	for _, d := range c.diagnostics {
		if d.Severity == Fatal || d.Severity == Error {
			return true
		}
	}
	return false
}

// SortStable orders diagnostics by Path then Kind, keeping relative order
// for equal keys. runner.Run calls it before building its Report, so both
// the text and the --json output list diagnostics in this order rather than
// in emission order.
func (c *Collector) SortStable() {
	sort.SliceStable(c.diagnostics, func(i, j int) bool {
		a, b := c.diagnostics[i], c.diagnostics[j]
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		return a.Kind < b.Kind
	})
}

// Localizer exposes the Collector's configured localizer so report
// renderers can call Diagnostic.Localize directly.
func (c *Collector) Localizer() *i18n.Localizer {
	return c.localizer
}
