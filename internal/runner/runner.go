package runner

import (
	"github.com/kaptinlin/go-i18n"

	"github.com/ocsf-tools/ocsflint/internal/diag"
	"github.com/ocsf-tools/ocsflint/internal/reader"
	"github.com/ocsf-tools/ocsflint/internal/resolve"
	"github.com/ocsf-tools/ocsflint/internal/validate"
)

// Options configures a single Run over a schema root.
type Options struct {
	Root       string
	Severities map[diag.Kind]diag.Severity
	FailFast   bool
	Lang       string
}

// Report is the outcome of a Run: every diagnostic collected, in stable
// sorted order, the worst severity seen across all of them, and the distinct
// extensions the schema root declared.
type Report struct {
	Diagnostics []*diag.Diagnostic
	Worst       diag.Severity
	Localizer   *i18n.Localizer
	Extensions  []string
}

// Run loads opts.Root, resolves every document in it, and runs all
// validators, returning a Report. Non-diagnostic errors (I/O failures,
// malformed JSON the reader can't even parse into a document) abort the run
// and are returned directly rather than folded into the Report.
func Run(opts Options) (*Report, error) {
	r := reader.New(opts.Root)
	if err := r.Load(); err != nil {
		return nil, err
	}

	localizer, err := localizerFor(opts.Lang)
	if err != nil {
		return nil, err
	}

	mode := diag.Deferred
	if opts.FailFast {
		mode = diag.Eager
	}
	collector := diag.NewCollector(mode, opts.Severities, localizer)

	processor := resolve.NewProcessor(r, collector)
	if err := processor.ResolveAll(); err != nil && err != diag.ErrFatal {
		return nil, err
	}

	if err := validate.All(r, collector); err != nil && err != diag.ErrFatal {
		return nil, err
	}

	collector.SortStable()
	return &Report{
		Diagnostics: collector.All(),
		Worst:       collector.WorstSeverity(),
		Localizer:   localizer,
		Extensions:  r.ExtensionNames(),
	}, nil
}

func localizerFor(lang string) (*i18n.Localizer, error) {
	if lang == "" {
		return nil, nil
	}
	if lang != "en" && lang != "zh-Hans" {
		return nil, diag.ErrUnknownLocale
	}
	bundle, err := diag.Bundle()
	if err != nil {
		return nil, err
	}
	return bundle.NewLocalizer(lang), nil
}
