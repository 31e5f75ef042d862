package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticError(t *testing.T) {
	d := New(KindMissingRequiredKey, "events/foo.json", map[string]any{"key": "uid"}, nil)
	assert.Equal(t, "events/foo.json is missing required key uid", d.Error())
}

func TestNewResolvesDefaultSeverity(t *testing.T) {
	d := New(KindCycleDetected, "a.json", nil, nil)
	assert.Equal(t, Error, d.Severity)
}

func TestNewHonorsOverride(t *testing.T) {
	overrides := map[Kind]Severity{KindUnknownKey: Fatal}
	d := New(KindUnknownKey, "a.json", nil, overrides)
	assert.Equal(t, Fatal, d.Severity)
}

func TestCollectorEagerStopsOnFatal(t *testing.T) {
	c := NewCollector(Eager, nil, nil)
	require.NoError(t, c.Add(KindUnknownKey, "a.json", nil))

	err := c.Add(KindMalformedJSON, "a.json", map[string]any{"path": "a.json", "error": "unexpected end of JSON input"})
	assert.ErrorIs(t, err, ErrFatal)
	assert.Len(t, c.All(), 2)
}

func TestCollectorDeferredNeverStops(t *testing.T) {
	c := NewCollector(Deferred, nil, nil)
	assert.NoError(t, c.Add(KindMalformedJSON, "a.json", nil))
	assert.True(t, c.HasFatal())
}

func TestCollectorIgnoreSeverityDrops(t *testing.T) {
	overrides := map[Kind]Severity{KindUnknownKey: Ignore}
	c := NewCollector(Deferred, overrides, nil)
	require.NoError(t, c.Add(KindUnknownKey, "a.json", nil))
	assert.Empty(t, c.All())
}

func TestCollectorWorstSeverity(t *testing.T) {
	c := NewCollector(Deferred, nil, nil)
	_ = c.Add(KindUnknownKey, "a.json", nil)        // Warning
	_ = c.Add(KindUnresolvedInclude, "b.json", nil) // Error
	assert.Equal(t, Error, c.WorstSeverity())
}

func TestCollectorSortStable(t *testing.T) {
	c := NewCollector(Deferred, nil, nil)
	_ = c.Add(KindUnknownKey, "b.json", nil)
	_ = c.Add(KindMissingRequiredKey, "a.json", nil)
	c.SortStable()
	all := c.All()
	require.Len(t, all, 2)
	assert.Equal(t, "a.json", all[0].Path)
	assert.Equal(t, "b.json", all[1].Path)
}

func TestBundleLoadsEmbeddedLocales(t *testing.T) {
	bundle, err := Bundle()
	require.NoError(t, err)
	assert.NotNil(t, bundle)
}
