package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ocsf-tools/ocsflint/internal/diag"
	"github.com/ocsf-tools/ocsflint/internal/reader"
)

func newFixture(docs map[string]reader.Document) (*reader.Reader, *diag.Collector) {
	r := reader.New("/schema")
	for path, doc := range docs {
		r.Set(path, doc)
	}
	return r, diag.NewCollector(diag.Deferred, nil, nil)
}

func TestRequiredKeysReportsMissing(t *testing.T) {
	r, c := newFixture(map[string]reader.Document{
		"events/net/conn.json": {"caption": "Connection"},
	})
	require.NoError(t, RequiredKeys(r, c))

	found := false
	for _, d := range c.All() {
		if d.Kind == diag.KindMissingRequiredKey && d.Params["key"] == "uid" {
			found = true
		}
	}
	assert.True(t, found, "expected missing_required_key for uid")
}

func TestRequiredKeysPassesWhenComplete(t *testing.T) {
	r, c := newFixture(map[string]reader.Document{
		"events/net/conn.json": {"caption": "Connection", "name": "conn", "uid": 1},
	})
	require.NoError(t, RequiredKeys(r, c))
	assert.Empty(t, c.All())
}

func TestRequiredKeysReportsMissingOnNestedAttribute(t *testing.T) {
	r, c := newFixture(map[string]reader.Document{
		"objects/process.json": {
			"caption": "Process",
			"name":    "process",
			"attributes": map[string]any{
				"pid":  map[string]any{"type": "integer_t"},
				"name": map[string]any{"caption": "Name"},
			},
		},
	})
	require.NoError(t, RequiredKeys(r, c))

	found := false
	for _, d := range c.All() {
		if d.Kind == diag.KindMissingRequiredKey && d.Params["attribute"] == "name" && d.Params["key"] == "type" {
			found = true
		}
	}
	assert.True(t, found, "expected missing_required_key for the nested attribute's type")

	for _, d := range c.All() {
		assert.False(t, d.Params["attribute"] == "pid", "pid declares type and should not be flagged")
	}
}

func TestUnknownKeysReportsExtra(t *testing.T) {
	r, c := newFixture(map[string]reader.Document{
		"objects/process.json": {"caption": "Process", "name": "process", "bogus": true},
	})
	require.NoError(t, UnknownKeys(r, c))

	found := false
	for _, d := range c.All() {
		if d.Kind == diag.KindUnknownKey && d.Params["key"] == "bogus" {
			found = true
		}
	}
	assert.True(t, found, "expected unknown_key for bogus")
}

func TestNameCollisionAcrossDocuments(t *testing.T) {
	r, c := newFixture(map[string]reader.Document{
		"objects/process.json":              {"caption": "Process", "name": "process"},
		"extensions/e/objects/process.json": {"caption": "Process Dup", "name": "process"},
	})
	require.NoError(t, NameCollision(r, c))

	found := false
	for _, d := range c.All() {
		if d.Kind == diag.KindNameCollision && d.Params["name"] == "process" {
			found = true
		}
	}
	assert.True(t, found, "expected name_collision for process")
}

func TestUnclassifiablePathsReportsUnknownKind(t *testing.T) {
	r, c := newFixture(map[string]reader.Document{
		"dictionary.json": {"types": map[string]any{}, "attributes": map[string]any{}},
		"notes.json":       {"whatever": true},
	})
	require.NoError(t, UnclassifiablePaths(r, c))

	found := false
	for _, d := range c.All() {
		if d.Kind == diag.KindUnclassifiablePath && d.Path == "notes.json" {
			found = true
		}
	}
	assert.True(t, found, "expected unclassifiable_path for notes.json")
}

func TestNameCollisionIgnoresDifferentKinds(t *testing.T) {
	r, c := newFixture(map[string]reader.Document{
		"objects/thing.json":  {"caption": "Thing", "name": "thing"},
		"profiles/thing.json": {"caption": "Thing Profile", "name": "thing"},
	})
	require.NoError(t, NameCollision(r, c))
	assert.Empty(t, c.All(), "same name across different kinds should not collide")
}
