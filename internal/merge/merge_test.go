package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntoHostWinsOnScalar(t *testing.T) {
	host := map[string]any{"caption": "Host Caption"}
	source := map[string]any{"caption": "Source Caption", "description": "from source"}
	Into(host, source)
	assert.Equal(t, "Host Caption", host["caption"])
	assert.Equal(t, "from source", host["description"])
}

func TestIntoHostExplicitNilWins(t *testing.T) {
	host := map[string]any{"description": nil}
	source := map[string]any{"description": "from source"}
	Into(host, source)
	assert.Nil(t, host["description"])
}

func TestIntoMergesNestedMapsRecursively(t *testing.T) {
	host := map[string]any{
		"attributes": map[string]any{
			"actor": map[string]any{"caption": "Actor"},
		},
	}
	source := map[string]any{
		"attributes": map[string]any{
			"actor":  map[string]any{"caption": "From Source", "type": "object_t"},
			"device": map[string]any{"caption": "Device"},
		},
	}
	Into(host, source)
	attrs := host["attributes"].(map[string]any)
	actor := attrs["actor"].(map[string]any)
	assert.Equal(t, "Actor", actor["caption"], "host wins")
	assert.Equal(t, "object_t", actor["type"], "merged in from source")

	device, ok := attrs["device"]
	require.True(t, ok, "device missing from merged attributes")
	assert.Equal(t, "Device", device.(map[string]any)["caption"])
}

func TestIntoArraysDoNotConcatenate(t *testing.T) {
	host := map[string]any{"profiles": []any{"host"}}
	source := map[string]any{"profiles": []any{"host", "cloud", "container"}}
	Into(host, source)
	assert.Equal(t, []any{"host"}, host["profiles"], "host array wins")
}

func TestIntoDeepCopiesSourceValues(t *testing.T) {
	host := map[string]any{}
	nested := map[string]any{"caption": "Shared"}
	source := map[string]any{"actor": nested}
	Into(host, source)

	nested["caption"] = "Mutated"

	got := host["actor"].(map[string]any)
	assert.Equal(t, "Shared", got["caption"], "host's copy should not be mutated via shared reference")
}

func TestDeepCopyMapIndependence(t *testing.T) {
	original := map[string]any{
		"nested": map[string]any{"list": []any{1, 2, 3}},
	}
	copied := DeepCopyMap(original)

	copied["nested"].(map[string]any)["list"].([]any)[0] = 99

	originalList := original["nested"].(map[string]any)["list"].([]any)
	assert.Equal(t, 1, originalList[0], "mutating the copy should not leak into the original")
}
