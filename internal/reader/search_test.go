package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReader(paths ...string) *Reader {
	r := New("/schema")
	for _, p := range paths {
		r.Set(p, Document{})
	}
	return r
}

func TestFindIncludeExtensionBeforeRoot(t *testing.T) {
	r := newTestReader("extensions/ext1/fragments/common.json", "fragments/common.json")
	got, ok := r.FindInclude("extensions/ext1/events/net/conn.json", "fragments/common")
	require.True(t, ok)
	assert.Equal(t, "extensions/ext1/fragments/common.json", got)
}

func TestFindIncludeFallsBackToRoot(t *testing.T) {
	r := newTestReader("fragments/common.json")
	got, ok := r.FindInclude("extensions/ext1/events/net/conn.json", "fragments/common")
	require.True(t, ok)
	assert.Equal(t, "fragments/common.json", got)
}

func TestFindIncludeJSONSuffixFallback(t *testing.T) {
	r := newTestReader("fragments/common.json")
	got, ok := r.FindInclude("events/net/conn.json", "fragments/common")
	require.True(t, ok)
	assert.Equal(t, "fragments/common.json", got)
}

func TestFindIncludeNotFound(t *testing.T) {
	r := newTestReader()
	_, ok := r.FindInclude("events/net/conn.json", "missing")
	assert.False(t, ok)
}

func TestAncestorChainsInterleaving(t *testing.T) {
	extChain, rootChain := ancestorChains("extensions/ext1/events/net/conn.json")
	assert.Equal(t, []string{
		"extensions/ext1/events/net",
		"extensions/ext1/events",
		"extensions/ext1",
	}, extChain)
	assert.Equal(t, []string{"events/net", "events"}, rootChain)
}

func TestFindBaseInterleavedOrderPrefersNearestExtension(t *testing.T) {
	r := newTestReader(
		"extensions/ext1/events/base.json", // i=1 extension candidate
		"events/base.json",                 // i=1 root candidate, should lose
	)
	got, fellBack, ok := r.FindBase("extensions/ext1/events/net/conn.json", "base")
	require.True(t, ok)
	assert.False(t, fellBack)
	assert.Equal(t, "extensions/ext1/events/base.json", got)
}

func TestFindBaseExtensionChainReachesExtensionRoot(t *testing.T) {
	r := newTestReader("extensions/ext1/base.json")
	got, _, ok := r.FindBase("extensions/ext1/events/net/conn.json", "base")
	require.True(t, ok)
	assert.Equal(t, "extensions/ext1/base.json", got)
}

func TestFindBaseFallsBackToSiblingCategory(t *testing.T) {
	r := newTestReader("events/other/other_event.json")
	got, fellBack, ok := r.FindBase("events/net/conn.json", "other_event")
	require.True(t, ok)
	assert.True(t, fellBack)
	assert.Equal(t, "events/other/other_event.json", got)
}

func TestFindBaseUnresolved(t *testing.T) {
	r := newTestReader()
	_, _, ok := r.FindBase("events/net/conn.json", "missing")
	assert.False(t, ok)
}

func TestFindProfileSearchOrder(t *testing.T) {
	r := newTestReader(
		"extensions/ext1/profiles/cloud.json",
		"profiles/cloud.json",
	)
	got, ok := r.FindProfile("extensions/ext1/events/net/conn.json", "cloud")
	require.True(t, ok)
	assert.Equal(t, "extensions/ext1/profiles/cloud.json", got)
}

func TestFindProfileRootProfilesBeforeExtensionRoot(t *testing.T) {
	r := newTestReader(
		"profiles/cloud.json",
		"extensions/ext1/cloud.json",
	)
	got, ok := r.FindProfile("extensions/ext1/events/net/conn.json", "cloud")
	require.True(t, ok)
	assert.Equal(t, "profiles/cloud.json", got)
}
