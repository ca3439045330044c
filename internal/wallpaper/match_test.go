package wallpaper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func urlSetFor(t *testing.T, keyword string) map[string]bool {
	t.Helper()
	for _, e := range catalog {
		for _, kw := range e.Keywords {
			if kw == keyword {
				set := map[string]bool{}
				for _, u := range e.URLs {
					set[u] = true
				}
				return set
			}
		}
	}
	t.Fatalf("no catalog entry with keyword %q", keyword)
	return nil
}

func TestMatchBakeryStaysInFoodCategory(t *testing.T) {
	food := urlSetFor(t, "bakery")
	// The pick is random within the pool, so assert membership, not
	// equality.
	for i := 0; i < 50; i++ {
		url := Match("warm bakery")
		assert.True(t, food[url], "got %s, want a food/bakery URL", url)
	}
}

func TestPoolExactKeyword(t *testing.T) {
	pool := Pool("wedding photography")
	wedding := urlSetFor(t, "wedding")
	for _, u := range pool {
		assert.True(t, wedding[u], "unexpected URL %s", u)
	}
}

func TestPoolNoMatchFallsBackToGeneric(t *testing.T) {
	pool := Pool("xyzzy qwfp")
	require.Equal(t, genericURLs, pool)
}

func TestPoolEmptyKeyword(t *testing.T) {
	require.Equal(t, genericURLs, Pool(""))
	url := Match("")
	found := false
	for _, u := range genericURLs {
		if u == url {
			found = true
		}
	}
	assert.True(t, found)
}

func TestShortWordsIgnored(t *testing.T) {
	// Words of length <= 2 must not contribute word-pair scores.
	poolShort := Pool("it is of an")
	require.Equal(t, genericURLs, poolShort)
}
