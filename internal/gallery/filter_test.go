package gallery_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lensfolio/lensfolio/internal/gallery"
)

func photos(ids ...string) []gallery.Photo {
	out := make([]gallery.Photo, 0, len(ids))
	for _, id := range ids {
		out = append(out, gallery.Photo{ID: id})
	}

	return out
}

func ids(ps []gallery.Photo) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}

	return out
}

func testCollections() []gallery.Collection {
	return []gallery.Collection{
		{ID: "c1", Title: "Nature", Photos: photos("n1", "n2")},
		{ID: "c2", Title: "Construction", Photos: photos("b1")},
		{ID: "c3", Title: "Nature", Photos: photos("x1")},
		{ID: "c4", Title: "", Photos: photos("u1")},
		{ID: "c5", Title: "Weddings", Photos: nil},
	}
}

func TestFilters(t *testing.T) {
	assert.Equal(t, []string{"ALL", "Nature", "Construction", "Weddings"}, gallery.Filters(testCollections()))
	assert.Equal(t, []string{"ALL"}, gallery.Filters(nil))
}

func TestSelect(t *testing.T) {
	cs := testCollections()

	tests := []struct {
		name   string
		filter string
		want   []string
	}{
		{"all", "ALL", []string{"n1", "n2", "b1", "x1", "u1"}},
		{"empty is all", "", []string{"n1", "n2", "b1", "x1", "u1"}},
		{"unknown is all", "Portraits", []string{"n1", "n2", "b1", "x1", "u1"}},
		{"first collection with the title", "Nature", []string{"n1", "n2"}},
		{"single", "Construction", []string{"b1"}},
		{"no photos", "Weddings", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(gallery.Select(cs, tt.filter)))
		})
	}
}

func TestSelectReturnsCopy(t *testing.T) {
	cs := testCollections()

	got := gallery.Select(cs, "Nature")
	got[0].ID = "changed"

	assert.Equal(t, "n1", cs[0].Photos[0].ID)
}

func TestShuffleIsPermutation(t *testing.T) {
	in := photos("a", "b", "c", "d", "e", "f", "g", "h")
	orig := ids(in)

	orders := map[string]struct{}{}

	for range 50 {
		out := gallery.Shuffle(in)
		require.Len(t, out, len(in))

		got := ids(out)
		orders[strings.Join(got, ",")] = struct{}{}

		sort.Strings(got)
		assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g", "h"}, got)
	}

	assert.Equal(t, orig, ids(in), "input untouched")
	assert.Greater(t, len(orders), 1, "order differs across shuffles")
}

func TestShuffleWithIsFisherYates(t *testing.T) {
	in := photos("a", "b", "c", "d")

	var bounds []int

	out := gallery.ShuffleWith(in, func(n int) int {
		bounds = append(bounds, n)
		return 0
	})

	assert.Equal(t, []int{4, 3, 2}, bounds)
	assert.Equal(t, []string{"b", "c", "d", "a"}, ids(out))

	assert.Empty(t, gallery.Shuffle(nil))
}

func TestQueryFor(t *testing.T) {
	assert.Empty(t, gallery.QueryFor("ALL"))
	assert.Empty(t, gallery.QueryFor(""))
	assert.Equal(t, "filter=Nature", gallery.QueryFor("Nature"))
	assert.Equal(t, "filter=Construction+Site", gallery.QueryFor("Construction Site"))
}
