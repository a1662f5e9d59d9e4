package gallery

import (
	"math/rand/v2"
	"net/url"
)

// FilterAll selects the photos of every collection.
const FilterAll = "ALL"

// QueryParam carries the active filter in the gallery URL.
const QueryParam = "filter"

// Filters returns FilterAll followed by the distinct collection titles in
// order of first appearance.
func Filters(collections []Collection) []string {
	filters := []string{FilterAll}
	seen := map[string]struct{}{FilterAll: {}}

	for _, c := range collections {
		if c.Title == "" {
			continue
		}

		if _, ok := seen[c.Title]; ok {
			continue
		}

		seen[c.Title] = struct{}{}
		filters = append(filters, c.Title)
	}

	return filters
}

// Normalize maps an empty or unknown filter to FilterAll.
func Normalize(collections []Collection, filter string) string {
	if filter == "" || filter == FilterAll {
		return FilterAll
	}

	for _, c := range collections {
		if c.Title == filter {
			return filter
		}
	}

	return FilterAll
}

// Select returns a new slice with the photos matching filter. FilterAll
// concatenates every collection, a title yields the photos of the first
// collection with that title. Unknown filters behave like FilterAll.
func Select(collections []Collection, filter string) []Photo {
	if Normalize(collections, filter) == FilterAll {
		n := 0
		for _, c := range collections {
			n += len(c.Photos)
		}

		photos := make([]Photo, 0, n)
		for _, c := range collections {
			photos = append(photos, c.Photos...)
		}

		return photos
	}

	for _, c := range collections {
		if c.Title == filter {
			return append([]Photo{}, c.Photos...)
		}
	}

	return []Photo{}
}

// Shuffle returns a uniformly permuted copy of photos.
func Shuffle(photos []Photo) []Photo {
	return ShuffleWith(photos, rand.IntN)
}

// ShuffleWith permutes a copy of photos with Fisher-Yates, drawing from
// intn(n) which must return a value in [0, n).
func ShuffleWith(photos []Photo, intn func(n int) int) []Photo {
	out := append([]Photo{}, photos...)

	for i := len(out) - 1; i > 0; i-- {
		j := intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// QueryFor returns the query string that restores filter, empty for FilterAll.
func QueryFor(filter string) string {
	if filter == "" || filter == FilterAll {
		return ""
	}

	return url.Values{QueryParam: {filter}}.Encode()
}
