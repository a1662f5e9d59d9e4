package gallery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lensfolio/lensfolio/internal/gallery"
)

// countingShuffle reverses and counts calls, so shuffles are observable.
type countingShuffle struct {
	calls int
}

func (c *countingShuffle) shuffle(ps []gallery.Photo) []gallery.Photo {
	c.calls++

	out := make([]gallery.Photo, len(ps))
	for i, p := range ps {
		out[len(ps)-1-i] = p
	}

	return out
}

func TestViewShufflesOnlyOnTransitionToAll(t *testing.T) {
	sh := &countingShuffle{}
	v := gallery.NewViewWithShuffle(testCollections(), "", sh.shuffle)

	assert.Equal(t, "ALL", v.ActiveFilter)
	assert.Equal(t, 1, sh.calls, "initial load onto ALL shuffles")
	assert.Equal(t, []string{"u1", "x1", "b1", "n2", "n1"}, ids(v.Photos))
	assert.Empty(t, v.Query())

	v.SetFilter("ALL")
	assert.Equal(t, 1, sh.calls, "re-selecting ALL keeps the order")

	v.SetFilter("Nature")
	assert.Equal(t, 1, sh.calls)
	assert.Equal(t, []string{"n1", "n2"}, ids(v.Photos), "named filters keep source order")
	assert.Equal(t, "filter=Nature", v.Query())

	v.SetFilter("ALL")
	assert.Equal(t, 2, sh.calls)
}

func TestViewRestoresFilterFromURL(t *testing.T) {
	sh := &countingShuffle{}
	v := gallery.NewViewWithShuffle(testCollections(), "Construction", sh.shuffle)

	assert.Equal(t, "Construction", v.ActiveFilter)
	assert.Zero(t, sh.calls)
	assert.Equal(t, []string{"b1"}, ids(v.Photos))

	v = gallery.NewViewWithShuffle(testCollections(), "Unknown", sh.shuffle)
	assert.Equal(t, "ALL", v.ActiveFilter)
	assert.Equal(t, []string{"ALL", "Nature", "Construction", "Weddings"}, v.Filters())
}

func TestViewFilterChangeClosesLightbox(t *testing.T) {
	v := gallery.NewView(testCollections(), "ALL")
	v.Open(2)
	require.NotNil(t, v.Lightbox)

	v.SetFilter("Nature")
	assert.Nil(t, v.Lightbox)
}

func TestLightboxNavigationIsClamped(t *testing.T) {
	v := gallery.NewView(testCollections(), "Nature")

	v.Open(10)
	require.NotNil(t, v.Lightbox)
	assert.Equal(t, 1, *v.Lightbox, "open clamps to the last photo")

	assert.True(t, v.HandleKey("ArrowRight"))
	assert.Equal(t, 1, *v.Lightbox, "no wraparound at the end")

	assert.True(t, v.HandleKey("ArrowLeft"))
	assert.Equal(t, 0, *v.Lightbox)

	assert.True(t, v.HandleKey("ArrowLeft"))
	assert.Equal(t, 0, *v.Lightbox, "no wraparound at the start")

	p, ok := v.Current()
	assert.True(t, ok)
	assert.Equal(t, "n1", p.ID)

	assert.False(t, v.HandleKey("Enter"))

	assert.True(t, v.HandleKey("Escape"))
	assert.Nil(t, v.Lightbox)

	assert.False(t, v.HandleKey("ArrowRight"), "keys are ignored while closed")

	_, ok = v.Current()
	assert.False(t, ok)

	v.Open(-3)
	assert.Equal(t, 0, *v.Lightbox)
}

func TestLightboxSwipe(t *testing.T) {
	v := gallery.NewView(testCollections(), "Nature")
	v.Open(0)

	v.HandleSwipe(200, 170)
	assert.Equal(t, 0, *v.Lightbox, "below threshold")

	v.HandleSwipe(200, 100)
	assert.Equal(t, 1, *v.Lightbox, "left swipe shows next")

	v.HandleSwipe(200, 50)
	assert.Equal(t, 1, *v.Lightbox, "clamped at the end")

	v.HandleSwipe(100, 200)
	assert.Equal(t, 0, *v.Lightbox, "right swipe shows previous")
}

func TestLightboxWithoutPhotos(t *testing.T) {
	v := gallery.NewView(nil, "ALL")
	v.Open(0)
	assert.Nil(t, v.Lightbox)
	assert.False(t, v.HasNext())
	assert.False(t, v.HasPrevious())
}
