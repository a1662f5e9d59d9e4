package content_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lensfolio/lensfolio/internal/content"
)

func fields(ws []content.Warning) map[string]string {
	out := make(map[string]string, len(ws))
	for _, w := range ws {
		out[w.Field] = w.Rule
	}

	return out
}

func TestValidate_DefaultsAreCloseToValid(t *testing.T) {
	assert.Empty(t, content.Validate(content.DefaultHomepage()))
	assert.Empty(t, content.Validate(content.DefaultSiteSettings()))

	// the default about page has no portrait, an upload is required
	assert.Equal(t,
		map[string]string{"story.portraitImage": "required"},
		fields(content.Validate(content.DefaultAboutPage())),
	)
}

func TestValidate_Homepage(t *testing.T) {
	h := content.DefaultHomepage()
	h.Hero.Description = strings.Repeat("a", 201)
	h.Categories = h.Categories[:2]
	h.FeaturedWork.FeaturedImages = make([]content.Image, 7)

	got := fields(content.Validate(h))

	assert.Equal(t, "max", got["hero.description"])
	assert.Equal(t, "len", got["categories"])
	assert.Equal(t, "max", got["featuredWork.featuredImages"])
}

func TestValidate_AboutPage(t *testing.T) {
	a := content.DefaultAboutPage()
	a.Story.PortraitImage = &content.Image{Asset: content.ImageAsset{Ref: "https://example.com/me.jpg"}}
	a.Story.YearsExperience = 51
	a.Story.Skills = []string{"one"}
	a.Approach.Principles[0].Icon = "abc"

	ws := content.Validate(a)
	got := fields(ws)

	assert.Equal(t, "imageref", got["story.portraitImage.asset._ref"])
	assert.Equal(t, "max", got["story.yearsExperience"])
	assert.Equal(t, "min", got["story.skills"])
	assert.Equal(t, "max", got["approach.principles[0].icon"])

	for _, w := range ws {
		if w.Field == "story.skills" {
			assert.Equal(t, "story.skills should have at least 3 items", w.Message)
		}
	}
}

func TestValidate_SiteSettings(t *testing.T) {
	s := content.DefaultSiteSettings()
	s.ContactInfo.Email = "nope"
	s.SocialMedia.Instagram = "instagram"
	s.SiteInfo.SiteTitle = ""

	got := fields(content.Validate(s))

	assert.Equal(t, "email", got["contactInfo.email"])
	assert.Equal(t, "url", got["socialMedia.instagram"])
	assert.Equal(t, "required", got["siteInfo.siteTitle"])
}

func TestValidate_Nil(t *testing.T) {
	assert.Nil(t, content.Validate(nil))
	assert.Nil(t, content.Validate((*content.Homepage)(nil)))
}

func TestProse(t *testing.T) {
	assert.Equal(t, "<p>Hello <em>world</em></p>\n", string(content.Prose("Hello *world*")))
	assert.NotContains(t, string(content.Prose("<script>alert(1)</script>")), "<script>")
}
