package content

// DefaultHomepage is shown while no homepage document is stored and is the
// content written by the populate command.
func DefaultHomepage() *Homepage {
	return &Homepage{
		Meta: meta(TypeHomepage),
		Hero: HomepageHero{
			Tagline:     "VISUAL STORYTELLER",
			Title:       "NIHAR J REDDY",
			Description: "Capturing authentic moments and creating compelling narratives through the lens",
		},
		MissionStatement: MissionStatement{
			Title: "Every Frame Tells a Story",
			Description: "Through my lens, I capture the extraordinary in the ordinary, creating visual " +
				"narratives that resonate with emotion and authenticity.",
		},
		Categories: []Category{
			{
				Label: "NATURE",
				Title: "Landscapes",
				Description: "Capturing the raw beauty and serene moments found in natural environments, " +
					"from mountains to coastlines.",
				GalleryFilter: "Nature and the Landscapes",
			},
			{
				Label: "CONSTRUCTION SITE",
				Title: "People",
				Description: "A collection of portraits and candid moments that tell the stories of " +
					"individuals from diverse backgrounds.",
				GalleryFilter: "Construction Site",
			},
			{
				Label:         "HEARTS",
				Title:         "Melting hearts",
				Description:   "A series focused on capturing intimate and heartfelt connections between people.",
				GalleryFilter: "Melting Hearts",
			},
		},
		FeaturedWork: FeaturedWork{
			SectionTitle:       "Latest Captures",
			SectionDescription: "A curated selection of my most recent work, showcasing diverse styles and subjects.",
			ButtonText:         "View All Work",
		},
	}
}

// DefaultAboutPage is the fallback about page.
func DefaultAboutPage() *AboutPage {
	return &AboutPage{
		Meta: meta(TypeAboutPage),
		Hero: AboutHero{
			Title:    "Nihar J Reddy",
			Subtitle: "Visual storyteller, photographer, and creative director",
		},
		Story: Story{
			YearsExperience: 5, //nolint:mnd
			MainTitle:       "Creating Visual Narratives",
			StoryParagraphs: []string{
				"I'm a professional photographer with a passion for capturing the extraordinary in the ordinary. " +
					"My work spans across nature, portraits, and event photography, with each image telling a unique story.",
				"Skilled in capturing natural light, authentic emotions, and candid moments, I create beautiful, " +
					"meaningful photographs that preserve the essence of special occasions and everyday beauty.",
				"When I'm not behind the camera, I'm exploring new techniques, studying the work of masters, " +
					"and constantly pushing the boundaries of visual storytelling.",
			},
			Skills: []string{"Photography", "Visual Storytelling", "Event Coverage", "Portrait Sessions"},
		},
		Approach: Approach{
			SectionTitle:       "My Approach",
			SectionDescription: "Three core principles guide every shot I take and every story I tell through my lens.",
			Principles: []Principle{
				{
					Icon:  "🎨",
					Title: "Craft",
					Description: "Meticulous attention to light, color, and composition creates images that " +
						"stand the test of time.",
				},
				{
					Icon:  "📐",
					Title: "Composition",
					Description: "Strong geometric principles and visual balance create calm, harmonious imagery " +
						"that draws the viewer in.",
				},
				{
					Icon:  "📖",
					Title: "Storytelling",
					Description: "Every frame captures human moments and emotions, anchored in place and purpose " +
						"to tell meaningful stories.",
				},
			},
		},
		CallToAction: CallToAction{
			Title:               "Let's Create Something Beautiful",
			Description:         "Ready to capture your special moments? I'd love to discuss your vision and bring it to life.",
			PrimaryButtonText:   "View My Work",
			SecondaryButtonText: "Get In Touch",
		},
	}
}

// DefaultSiteSettings is the fallback site configuration.
func DefaultSiteSettings() *SiteSettings {
	return &SiteSettings{
		Meta: meta(TypeSiteSettings),
		SiteInfo: SiteInfo{
			SiteTitle:       "Nihar J Reddy Photography",
			SiteDescription: "Professional photography services specializing in portraits, events, and nature photography",
			SiteURL:         "https://niharjreddy.com",
		},
		ContactInfo: ContactInfo{
			Email:    "nihar@niharjreddy.com",
			Location: "San Francisco, CA",
			Availability: Availability{
				IsAvailable:         true,
				AvailabilityMessage: "Currently accepting new projects and bookings",
			},
		},
		SocialMedia: SocialMedia{
			Instagram: "https://instagram.com/niharjreddy",
			Twitter:   "https://twitter.com/niharjreddy",
			LinkedIn:  "https://linkedin.com/in/niharjreddy",
			Facebook:  "https://facebook.com/niharjreddy",
			Behance:   "https://behance.net/niharjreddy",
			YouTube:   "https://youtube.com/@niharjreddy",
		},
		Footer: Footer{
			CopyrightText: "© Nihar J Reddy Photography. All rights reserved.",
		},
		SEO: SEO{
			Keywords: []string{
				"photography",
				"photographer",
				"portraits",
				"wedding photography",
				"event photography",
				"landscape photography",
				"San Francisco photographer",
			},
		},
	}
}

// Default returns the fallback document of type t.
func Default(t DocumentType) Document {
	switch t {
	case TypeHomepage:
		return DefaultHomepage()
	case TypeAboutPage:
		return DefaultAboutPage()
	case TypeSiteSettings:
		return DefaultSiteSettings()
	default:
		return nil
	}
}

// HomepageOrDefault merges h over the default homepage: every empty field
// falls back to its default value. The result is for rendering only.
func HomepageOrDefault(h *Homepage) *Homepage {
	d := DefaultHomepage()
	if h == nil {
		return d
	}

	out := *h
	out.Hero.Tagline = or(h.Hero.Tagline, d.Hero.Tagline)
	out.Hero.Title = or(h.Hero.Title, d.Hero.Title)
	out.Hero.Description = or(h.Hero.Description, d.Hero.Description)
	out.MissionStatement.Title = or(h.MissionStatement.Title, d.MissionStatement.Title)
	out.MissionStatement.Description = or(h.MissionStatement.Description, d.MissionStatement.Description)
	out.Categories = orSlice(h.Categories, d.Categories)
	out.FeaturedWork.SectionTitle = or(h.FeaturedWork.SectionTitle, d.FeaturedWork.SectionTitle)
	out.FeaturedWork.SectionDescription = or(h.FeaturedWork.SectionDescription, d.FeaturedWork.SectionDescription)
	out.FeaturedWork.ButtonText = or(h.FeaturedWork.ButtonText, d.FeaturedWork.ButtonText)

	return &out
}

// AboutPageOrDefault merges a over the default about page.
func AboutPageOrDefault(a *AboutPage) *AboutPage {
	d := DefaultAboutPage()
	if a == nil {
		return d
	}

	out := *a
	out.Hero.Title = or(a.Hero.Title, d.Hero.Title)
	out.Hero.Subtitle = or(a.Hero.Subtitle, d.Hero.Subtitle)
	out.Story.MainTitle = or(a.Story.MainTitle, d.Story.MainTitle)
	out.Story.StoryParagraphs = orSlice(a.Story.StoryParagraphs, d.Story.StoryParagraphs)
	out.Story.Skills = orSlice(a.Story.Skills, d.Story.Skills)
	out.Approach.SectionTitle = or(a.Approach.SectionTitle, d.Approach.SectionTitle)
	out.Approach.SectionDescription = or(a.Approach.SectionDescription, d.Approach.SectionDescription)
	out.Approach.Principles = orSlice(a.Approach.Principles, d.Approach.Principles)
	out.CallToAction.Title = or(a.CallToAction.Title, d.CallToAction.Title)
	out.CallToAction.Description = or(a.CallToAction.Description, d.CallToAction.Description)
	out.CallToAction.PrimaryButtonText = or(a.CallToAction.PrimaryButtonText, d.CallToAction.PrimaryButtonText)
	out.CallToAction.SecondaryButtonText = or(a.CallToAction.SecondaryButtonText, d.CallToAction.SecondaryButtonText)

	return &out
}

// SiteSettingsOrDefault merges s over the default site settings. Social links
// and optional contact fields are not defaulted, an empty value hides them.
func SiteSettingsOrDefault(s *SiteSettings) *SiteSettings {
	d := DefaultSiteSettings()
	if s == nil {
		return d
	}

	out := *s
	out.SiteInfo.SiteTitle = or(s.SiteInfo.SiteTitle, d.SiteInfo.SiteTitle)
	out.SiteInfo.SiteDescription = or(s.SiteInfo.SiteDescription, d.SiteInfo.SiteDescription)
	out.SiteInfo.SiteURL = or(s.SiteInfo.SiteURL, d.SiteInfo.SiteURL)
	out.ContactInfo.Email = or(s.ContactInfo.Email, d.ContactInfo.Email)
	out.Footer.CopyrightText = or(s.Footer.CopyrightText, d.Footer.CopyrightText)
	out.SEO.Keywords = orSlice(s.SEO.Keywords, d.SEO.Keywords)

	return &out
}

func or(v, fallback string) string {
	if v == "" {
		return fallback
	}

	return v
}

func orSlice[T any](v, fallback []T) []T {
	if len(v) == 0 {
		return fallback
	}

	return v
}
