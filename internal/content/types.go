// Package content holds the singleton documents edited in the admin editor
// and read by the public pages.
package content

// DocumentType names a singleton document. It doubles as the document id.
type DocumentType string

const (
	TypeHomepage     DocumentType = "homepage"
	TypeAboutPage    DocumentType = "aboutPage"
	TypeSiteSettings DocumentType = "siteSettings"
)

// Types lists every document type in editor order.
var Types = []DocumentType{TypeHomepage, TypeAboutPage, TypeSiteSettings} //nolint:gochecknoglobals

// Valid reports whether t is a known document type.
func (t DocumentType) Valid() bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}

	return false
}

// Document is implemented by the three singleton document types.
type Document interface {
	DocumentType() DocumentType
	setIdentity()
}

// Meta are the identity fields every stored document carries.
type Meta struct {
	ID   string `json:"_id,omitempty"`
	Type string `json:"_type,omitempty"`
}

// Image is a reference to an uploaded asset, never a URL.
type Image struct {
	Type  string     `json:"_type,omitempty"`
	Asset ImageAsset `json:"asset"`
	Alt   string     `json:"alt,omitempty"`
}

// ImageAsset points to the asset document.
type ImageAsset struct {
	Ref string `json:"_ref" validate:"imageref"`
}

// Homepage document.
type Homepage struct {
	Meta
	Hero             HomepageHero     `json:"hero"`
	MissionStatement MissionStatement `json:"missionStatement"`
	Categories       []Category       `json:"categories" validate:"len=3,dive"`
	FeaturedWork     FeaturedWork     `json:"featuredWork"`
}

type HomepageHero struct {
	Tagline     string  `json:"tagline" validate:"required"`
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required,max=200"`
	HeroImages  []Image `json:"heroImages,omitempty" validate:"max=6,dive"`
}

type MissionStatement struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required,max=300"`
}

// Category is one of the three homepage teasers linking into the gallery.
type Category struct {
	Label         string `json:"label" validate:"required"`
	Title         string `json:"title" validate:"required"`
	Description   string `json:"description" validate:"required"`
	GalleryFilter string `json:"galleryFilter" validate:"required"`
}

type FeaturedWork struct {
	SectionTitle       string  `json:"sectionTitle" validate:"required"`
	SectionDescription string  `json:"sectionDescription,omitempty"`
	ButtonText         string  `json:"buttonText" validate:"required"`
	FeaturedImages     []Image `json:"featuredImages,omitempty" validate:"max=6,dive"`
}

// AboutPage document.
type AboutPage struct {
	Meta
	Hero         AboutHero    `json:"hero"`
	Story        Story        `json:"story"`
	Approach     Approach     `json:"approach"`
	CallToAction CallToAction `json:"callToAction"`
}

type AboutHero struct {
	Title    string `json:"title" validate:"required"`
	Subtitle string `json:"subtitle" validate:"required"`
}

type Story struct {
	PortraitImage   *Image   `json:"portraitImage,omitempty" validate:"required"`
	YearsExperience int      `json:"yearsExperience" validate:"min=0,max=50"`
	MainTitle       string   `json:"mainTitle" validate:"required"`
	StoryParagraphs []string `json:"storyParagraphs" validate:"min=1,max=5,dive,required"`
	Skills          []string `json:"skills" validate:"min=3,max=6,dive,required"`
}

type Approach struct {
	SectionTitle       string      `json:"sectionTitle" validate:"required"`
	SectionDescription string      `json:"sectionDescription,omitempty"`
	Principles         []Principle `json:"principles" validate:"len=3,dive"`
}

// Principle is one entry of the approach section. Icon is a short emoji.
type Principle struct {
	Icon        string `json:"icon" validate:"required,max=2"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type CallToAction struct {
	Title               string `json:"title" validate:"required"`
	Description         string `json:"description,omitempty"`
	PrimaryButtonText   string `json:"primaryButtonText" validate:"required"`
	SecondaryButtonText string `json:"secondaryButtonText" validate:"required"`
}

// SiteSettings document.
type SiteSettings struct {
	Meta
	SiteInfo    SiteInfo    `json:"siteInfo"`
	ContactInfo ContactInfo `json:"contactInfo"`
	SocialMedia SocialMedia `json:"socialMedia"`
	Footer      Footer      `json:"footer"`
	SEO         SEO         `json:"seo"`
}

type SiteInfo struct {
	SiteTitle       string `json:"siteTitle" validate:"required"`
	SiteDescription string `json:"siteDescription" validate:"required,max=160"`
	SiteLogo        *Image `json:"siteLogo,omitempty"`
	SiteURL         string `json:"siteUrl" validate:"required,url"`
}

type ContactInfo struct {
	Email        string       `json:"email" validate:"required,email"`
	Phone        string       `json:"phone,omitempty"`
	Location     string       `json:"location,omitempty"`
	Availability Availability `json:"availability"`
}

type Availability struct {
	IsAvailable         bool   `json:"isAvailable"`
	AvailabilityMessage string `json:"availabilityMessage,omitempty"`
}

type SocialMedia struct {
	Instagram string `json:"instagram,omitempty" validate:"omitempty,url"`
	Twitter   string `json:"twitter,omitempty" validate:"omitempty,url"`
	Facebook  string `json:"facebook,omitempty" validate:"omitempty,url"`
	LinkedIn  string `json:"linkedin,omitempty" validate:"omitempty,url"`
	YouTube   string `json:"youtube,omitempty" validate:"omitempty,url"`
	Behance   string `json:"behance,omitempty" validate:"omitempty,url"`
}

type Footer struct {
	CopyrightText     string      `json:"copyrightText" validate:"required"`
	FooterDescription string      `json:"footerDescription,omitempty"`
	QuickLinks        []QuickLink `json:"quickLinks,omitempty" validate:"dive"`
}

type QuickLink struct {
	Title        string `json:"title" validate:"required"`
	URL          string `json:"url" validate:"required"`
	OpenInNewTab bool   `json:"openInNewTab"`
}

type SEO struct {
	DefaultImage      *Image   `json:"defaultImage,omitempty"`
	Keywords          []string `json:"keywords,omitempty"`
	GoogleAnalyticsID string   `json:"googleAnalyticsId,omitempty"`
}

func (*Homepage) DocumentType() DocumentType     { return TypeHomepage }
func (*AboutPage) DocumentType() DocumentType    { return TypeAboutPage }
func (*SiteSettings) DocumentType() DocumentType { return TypeSiteSettings }

func (h *Homepage) setIdentity()     { h.Meta = meta(TypeHomepage) }
func (a *AboutPage) setIdentity()    { a.Meta = meta(TypeAboutPage) }
func (s *SiteSettings) setIdentity() { s.Meta = meta(TypeSiteSettings) }

func meta(t DocumentType) Meta {
	return Meta{ID: string(t), Type: string(t)}
}

// New returns an empty document of type t, nil for unknown types.
func New(t DocumentType) Document {
	switch t {
	case TypeHomepage:
		return &Homepage{}
	case TypeAboutPage:
		return &AboutPage{}
	case TypeSiteSettings:
		return &SiteSettings{}
	default:
		return nil
	}
}
