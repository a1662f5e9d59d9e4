// Package gallery fetches photo collections from the photo API and holds the
// pure state logic of the gallery page: filter derivation, photo selection,
// shuffling and lightbox navigation.
package gallery

// PhotoURLs of the rendered sizes.
type PhotoURLs struct {
	Small   string `json:"small"`
	Regular string `json:"regular"`
	Full    string `json:"full"`
}

// PhotoUser is the photographer credited for a photo.
type PhotoUser struct {
	Name string `json:"name"`
}

// Photo as returned by the photo API.
type Photo struct {
	ID             string    `json:"id"`
	Description    string    `json:"description"`
	AltDescription string    `json:"alt_description"`
	URLs           PhotoURLs `json:"urls"`
	User           PhotoUser `json:"user"`
}

// Alt returns the best alternative text of p.
func (p Photo) Alt() string {
	switch {
	case p.AltDescription != "":
		return p.AltDescription
	case p.Description != "":
		return p.Description
	default:
		return "Photo"
	}
}

// Collection is a titled group of photos. The title doubles as filter label.
type Collection struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Photos []Photo `json:"photos"`
}
