package gallery

// SwipeThreshold is the minimum horizontal distance in pixels of a swipe.
const SwipeThreshold = 50

// Lightbox keys.
const (
	KeyEscape     = "Escape"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// View is the state of the gallery page. Photos is shuffled on every change
// into FilterAll and kept as is otherwise. Lightbox is the index of the open
// photo or nil.
type View struct {
	ActiveFilter string
	Photos       []Photo
	Lightbox     *int

	collections []Collection
	shuffle     func([]Photo) []Photo
}

// NewView creates the state for collections and applies filter. An initial
// FilterAll counts as a change and shuffles.
func NewView(collections []Collection, filter string) *View {
	return NewViewWithShuffle(collections, filter, Shuffle)
}

// NewViewWithShuffle is NewView with a custom shuffle.
func NewViewWithShuffle(collections []Collection, filter string, shuffle func([]Photo) []Photo) *View {
	v := &View{collections: collections, shuffle: shuffle}
	v.SetFilter(filter)

	return v
}

// Filters of the view.
func (v *View) Filters() []string {
	return Filters(v.collections)
}

// SetFilter changes the active filter and closes the lightbox. Selecting the
// active filter again changes nothing.
func (v *View) SetFilter(filter string) {
	filter = Normalize(v.collections, filter)
	if v.Photos != nil && filter == v.ActiveFilter {
		return
	}

	photos := Select(v.collections, filter)
	if filter == FilterAll {
		photos = v.shuffle(photos)
	}

	v.ActiveFilter = filter
	v.Photos = photos
	v.Lightbox = nil
}

// Query returns the query string of the active filter.
func (v *View) Query() string {
	return QueryFor(v.ActiveFilter)
}

// Open shows photo i, clamped to the photo range.
func (v *View) Open(i int) {
	if len(v.Photos) == 0 {
		return
	}

	i = max(0, min(i, len(v.Photos)-1))
	v.Lightbox = &i
}

// Close hides the lightbox.
func (v *View) Close() {
	v.Lightbox = nil
}

// Current returns the photo shown in the lightbox.
func (v *View) Current() (Photo, bool) {
	if v.Lightbox == nil {
		return Photo{}, false
	}

	return v.Photos[*v.Lightbox], true
}

// HasNext reports whether navigating right moves.
func (v *View) HasNext() bool {
	return v.Lightbox != nil && *v.Lightbox < len(v.Photos)-1
}

// HasPrevious reports whether navigating left moves.
func (v *View) HasPrevious() bool {
	return v.Lightbox != nil && *v.Lightbox > 0
}

// Next moves to the following photo. No-op on the last one.
func (v *View) Next() {
	if v.HasNext() {
		i := *v.Lightbox + 1
		v.Lightbox = &i
	}
}

// Previous moves to the preceding photo. No-op on the first one.
func (v *View) Previous() {
	if v.HasPrevious() {
		i := *v.Lightbox - 1
		v.Lightbox = &i
	}
}

// HandleKey applies a keyboard key while the lightbox is open and reports
// whether the key was handled.
func (v *View) HandleKey(key string) bool {
	if v.Lightbox == nil {
		return false
	}

	switch key {
	case KeyEscape:
		v.Close()
	case KeyArrowLeft:
		v.Previous()
	case KeyArrowRight:
		v.Next()
	default:
		return false
	}

	return true
}

// HandleSwipe applies a touch gesture from startX to endX. A swipe to the
// left shows the next photo, a swipe to the right the previous one.
func (v *View) HandleSwipe(startX, endX float64) {
	distance := startX - endX

	switch {
	case distance > SwipeThreshold:
		v.Next()
	case distance < -SwipeThreshold:
		v.Previous()
	}
}
