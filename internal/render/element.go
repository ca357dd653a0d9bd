package render

// Element is a node of the presentation tree. The tree has no lifecycle of
// its own: it is derived in full from a document tree on every render and
// never mutated in place.
type Element interface {
	element()
}

// Box is a generic layout container. A Box with Inline set lays its
// children out in reading order; otherwise children stack vertically.
// Dimensions are abstract layout units — the painter decides how they
// collapse onto terminal rows and columns.
type Box struct {
	Inline bool

	// Spacing is the vertical rhythm between stacked children.
	Spacing int
	// Gap separates inline children; zero means children touch.
	Gap int

	PadX, PadY   int
	MarginBottom int

	// BorderLeft draws only a left-hand border of the given width.
	BorderLeft  int
	BorderColor string
	Background  string

	Children []Element
}

// Text is a styled run of characters. Size zero means body text.
type Text struct {
	Content string
	Size    int
	Bold    bool
	Italic  bool
	Strike  bool
	Mono    bool
}

// Link is a clickable element labelled by its children.
type Link struct {
	Destination string
	Children    []Element
}

// Image renders Source at full available width with Alt as fallback text.
type Image struct {
	Source string
	Alt    string
}

// Checkbox is the interactive marker of a task list item.
type Checkbox struct {
	Checked bool
}

// LineBreak forces a new line within inline flow.
type LineBreak struct{}

// Empty renders nothing. Suppressed constructs map here on purpose.
type Empty struct{}

func (Box) element()       {}
func (Text) element()      {}
func (Link) element()      {}
func (Image) element()     {}
func (Checkbox) element()  {}
func (LineBreak) element() {}
func (Empty) element()     {}
