package model

// Page is a complete standalone screen occupying everything except the footer.
type Page int

const (
	PageBoard Page = iota
	PageAdmin
	PageConfig
	PageHelp
)

// AdminOpen reports whether the admin panel, which includes its config editor, is on screen.
func (p Page) AdminOpen() bool {
	return p == PageAdmin || p == PageConfig
}

// ViewState tracks the common ui states that are shared between many models.
type ViewState struct {
	Page Page
	// Content is the height available between the header and the footer.
	Content int
	Height  int
	Width   int
}
