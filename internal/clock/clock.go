// Package clock formats the wall clock shown in the board header.
package clock

import (
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/text/language"
)

const (
	layout24h = "15:04"
	layout12h = "3:04 PM"
)

//nolint:gochecknoglobals
var (
	supported = []language.Tag{
		language.French, // first entry is the fallback
		language.AmericanEnglish,
		language.BritishEnglish,
		language.German,
		language.Spanish,
		language.Italian,
	}
	layouts = map[language.Tag]string{
		language.French:          layout24h,
		language.AmericanEnglish: layout12h,
		language.BritishEnglish:  layout24h,
		language.German:          layout24h,
		language.Spanish:         layout24h,
		language.Italian:         layout24h,
	}
	matcher = language.NewMatcher(supported)
)

// Clock renders the current hour and minute for a locale.
type Clock struct {
	source   clockwork.Clock
	layout   string
	location *time.Location
}

// New returns a Clock for the given BCP 47 locale. Unknown locales fall back to French formatting.
func New(source clockwork.Clock, locale string) Clock {
	return Clock{source: source, layout: Layout(locale), location: time.Local}
}

// WithLocation returns a copy rendering times in loc.
func (c Clock) WithLocation(loc *time.Location) Clock {
	c.location = loc

	return c
}

// WithLocale returns a copy formatting times for locale.
func (c Clock) WithLocale(locale string) Clock {
	c.layout = Layout(locale)

	return c
}

func (c Clock) Now() string {
	return c.Format(c.source.Now())
}

func (c Clock) Format(t time.Time) string {
	return t.In(c.location).Format(c.layout)
}

// Layout returns the time layout used for locale.
func Layout(locale string) string {
	_, index, _ := matcher.Match(language.Make(locale))

	return layouts[supported[index]]
}
