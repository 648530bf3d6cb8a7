// Package idle implements the inactivity timer that drives the screensaver.
package idle

import "time"

// Settings are the fixed parameters of the screensaver.
type Settings struct {
	// Limit is the number of idle seconds that must be exceeded before the screensaver shows.
	Limit int
	// RotateEvery rotates the background whenever the idle counter is a multiple of it.
	RotateEvery int
	// FadeDelay is how long the background stays faded out before the next image is swapped in.
	FadeDelay time.Duration
	// Opacity is applied when an image is swapped in.
	Opacity float64
	Images  []string
}

func DefaultSettings(images []string) Settings {
	return Settings{
		Limit:       10,
		RotateEvery: 5,
		FadeDelay:   500 * time.Millisecond,
		Opacity:     0.6,
		Images:      images,
	}
}

// Effect describes the view changes a transition requires.
type Effect struct {
	Show bool
	Hide bool
	// FadeOut means the background opacity dropped to zero and Swap must be called after Settings.FadeDelay.
	FadeOut bool
}

// Controller owns the idle counter and the background rotation state.
type Controller struct {
	settings   Settings
	idle       int
	visible    bool
	index      int
	opacity    float64
	background string
}

func New(settings Settings) *Controller {
	return &Controller{settings: settings}
}

// Tick advances the idle counter by one second. The screensaver is suppressed while the admin panel is open.
func (c *Controller) Tick(adminOpen bool) Effect {
	var effect Effect

	c.idle++

	if c.idle > c.settings.Limit && !c.visible && !adminOpen {
		c.visible = true
		effect.Show = true
		c.fadeOut()
		effect.FadeOut = true
	}

	if c.visible && c.settings.RotateEvery > 0 && c.idle%c.settings.RotateEvery == 0 {
		c.fadeOut()
		effect.FadeOut = true
	}

	return effect
}

// Interact resets the idle counter and hides the screensaver.
func (c *Controller) Interact() Effect {
	c.idle = 0
	if !c.visible {
		return Effect{}
	}

	c.visible = false

	return Effect{Hide: true}
}

// Swap completes a rotation: the next image in the cycle is shown at full configured opacity.
// It returns the new background.
func (c *Controller) Swap() string {
	if len(c.settings.Images) == 0 {
		c.opacity = c.settings.Opacity

		return ""
	}

	c.index %= len(c.settings.Images)
	c.background = c.settings.Images[c.index]
	c.opacity = c.settings.Opacity
	c.index = (c.index + 1) % len(c.settings.Images)

	return c.background
}

// Configure replaces the settings, keeping the current counter and rotation position.
func (c *Controller) Configure(settings Settings) {
	c.settings = settings
}

func (c *Controller) fadeOut() {
	c.opacity = 0
}

func (c *Controller) Settings() Settings {
	return c.settings
}

func (c *Controller) Idle() int {
	return c.idle
}

func (c *Controller) Visible() bool {
	return c.visible
}

func (c *Controller) Opacity() float64 {
	return c.opacity
}

func (c *Controller) Background() string {
	return c.background
}

// Index is the position of the next image to be swapped in.
func (c *Controller) Index() int {
	return c.index
}
