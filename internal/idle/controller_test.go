package idle_test

import (
	"testing"

	"github.com/leighmacdonald/mrs-board/internal/idle"
	"github.com/stretchr/testify/require"
)

var images = []string{"a.jpg", "b.jpg", "c.jpg"}

func tickN(ctrl *idle.Controller, count int, adminOpen bool) []idle.Effect {
	effects := make([]idle.Effect, count)
	for idx := range count {
		effects[idx] = ctrl.Tick(adminOpen)
	}

	return effects
}

func TestThreshold(t *testing.T) {
	ctrl := idle.New(idle.DefaultSettings(images))

	tickN(ctrl, 10, false)
	require.Equal(t, 10, ctrl.Idle())
	require.False(t, ctrl.Visible())

	effect := ctrl.Tick(false)
	require.Equal(t, 11, ctrl.Idle())
	require.True(t, ctrl.Visible())
	require.True(t, effect.Show)
	// Entering idle always starts a rotation so the overlay is never blank.
	require.True(t, effect.FadeOut)
	require.Zero(t, ctrl.Opacity())
}

func TestAdminSuppresses(t *testing.T) {
	ctrl := idle.New(idle.DefaultSettings(images))

	for _, effect := range tickN(ctrl, 100, true) {
		require.False(t, effect.Show)
		require.False(t, effect.FadeOut)
	}
	require.Equal(t, 100, ctrl.Idle())
	require.False(t, ctrl.Visible())

	// Closing the panel lets the next tick show it immediately.
	effect := ctrl.Tick(false)
	require.True(t, effect.Show)
	require.True(t, ctrl.Visible())
}

func TestInteractReset(t *testing.T) {
	for _, ticks := range []int{0, 3, 10, 11, 57} {
		ctrl := idle.New(idle.DefaultSettings(images))
		tickN(ctrl, ticks, false)

		wasVisible := ctrl.Visible()
		effect := ctrl.Interact()
		require.Zero(t, ctrl.Idle())
		require.False(t, ctrl.Visible())
		require.Equal(t, wasVisible, effect.Hide)
	}
}

func TestRotationCadence(t *testing.T) {
	ctrl := idle.New(idle.DefaultSettings(images))
	tickN(ctrl, 10, false)

	var fades []int
	for second := 11; second <= 30; second++ {
		if ctrl.Tick(false).FadeOut {
			fades = append(fades, second)
		}
	}

	require.Equal(t, []int{11, 15, 20, 25, 30}, fades)
}

func TestSwapCycles(t *testing.T) {
	ctrl := idle.New(idle.DefaultSettings(images))

	require.Equal(t, "a.jpg", ctrl.Swap())
	require.InDelta(t, 0.6, ctrl.Opacity(), 0.0001)
	require.Equal(t, 1, ctrl.Index())
	require.Equal(t, "b.jpg", ctrl.Swap())
	require.Equal(t, "c.jpg", ctrl.Swap())
	require.Equal(t, "a.jpg", ctrl.Swap())
	require.Equal(t, "a.jpg", ctrl.Background())
}

func TestSwapNoImages(t *testing.T) {
	ctrl := idle.New(idle.DefaultSettings(nil))

	require.Empty(t, ctrl.Swap())
	require.Zero(t, ctrl.Index())
}

func TestConfigureShrinkingImages(t *testing.T) {
	ctrl := idle.New(idle.DefaultSettings(images))
	ctrl.Swap()
	ctrl.Swap()

	ctrl.Configure(idle.DefaultSettings([]string{"x.jpg"}))
	require.Equal(t, "x.jpg", ctrl.Swap())
}

func TestRotateDisabled(t *testing.T) {
	settings := idle.DefaultSettings(images)
	settings.RotateEvery = 0
	ctrl := idle.New(settings)

	tickN(ctrl, 11, false)
	require.True(t, ctrl.Visible())
	for _, effect := range tickN(ctrl, 20, false) {
		require.False(t, effect.FadeOut)
	}
}
