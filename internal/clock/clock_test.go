package clock_test

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/leighmacdonald/mrs-board/internal/clock"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	at := time.Date(2025, 1, 6, 9, 5, 42, 0, time.UTC)
	cases := []struct {
		locale string
		want   string
	}{
		{locale: "fr-FR", want: "09:05"},
		{locale: "fr", want: "09:05"},
		{locale: "en-US", want: "9:05 AM"},
		{locale: "en-GB", want: "09:05"},
		{locale: "de-DE", want: "09:05"},
		{locale: "", want: "09:05"},
		{locale: "zz-invalid", want: "09:05"},
	}

	for _, tc := range cases {
		t.Run(tc.locale, func(t *testing.T) {
			clk := clock.New(clockwork.NewFakeClockAt(at), tc.locale).WithLocation(time.UTC)
			require.Equal(t, tc.want, clk.Now())
		})
	}
}

func TestAdvances(t *testing.T) {
	source := clockwork.NewFakeClockAt(time.Date(2025, 1, 6, 23, 59, 30, 0, time.UTC))
	clk := clock.New(source, "fr-FR").WithLocation(time.UTC)

	require.Equal(t, "23:59", clk.Now())
	source.Advance(time.Minute)
	require.Equal(t, "00:00", clk.Now())
}

func TestWithLocale(t *testing.T) {
	at := time.Date(2025, 1, 6, 18, 45, 0, 0, time.UTC)
	clk := clock.New(clockwork.NewFakeClockAt(at), "fr-FR").WithLocation(time.UTC)
	require.Equal(t, "18:45", clk.Now())
	require.Equal(t, "6:45 PM", clk.WithLocale("en-US").Now())
}
