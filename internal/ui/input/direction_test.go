package input_test

import (
	"testing"

	"github.com/leighmacdonald/mrs-board/internal/ui/input"
	"github.com/stretchr/testify/require"
)

func TestStep(t *testing.T) {
	require.Equal(t, 1, input.Next.Step(0, 4))
	require.Equal(t, 0, input.Next.Step(3, 4))
	require.Equal(t, 3, input.Previous.Step(0, 4))
	require.Equal(t, 2, input.Previous.Step(3, 4))
	require.Equal(t, 0, input.Next.Step(5, 0))
}
