package hub

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpinRunsFunctionAndPassesErrorThrough(t *testing.T) {
	fnErr := errors.New("charts unreachable")
	ran := false

	err := Spin(context.Background(), io.Discard, "Fetching catalog...", func(context.Context) error {
		ran = true
		return fnErr
	})
	require.ErrorIs(t, err, fnErr)
	require.True(t, ran)
}

func TestSpinReturnsNilOnSuccess(t *testing.T) {
	err := Spin(context.Background(), io.Discard, "Fetching catalog...", func(context.Context) error {
		return nil
	})
	require.NoError(t, err)
}
