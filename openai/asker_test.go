package openai_test

import (
	"context"
	"testing"

	"github.com/fwojciec/pagelens"
	"github.com/fwojciec/pagelens/openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Asker implements pagelens.Asker at compile time.
var _ pagelens.Asker = (*openai.Asker)(nil)

func TestNewAsker(t *testing.T) {
	t.Parallel()

	t.Run("requires an API key", func(t *testing.T) {
		t.Parallel()

		_, err := openai.NewAsker("")

		require.Error(t, err)
		assert.Equal(t, pagelens.EINVALID, pagelens.ErrorCode(err))
	})
}

func TestAsker_Ask(t *testing.T) {
	t.Parallel()

	t.Run("rejects requests without input", func(t *testing.T) {
		t.Parallel()

		a, err := openai.NewAsker("test-key")
		require.NoError(t, err)

		_, err = a.Ask(context.Background(), pagelens.AskRequest{})

		require.Error(t, err)
		assert.Equal(t, pagelens.EINVALID, pagelens.ErrorCode(err))
	})
}
