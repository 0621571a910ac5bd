package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/pagelens"
	"github.com/fwojciec/pagelens/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Asker implements pagelens.Asker at compile time.
var _ pagelens.Asker = (*gemini.Asker)(nil)

func TestAsker_Ask(t *testing.T) {
	t.Parallel()

	t.Run("rejects requests without input", func(t *testing.T) {
		t.Parallel()

		a := gemini.NewAsker(nil)

		_, err := a.Ask(context.Background(), pagelens.AskRequest{})

		require.Error(t, err)
		assert.Equal(t, pagelens.EINVALID, pagelens.ErrorCode(err))
	})
}
