package main_test

import (
	"bytes"
	"context"
	"testing"

	main "github.com/fwojciec/pagelens/cmd/pagelens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoicesCmd_Run(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	deps := &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: &bytes.Buffer{},
	}

	err := (&main.VoicesCmd{}).Run(deps)

	require.NoError(t, err)
	out := stdout.String()
	for _, name := range []string{"default", "concise", "detailed", "teacher", "skeptic"} {
		assert.Contains(t, out, name)
	}
}
