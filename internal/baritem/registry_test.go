package baritem

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterDefaults(t *testing.T) {
	r := NewRegistry(nil)
	require.NoError(t, RegisterDefaults(r))

	assert.Equal(t, []string{
		ItemAway,
		ItemBufferName,
		ItemBufferPlugin,
		ItemBufferTitle,
		ItemInputPrompt,
		ItemChannel,
		ItemLag,
	}, r.Names())

	err := RegisterDefaults(r)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateProvider))
}

func TestRegisterRejectsInvalid(t *testing.T) {
	r := NewRegistry(nil)

	assert.ErrorIs(t, r.Register("", ComposerFunc(Away)), ErrInvalidProvider)
	assert.ErrorIs(t, r.Register("x", nil), ErrInvalidProvider)
	assert.False(t, r.Has("x"))
}

func TestInvokeUnknownProviderIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	r := NewRegistry(&logger)

	label, ok, err := r.Invoke("nope", Context{})
	require.ErrorIs(t, err, ErrUnknownProvider)
	assert.False(t, ok)
	assert.Empty(t, label)
	assert.True(t, strings.Contains(buf.String(), `"item":"nope"`), "log output: %s", buf.String())
	assert.True(t, strings.Contains(buf.String(), `"level":"error"`), "log output: %s", buf.String())
}

func TestInvokeDispatchesToComposer(t *testing.T) {
	r := NewRegistry(nil)
	calls := 0
	require.NoError(t, r.Register("fake", ComposerFunc(func(ctx Context) (string, bool) {
		calls++
		return "", true
	})))
	require.NoError(t, r.Register("silent", ComposerFunc(func(ctx Context) (string, bool) {
		return "", false
	})))

	label, ok, err := r.Invoke("fake", Context{})
	require.NoError(t, err)
	assert.True(t, ok, "empty label is still output")
	assert.Equal(t, "", label)
	assert.Equal(t, 1, calls)

	_, ok, err = r.Invoke("silent", Context{})
	require.NoError(t, err)
	assert.False(t, ok)
}
