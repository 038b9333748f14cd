package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole_ReadLine(t *testing.T) {
	out := &bytes.Buffer{}
	c := NewConsole(strings.NewReader("first\nlast"), out)

	line, err := c.ReadLine("Name?")
	require.NoError(t, err)
	assert.Equal(t, "first\n", line)

	line, err = c.ReadLine("Again?")
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = c.ReadLine("Anything else?")
	assert.ErrorIs(t, err, ErrReadInput)

	assert.Equal(t, "Name?\nAgain?\nAnything else?\n", out.String())
}

func TestConsole_Select(t *testing.T) {
	t.Run("no options", func(t *testing.T) {
		c := NewConsole(strings.NewReader("1\n"), &bytes.Buffer{})
		_, err := c.Select("Pick:", nil)
		assert.ErrorIs(t, err, ErrNoOptions)
	})

	t.Run("re-prompts until a valid choice", func(t *testing.T) {
		out := &bytes.Buffer{}
		c := NewConsole(strings.NewReader("0\nthree\n4\n 2 \n"), out)

		idx, err := c.Select("Pick:", []string{"a", "b", "c"})
		require.NoError(t, err)
		assert.Equal(t, 1, idx)
		assert.Equal(t, 3, strings.Count(out.String(), "* please choose a number between 1 and 3"))
		assert.Contains(t, out.String(), "Pick:\n  1) a\n  2) b\n  3) c\n")
	})

	t.Run("read failure", func(t *testing.T) {
		c := NewConsole(strings.NewReader(""), &bytes.Buffer{})
		_, err := c.Select("Pick:", []string{"a"})
		assert.ErrorIs(t, err, ErrReadInput)
	})
}

func TestConsole_SelectTranscript(t *testing.T) {
	out := &bytes.Buffer{}
	c := NewConsole(strings.NewReader("5\n2\n"), out)

	idx, err := c.Select("Pick:", []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	want := "Pick:\n  1) a\n  2) b\n" +
		"* please choose a number between 1 and 2\n" +
		"Pick:\n  1) a\n  2) b\n"
	assert.Equal(t, want, out.String())
}
