package input

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner_ReadLine(t *testing.T) {
	var out bytes.Buffer
	s := NewScanner(strings.NewReader("first\r\nsecond\n"), &out)

	line, err := s.ReadLine("Name: ")
	require.NoError(t, err)
	assert.Equal(t, "first", line)

	line, err = s.ReadLine("")
	require.NoError(t, err)
	assert.Equal(t, "second", line)

	_, err = s.ReadLine("More: ")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, "Name: More: ", out.String())
}

func TestScript(t *testing.T) {
	s := Lines("a", "")

	assert.Equal(t, 2, s.Remaining())
	assert.Equal(t, "a", Ask(s, "one"))
	assert.Equal(t, "", Ask(s, "two"))
	assert.Equal(t, "", Ask(s, "three"))
	assert.Equal(t, 0, s.Remaining())
	assert.Equal(t, []string{"one", "two", "three"}, s.Prompts)
}

func TestScanner_LongLine(t *testing.T) {
	long := strings.Repeat("x", 70000)
	s := NewScanner(strings.NewReader(long+"\nnext\n"), io.Discard)

	line, err := s.ReadLine("")
	require.NoError(t, err)
	assert.Len(t, line, 70000)

	line, err = s.ReadLine("")
	require.NoError(t, err)
	assert.Equal(t, "next", line)
}

func TestScanner_TruncatesBeyondLimit(t *testing.T) {
	s := NewScanner(strings.NewReader(strings.Repeat("y", 10000)+"\nafter\n"), io.Discard)
	s.maxLine = 16

	line, err := s.ReadLine("")
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("y", 16), line)

	line, err = s.ReadLine("")
	require.NoError(t, err)
	assert.Equal(t, "after", line)
}

func TestScanner_LastLineWithoutNewline(t *testing.T) {
	s := NewScanner(strings.NewReader("only"), io.Discard)

	line, err := s.ReadLine("")
	require.NoError(t, err)
	assert.Equal(t, "only", line)

	_, err = s.ReadLine("")
	assert.ErrorIs(t, err, io.EOF)
}
