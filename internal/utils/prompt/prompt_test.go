package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLine_ReturnsTheLineAsTyped(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("  Alice Smith  \n"), &out)

	line, err := p.ReadLine("Enter student name: ")

	require.NoError(t, err)
	assert.Equal(t, "  Alice Smith  ", line, "the line is not trimmed")
	assert.Equal(t, "Enter student name: ", out.String())
}

func TestReadLine_EmptyLineIsValid(t *testing.T) {
	p := New(strings.NewReader("\n"), &bytes.Buffer{})

	line, err := p.ReadLine("name: ")

	require.NoError(t, err)
	assert.Equal(t, "", line)
}

func TestReadLine_ClosedInputReportsErrInputClosed(t *testing.T) {
	p := New(strings.NewReader(""), &bytes.Buffer{})

	_, err := p.ReadLine("name: ")

	require.ErrorIs(t, err, ErrInputClosed)
}

func TestReadInt_ParsesWithSurroundingSpace(t *testing.T) {
	cases := []struct {
		name string
		line string
		want int64
	}{
		{"plain", "7\n", 7},
		{"padded", "  42  \n", 42},
		{"zero", "0\n", 0},
		{"negative", "-3\n", -3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := New(strings.NewReader(tc.line), &bytes.Buffer{})

			n, err := p.ReadInt("age: ")

			require.NoError(t, err)
			assert.Equal(t, tc.want, n)
		})
	}
}

func TestReadInt_NonNumberReportsErrNotANumber(t *testing.T) {
	for _, line := range []string{"abc\n", "12x\n", "1.5\n", "\n"} {
		p := New(strings.NewReader(line), &bytes.Buffer{})

		_, err := p.ReadInt("age: ")

		assert.ErrorIs(t, err, ErrNotANumber, "line %q", line)
	}
}

func TestReadInt_ClosedInputReportsErrInputClosed(t *testing.T) {
	p := New(strings.NewReader(""), &bytes.Buffer{})

	_, err := p.ReadInt("age: ")

	require.ErrorIs(t, err, ErrInputClosed)
}

func TestReadOptionalInt_BlankMeansNoValue(t *testing.T) {
	for _, line := range []string{"\n", "   \n"} {
		p := New(strings.NewReader(line), &bytes.Buffer{})

		n, err := p.ReadOptionalInt("new age: ")

		require.NoError(t, err, "line %q", line)
		assert.Nil(t, n, "line %q", line)
	}
}

func TestReadOptionalInt_ZeroIsAValue(t *testing.T) {
	p := New(strings.NewReader("0\n"), &bytes.Buffer{})

	n, err := p.ReadOptionalInt("new age: ")

	require.NoError(t, err)
	require.NotNil(t, n, "a typed 0 is distinct from a blank line")
	assert.Equal(t, int64(0), *n)
}

func TestReadOptionalInt_NonNumberReportsErrNotANumber(t *testing.T) {
	p := New(strings.NewReader("abc\n"), &bytes.Buffer{})

	_, err := p.ReadOptionalInt("new age: ")

	require.ErrorIs(t, err, ErrNotANumber)
}

func TestPrompter_ReadsLinesInOrder(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("Alice\n20\n"), &out)

	name, err := p.ReadLine("Enter student name: ")
	require.NoError(t, err)
	age, err := p.ReadInt("Enter student age: ")
	require.NoError(t, err)

	assert.Equal(t, "Alice", name)
	assert.Equal(t, int64(20), age)
	assert.Equal(t, "Enter student name: Enter student age: ", out.String())
}

func TestPrintf_WritesToTheOutput(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader(""), &out)

	p.Printf("Student added with ID: %d\n", 7)

	assert.Equal(t, "Student added with ID: 7\n", out.String())
}
