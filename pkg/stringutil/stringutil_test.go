package stringutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCase(t *testing.T) {
	require.Equal(t, "HELLO, WORLD 42", ToUpper("Hello, world 42"))
	require.Equal(t, "hello, world 42", ToLower("Hello, WORLD 42"))
	require.Equal(t, "", ToUpper(""))
}

func TestCase_NonASCIIUntouched(t *testing.T) {
	require.Equal(t, "ÄBC", ToUpper("Äbc"))
	require.Equal(t, "äbc", ToLower("äBC"))
	require.Equal(t, "\xff\x00A", ToUpper("\xff\x00a"))
}

func TestCase_RoundTripAlphabetic(t *testing.T) {
	for _, s := range []string{"abc", "ABC", "MixedCase", "z", "Q"} {
		require.Equal(t, ToUpper(s), ToUpper(ToLower(s)), s)
	}
}

func TestTrim(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "  a b  ", want: "a b"},
		{in: "   ", want: ""},
		{in: "", want: ""},
		{in: "\t\r\nx\n", want: "x"},
		{in: "no-blank", want: "no-blank"},
		{in: "\va\v", want: "\va\v"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, Trim(tt.in), "input %q", tt.in)
	}
}

func TestStartsEndsWith(t *testing.T) {
	for _, s := range []string{"", "a", "abc"} {
		require.True(t, StartsWith(s, ""), s)
		require.True(t, EndsWith(s, ""), s)
	}

	require.True(t, StartsWith("abc", "ab"))
	require.True(t, StartsWith("abc", "abc"))
	require.False(t, StartsWith("ab", "abc"))
	require.False(t, StartsWith("abc", "b"))

	require.True(t, EndsWith("abc", "bc"))
	require.True(t, EndsWith("abc", "abc"))
	require.False(t, EndsWith("bc", "abc"))
	require.False(t, EndsWith("abc", "ab"))
}
