package dmitype

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuild_Keywords checks that every keyword selects exactly its group
func TestBuild_Keywords(t *testing.T) {
	tests := []struct {
		keyword  string
		expected []uint8
	}{
		{"bios", []uint8{0, 13}},
		{"system", []uint8{1, 12, 15, 23, 32}},
		{"baseboard", []uint8{2, 10}},
		{"chassis", []uint8{3}},
		{"processor", []uint8{4}},
		{"memory", []uint8{5, 6, 16, 17}},
		{"cache", []uint8{7}},
		{"connector", []uint8{8}},
		{"slot", []uint8{9}},
	}

	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			f, err := Build(Selection{}, tt.keyword)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f.Types())
		})
	}
}

// TestBuild_KeywordCaseInsensitive tests mixed case keywords
func TestBuild_KeywordCaseInsensitive(t *testing.T) {
	for _, kw := range []string{"MEMORY", "Memory", "mEmOrY"} {
		t.Run(kw, func(t *testing.T) {
			f, err := Build(Selection{}, kw)
			require.NoError(t, err)
			assert.Equal(t, []uint8{5, 6, 16, 17}, f.Types())
		})
	}
}

// TestBuild_EverySingleType tests all 256 types in each base
func TestBuild_EverySingleType(t *testing.T) {
	for v := 0; v < NumTypes; v++ {
		forms := []string{
			fmt.Sprintf("%d", v),
			fmt.Sprintf("0x%x", v),
			fmt.Sprintf("0X%X", v),
			fmt.Sprintf("0%o", v),
		}
		for _, form := range forms {
			f, err := Build(Selection{}, form)
			require.NoError(t, err, form)
			assert.Equal(t, []uint8{uint8(v)}, f.Types(), form)
		}
	}
}

// TestBuild_NumericLists tests separator handling
func TestBuild_NumericLists(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected []uint8
	}{
		{"Mixed bases", "0,0x10, 32", []uint8{0, 16, 32}},
		{"Spaces only", "1 2 3", []uint8{1, 2, 3}},
		{"Separator runs", "4,, ,5", []uint8{4, 5}},
		{"Trailing separators", "7, ", []uint8{7}},
		{"Leading whitespace", " 8", []uint8{8}},
		{"Duplicates", "9,9,011", []uint8{9}},
		{"Octal stops at 9", "09", []uint8{0, 9}},
		{"Plus sign", "+12", []uint8{12}},
		{"Negative zero", "-0", []uint8{0}},
		{"Upper bound", "255", []uint8{255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Build(Selection{}, tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f.Types())
		})
	}
}

// TestBuild_Invalid tests malformed and out of range arguments
func TestBuild_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    InvalidTypeError
		message string
	}{
		{"Unknown keyword", "bogus", InvalidTypeError{Token: "bogus"}, "invalid type: bogus"},
		{"Out of range", "256", InvalidTypeError{Value: 256, Numeric: true}, "invalid type: 256"},
		{"Hex out of range", "0x100", InvalidTypeError{Value: 256, Numeric: true}, "invalid type: 256"},
		{"Out of range later", "1,2,300", InvalidTypeError{Value: 300, Numeric: true}, "invalid type: 300"},
		{"Trailing garbage", "5abc", InvalidTypeError{Token: "abc"}, "invalid type: abc"},
		{"Leading comma", ",5", InvalidTypeError{Token: ",5"}, "invalid type: ,5"},
		{"Bare hex prefix", "0x", InvalidTypeError{Token: "x"}, "invalid type: x"},
		{"Only spaces", "  ", InvalidTypeError{Token: "  "}, "invalid type:   "},
		{"Negative", "-1", InvalidTypeError{Value: 1<<64 - 1, Numeric: true}, "invalid type: 18446744073709551615"},
		{"Overflow", "99999999999999999999999", InvalidTypeError{Value: 1<<64 - 1, Numeric: true}, "invalid type: 18446744073709551615"},
		{"Keyword prefix", "mem", InvalidTypeError{Token: "mem"}, "invalid type: mem"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Build(Selection{}, tt.token)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidType))
			assert.Equal(t, tt.message, err.Error())
			assert.Equal(t, 0, f.Len())

			var ite *InvalidTypeError
			require.True(t, errors.As(err, &ite))
			assert.Equal(t, tt.want, *ite)
		})
	}
}

// TestBuild_Accumulates tests that successive builds union
func TestBuild_Accumulates(t *testing.T) {
	f, err := Build(Selection{}, "bios")
	require.NoError(t, err)

	f, err = Build(Some(f), "memory")
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 5, 6, 13, 16, 17}, f.Types())

	f, err = Build(Some(f), "0x20,13")
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 5, 6, 13, 16, 17, 32}, f.Types())
}

// TestBuild_FailureLeavesExistingIntact tests the error path
func TestBuild_FailureLeavesExistingIntact(t *testing.T) {
	first, err := Build(Selection{}, "memory")
	require.NoError(t, err)
	sel := Some(first)

	_, err = Build(sel, "1,2,999")
	require.Error(t, err)

	got, ok := sel.Get()
	require.True(t, ok)
	assert.Equal(t, []uint8{5, 6, 16, 17}, got.Types())
	assert.False(t, got.Has(1))
	assert.False(t, got.Has(2))
}

// TestBuild_Empty tests that an empty argument yields an empty filter
func TestBuild_Empty(t *testing.T) {
	f, err := Build(Selection{}, "")
	require.NoError(t, err)
	assert.Equal(t, 0, f.Len())

	prev, err := Build(Selection{}, "cache")
	require.NoError(t, err)
	f, err = Build(Some(prev), "")
	require.NoError(t, err)
	assert.Equal(t, prev, f)
}
