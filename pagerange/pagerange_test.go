package pagerange

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		pageCount  int
		want       []int
	}{
		{"single first page", "1", 1, []int{0}},
		{"single first page of larger document", "1", 250, []int{0}},
		{"simple range", "1-3", 10, []int{0, 1, 2}},
		{"mixed tokens", "1,3,5-7", 10, []int{0, 2, 4, 5, 6}},
		{"duplicates across tokens", "1-3,2,3-4", 10, []int{0, 1, 2, 3}},
		{"whitespace around tokens", " 2 , 1 ", 10, []int{0, 1}},
		{"whitespace inside range", "2 - 4", 10, []int{1, 2, 3}},
		{"range clipped to document", "8-12", 10, []int{7, 8, 9}},
		{"zero dropped", "0,1", 10, []int{0}},
		{"out of range page dropped", "50,2", 10, []int{1}},
		{"inverted range alongside valid page", "5-3,4", 10, []int{3}},
		{"whole document", "1-3", 3, []int{0, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.expression, tt.pageCount)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		pageCount  int
		wantErr    error
	}{
		{"empty", "", 10, ErrEmptyExpression},
		{"empty with no pages", "", 0, ErrEmptyExpression},
		{"whitespace only", "  \t ", 10, ErrEmptyExpression},
		{"letters", "abc", 10, ErrMalformedToken},
		{"letters in range end", "1-x", 10, ErrMalformedToken},
		{"missing range start", "-3", 10, ErrMalformedToken},
		{"double range", "1-2-3", 10, ErrMalformedToken},
		{"empty token", "1,,2", 10, ErrMalformedToken},
		{"trailing comma", "1,2,", 10, ErrMalformedToken},
		{"overflow", "99999999999999999999", 10, ErrMalformedToken},
		{"out of range", "50", 10, ErrEmptyResult},
		{"inverted range", "5-3", 10, ErrEmptyResult},
		{"zero pages", "1-3", 0, ErrEmptyResult},
		{"negative page count", "1", -4, ErrEmptyResult},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.expression, tt.pageCount)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseTokenError(t *testing.T) {
	_, err := Parse("1, 2a ,3", 10)

	var tokenErr *TokenError
	require.True(t, errors.As(err, &tokenErr))
	assert.Equal(t, "2a", tokenErr.Token)
	assert.ErrorIs(t, err, strconv.ErrSyntax)
	assert.Contains(t, err.Error(), `"2a"`)
}

func TestParseLargeRangeIsClipped(t *testing.T) {
	done := make(chan struct{})
	var got []int
	var err error

	go func() {
		defer close(done)
		got, err = Parse("1-999999999999", 3)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("parse did not clip a huge range")
	}
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, got)
}

func TestParseIsDeterministic(t *testing.T) {
	first, err := Parse("7-9,1,4", 12)
	require.NoError(t, err)
	second, err := Parse("7-9,1,4", 12)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParseOrderIndependent(t *testing.T) {
	unordered, err := Parse("5,1,3", 10)
	require.NoError(t, err)
	ordered, err := Parse("1,3,5", 10)
	require.NoError(t, err)
	assert.Equal(t, ordered, unordered)
}

func TestPageNumbers(t *testing.T) {
	assert.Equal(t, []string{"1", "3", "10"}, PageNumbers([]int{0, 2, 9}))
	assert.Empty(t, PageNumbers(nil))
}
