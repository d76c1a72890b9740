// Package pagerange turns user-entered page range expressions such as
// "1-3,5,7-9" into the zero-based page indices of a document.
package pagerange

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// InvalidRangeMessage is shown to users for every parse failure.
const InvalidRangeMessage = "Invalid page range specified. Please use formats like '1-3', '5', '1,3,5-7'."

var (
	// ErrEmptyExpression is returned for empty or whitespace-only input.
	ErrEmptyExpression = errors.New("empty page range expression")

	// ErrMalformedToken is returned when a token is not an integer or an integer range.
	ErrMalformedToken = errors.New("malformed page range token")

	// ErrEmptyResult is returned when no selected page lies within the document.
	ErrEmptyResult = errors.New("no pages within document bounds")
)

// TokenError reports the comma-separated token that failed to parse.
type TokenError struct {
	Token string
	Err   error
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("%v: %q", ErrMalformedToken, e.Token)
}

// Unwrap lets errors.Is match both ErrMalformedToken and the strconv cause.
func (e *TokenError) Unwrap() []error {
	return []error{ErrMalformedToken, e.Err}
}

// Parse parses expression against a document of pageCount pages.
// Pages are 1-based in the expression and returned 0-based, sorted and unique.
// Numbers outside [1, pageCount] are dropped; an inverted range such as
// "5-3" contributes no pages.
func Parse(expression string, pageCount int) ([]int, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, ErrEmptyExpression
	}
	if pageCount < 0 {
		pageCount = 0
	}

	selected := make(map[int]struct{})
	for _, part := range strings.Split(expression, ",") {
		token := strings.TrimSpace(part)

		start, end, err := parseToken(token)
		if err != nil {
			return nil, &TokenError{Token: token, Err: err}
		}

		// Only walk the part of the range that overlaps the document.
		start = max(start, 1)
		end = min(end, pageCount)
		for page := start; page <= end; page++ {
			selected[page-1] = struct{}{}
		}
	}

	if len(selected) == 0 {
		return nil, ErrEmptyResult
	}

	indices := make([]int, 0, len(selected))
	for index := range selected {
		indices = append(indices, index)
	}
	sort.Ints(indices)

	return indices, nil
}

// parseToken returns the inclusive 1-based bounds a token describes.
// A single page n is the range n-n.
func parseToken(token string) (int, int, error) {
	first, last, isRange := strings.Cut(token, "-")
	if !isRange {
		page, err := strconv.Atoi(token)
		if err != nil {
			return 0, 0, err
		}
		return page, page, nil
	}

	start, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid start page: %w", err)
	}
	end, err := strconv.Atoi(strings.TrimSpace(last))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid end page: %w", err)
	}
	return start, end, nil
}

// PageNumbers converts zero-based indices to 1-based page numbers in the
// string form pdfcpu page selections expect.
func PageNumbers(indices []int) []string {
	pages := make([]string, len(indices))
	for i, index := range indices {
		pages[i] = strconv.Itoa(index + 1)
	}
	return pages
}
