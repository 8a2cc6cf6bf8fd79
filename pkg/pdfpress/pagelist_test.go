package pdfpress

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestParsePageList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []int
	}{
		{name: "Comma separated", input: "1,3,5", expected: []int{1, 3, 5}},
		{name: "Range", input: "2-4", expected: []int{2, 3, 4}},
		{name: "Empty", input: "", expected: []int{}},
		{name: "Only whitespace", input: "  ", expected: []int{}},
		{name: "Space separated", input: "7 2", expected: []int{7, 2}},
		{name: "Mixed", input: " 1, 4-6  9,", expected: []int{1, 4, 5, 6, 9}},
		{name: "Single", input: "3", expected: []int{3}},
		{name: "Reversed range", input: "4-2", expected: []int{}},
		{name: "Duplicates kept", input: "2,2-3", expected: []int{2, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParsePageList(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestParsePageListInvalid(t *testing.T) {
	for _, input := range []string{"a", "1,x", "3-", "-2", "1-b", "1.5"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParsePageList(input)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument for %q, got %v", input, err)
			}
		})
	}
}

func TestParsePageListLength(t *testing.T) {
	pages, err := ParsePageList(fmt.Sprintf("1-%d", MaxPageListLength))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != MaxPageListLength {
		t.Errorf("expected %d pages, got %d", MaxPageListLength, len(pages))
	}

	if _, err := ParsePageList(fmt.Sprintf("1-%d,5", MaxPageListLength-1)); err != nil {
		t.Errorf("expected a list of exactly %d pages to parse, got %v", MaxPageListLength, err)
	}

	for _, input := range []string{
		"1-30000000",
		"1-2000000000",
		fmt.Sprintf("1-%d", MaxPageListLength+1),
		fmt.Sprintf("1-%d,5", MaxPageListLength),
		fmt.Sprintf("7 1-%d", MaxPageListLength),
	} {
		t.Run(input, func(t *testing.T) {
			if _, err := ParsePageList(input); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument for %q, got %v", input, err)
			}
		})
	}
}
