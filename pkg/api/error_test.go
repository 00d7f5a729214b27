package api

import (
	"fmt"
	"testing"
)

func TestAPIErrorFormatting(t *testing.T) {
	err := &APIError{
		Code:       "not_found",
		Message:    "post not found",
		StatusCode: 404,
	}

	msg := err.Error()
	if msg != "[404] not_found: post not found" {
		t.Errorf("Unexpected error message: %s", msg)
	}
}

func TestAPIErrorWithDetails(t *testing.T) {
	err := &APIError{
		Code:       "validation_error",
		Message:    "invalid input",
		StatusCode: 400,
		Details:    map[string]interface{}{"field": "title"},
	}

	msg := err.Error()
	if msg == "" {
		t.Fatal("Error message should not be empty")
	}
}

func TestDecodeErrorFormatting(t *testing.T) {
	err := &DecodeError{Resource: "post", Field: "id"}

	if err.Error() != "invalid post response: missing id" {
		t.Errorf("Unexpected decode error message: %s", err.Error())
	}
}

func TestErrorPredicates(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		predicate  func(error) bool
		expect     bool
	}{
		{"unauthorized matches 401", &APIError{StatusCode: 401}, IsUnauthorized, true},
		{"unauthorized rejects 403", &APIError{StatusCode: 403}, IsUnauthorized, false},
		{"not found matches 404", &APIError{StatusCode: 404}, IsNotFound, true},
		{"server error matches 500", &APIError{StatusCode: 500}, IsServerError, true},
		{"server error matches 503", &APIError{StatusCode: 503}, IsServerError, true},
		{"server error rejects 404", &APIError{StatusCode: 404}, IsServerError, false},
		{"decode error matches", &DecodeError{Resource: "post", Field: "id"}, IsDecodeError, true},
		{"decode error rejects api error", &APIError{StatusCode: 500}, IsDecodeError, false},
		{"plain error matches nothing", fmt.Errorf("plain"), IsUnauthorized, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.predicate(tc.err); got != tc.expect {
				t.Errorf("Expected %v, got %v", tc.expect, got)
			}
		})
	}
}

func TestErrorPredicates_WrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("request failed: %w", &APIError{StatusCode: 404})

	if !IsNotFound(wrapped) {
		t.Error("Predicates should unwrap errors")
	}
}
