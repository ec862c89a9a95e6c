package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{NewValidation("bad input", nil), http.StatusBadRequest},
		{NewNotFound("order", "o-1"), http.StatusNotFound},
		{NewConflict("email taken"), http.StatusConflict},
		{NewInvalidState("cannot cancel", nil), http.StatusConflict},
		{NewInternal("boom", nil), http.StatusInternalServerError},
		{fmt.Errorf("plain error"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := HTTPStatus(tt.err); got != tt.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestGRPCStatus(t *testing.T) {
	tests := []struct {
		err  error
		want codes.Code
	}{
		{NewValidation("bad input", nil), codes.InvalidArgument},
		{NewNotFound("order", "o-1"), codes.NotFound},
		{NewConflict("email taken"), codes.AlreadyExists},
		{NewInvalidState("cannot cancel", nil), codes.FailedPrecondition},
		{NewInternal("boom", nil), codes.Internal},
		{fmt.Errorf("plain error"), codes.Internal},
	}

	for _, tt := range tests {
		if got := status.Code(GRPCStatus(tt.err)); got != tt.want {
			t.Errorf("GRPCStatus(%v) = %s, want %s", tt.err, got, tt.want)
		}
	}
}

func TestToJSON(t *testing.T) {
	statusCode, body := ToJSON(NewNotFound("order", "o-1"), "trace-123")

	if statusCode != http.StatusNotFound {
		t.Errorf("status = %d, want %d", statusCode, http.StatusNotFound)
	}

	var response ErrorResponse
	if err := json.Unmarshal(body, &response); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if response.Error.Code != CodeNotFound {
		t.Errorf("code = %s, want %s", response.Error.Code, CodeNotFound)
	}
	if response.TraceID != "trace-123" {
		t.Errorf("trace_id = %s, want trace-123", response.TraceID)
	}
}

func TestToJSON_UnknownErrorIsInternal(t *testing.T) {
	statusCode, body := ToJSON(fmt.Errorf("database exploded"), "")

	if statusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", statusCode, http.StatusInternalServerError)
	}
	// Internal details must not leak to clients
	var response ErrorResponse
	if err := json.Unmarshal(body, &response); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if response.Error.Message != "An internal error occurred" {
		t.Errorf("message = %q leaks internals", response.Error.Message)
	}
}

func TestWrap_KeepsCode(t *testing.T) {
	wrapped := Wrap(NewNotFound("order", "o-1"), "failed to load")

	if !Is(wrapped, CodeNotFound) {
		t.Errorf("expected wrapped error to keep code %s, got %s", CodeNotFound, wrapped.Code)
	}
}
