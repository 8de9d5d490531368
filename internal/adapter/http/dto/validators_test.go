package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// --- SanitizeStruct tests ---

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := RegisterRequest{
		Username: "  alice  ",
		Email:    " alice@example.com ",
		Password: "  pass1234  ",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "alice", req.Username)
	assert.Equal(t, "alice@example.com", req.Email)
	assert.Equal(t, "pass1234", req.Password)
}

func TestSanitizeStruct_EscapesHTML(t *testing.T) {
	req := LoginRequest{
		Username: "bob<script>alert('x')</script>",
		Password: "password123",
	}
	SanitizeStruct(&req)

	assert.Contains(t, req.Username, "&lt;script&gt;")
	assert.NotContains(t, req.Username, "<script>")
}

func TestSanitizeStruct_IgnoresNonStructs(t *testing.T) {
	s := "  not a struct  "
	SanitizeStruct(&s)
	assert.Equal(t, "  not a struct  ", s)

	SanitizeStruct(nil)
}

// --- safe_id validator tests ---

func TestValidateSafeID(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"alice", true},
		{"alice_01", true},
		{"a-b.c", true},
		{"alice bob", false},
		{"alice<script>", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, safeStringRe.MatchString(tt.input), "input %q", tt.input)
	}
}
