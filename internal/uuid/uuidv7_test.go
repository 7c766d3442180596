package uuid

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	id := New()
	if !IsValid(id) {
		t.Fatalf("New() returned invalid uuid %q", id)
	}
	if v := Version(id); v != 7 {
		t.Errorf("expected version 7, got %d", v)
	}
}

func TestNew_Ordered(t *testing.T) {
	prev := New()
	for i := 0; i < 50; i++ {
		next := New()
		if next == prev {
			t.Fatalf("duplicate uuid %q", next)
		}
		// The leading 48 bits are a millisecond timestamp, so ids never go backwards.
		if next[:8] < prev[:8] {
			t.Fatalf("uuid %q sorts before previous %q", next, prev)
		}
		prev = next
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "canonical", input: "0190a5b2-7c3e-7a1b-8c9d-0123456789ab", want: "0190a5b2-7c3e-7a1b-8c9d-0123456789ab"},
		{name: "upper_case", input: "0190A5B2-7C3E-7A1B-8C9D-0123456789AB", want: "0190a5b2-7c3e-7a1b-8c9d-0123456789ab"},
		{name: "garbage", input: "not-a-uuid", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != strings.ToLower(tt.want) {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestVersion_Invalid(t *testing.T) {
	if v := Version("nope"); v != 0 {
		t.Errorf("expected 0 for invalid uuid, got %d", v)
	}
}
