package service

import "testing"

func TestValidateName(t *testing.T) {
	tests := []struct {
		label   string
		input   string
		want    string
		wantErr bool
	}{
		{"plain", "Widget", "Widget", false},
		{"trimmed", "  Widget  ", "Widget", false},
		{"exactly two runes", "ab", "ab", false},
		{"two multibyte runes", "日本", "日本", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
		{"one rune", "x", "", true},
		{"one rune padded", "  x ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, fieldErr := validateName("name", tt.input)

			if tt.wantErr {
				if fieldErr == nil {
					t.Fatal("expected a field error")
				}
				if fieldErr.Field != "name" {
					t.Errorf("expected field %q, got %q", "name", fieldErr.Field)
				}
				return
			}

			if fieldErr != nil {
				t.Fatalf("unexpected field error: %+v", fieldErr)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
