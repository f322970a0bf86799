package series

import (
	"strings"
	"testing"
)

func TestParseLocation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Location
		wantErr bool
	}{
		{"exact match", "cytadela", Cytadela, false},
		{"second location", "lasdebinski", LasDebinski, false},
		{"uppercase", "CYTADELA", Cytadela, false},
		{"mixed case with spaces", "  LasDebinski ", LasDebinski, false},
		{"unknown location", "centralpark", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLocation(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseLocation(%q) expected error, got %q", tt.input, got)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseLocation(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseLocation(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLocation_ErrorListsSupported(t *testing.T) {
	_, err := ParseLocation("nowhere")
	if err == nil {
		t.Fatal("expected error for unknown location")
	}

	for _, loc := range Locations() {
		if !strings.Contains(err.Error(), string(loc)) {
			t.Errorf("error %q should mention supported location %q", err, loc)
		}
	}
}

func TestEventRef(t *testing.T) {
	t.Run("zero value is latest", func(t *testing.T) {
		var ref EventRef
		if !ref.IsLatest() {
			t.Error("zero EventRef should refer to the latest event")
		}
	})

	t.Run("LatestEvent", func(t *testing.T) {
		ref := LatestEvent()
		if !ref.IsLatest() {
			t.Error("LatestEvent() should report IsLatest")
		}
		if ref.String() != "latest" {
			t.Errorf("String() = %q, want \"latest\"", ref.String())
		}
	})

	t.Run("EventNumber", func(t *testing.T) {
		ref := EventNumber(42)
		if ref.IsLatest() {
			t.Error("EventNumber(42) should not report IsLatest")
		}
		if ref.Number() != 42 {
			t.Errorf("Number() = %d, want 42", ref.Number())
		}
		if ref.String() != "#42" {
			t.Errorf("String() = %q, want \"#42\"", ref.String())
		}
	})
}
