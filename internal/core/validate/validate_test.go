package validate

import (
	"testing"
)

func TestPresetName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid name", "delete-confirm", false},
		{"dots and underscores", "v2.toast_ok", false},
		{"digits first", "404", false},
		{"empty string", "", true},
		{"only spaces", "   ", true},
		{"uppercase", "Delete", true},
		{"leading dash", "-x", true},
		{"path separator", "a/b", true},
		{"spaces inside", "my preset", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := PresetName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("PresetName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestSurface(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "main", false},
		{"empty", "", true},
		{"tabs", "\t\t", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Surface(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Surface(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
