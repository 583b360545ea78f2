package util

import "testing"

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "resume_20240101_120000.json", want: "resume_20240101_120000.json"},
		{in: " spaced.json ", want: "spaced.json"},
		{in: "a/b\\c.json", want: "a_b_c.json"},
		{in: "../etc/passwd", wantErr: true},
		{in: "   ", wantErr: true},
	}
	for _, tt := range tests {
		got, err := SanitizeFileName(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("SanitizeFileName(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("SanitizeFileName(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("SanitizeFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSanitizeFileNameRejectsControlCharacters(t *testing.T) {
	if _, err := SanitizeFileName("resume\x00.json"); err == nil {
		t.Fatalf("expected error for NUL byte")
	}
}
