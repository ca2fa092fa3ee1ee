package versions

import (
	"testing"
)

func TestParseBlender(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"release", "3.5.1", "3.5.1", false},
		{"v prefix", "v3.5.1", "3.5.1", false},
		{"two segments", "4.2", "4.2.0", false},
		{"empty", "", "", true},
		{"garbage", "notaversion", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseBlender(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.String() != tt.want {
				t.Errorf("ParseBlender(%q) = %q, want %q", tt.input, v.String(), tt.want)
			}
		})
	}
}

func TestParsePython(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"minor", "3.10", false},
		{"single digit minor", "3.9", false},
		{"patch included", "3.10.2", true},
		{"major only", "3", true},
		{"empty", "", true},
		{"wildcard", "3.*", true},
		{"whitespace", "3. 10", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ParsePython(tt.input)
			if tt.wantErr && err == nil {
				t.Errorf("ParsePython(%q) expected error, got nil", tt.input)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ParsePython(%q) unexpected error: %v", tt.input, err)
			}
		})
	}
}

func TestPythonPin(t *testing.T) {
	if got := PythonPin("3.10"); got != "==3.10.*" {
		t.Errorf("PythonPin(3.10) = %q, want %q", got, "==3.10.*")
	}
}

func TestGitTag(t *testing.T) {
	v, err := ParseBlender("3.5.1")
	if err != nil {
		t.Fatalf("ParseBlender error: %v", err)
	}
	if got := GitTag(v); got != "v3.5.1" {
		t.Errorf("GitTag = %q, want %q", got, "v3.5.1")
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected int
		wantErr  bool
	}{
		{"older minor", "3.4.0", "3.5.0", -1, false},
		{"equal", "3.5.1", "3.5.1", 0, false},
		{"newer", "4.0.0", "3.6.2", 1, false},
		{"v prefix both", "v3.5.0", "v3.5.1", -1, false},
		{"invalid a", "notaversion", "3.5.1", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Compare(tt.a, tt.b)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}
