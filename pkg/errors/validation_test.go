package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidateStarCount(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		limit   int
		wantErr bool
	}{
		{"zero", 0, 1000, false},
		{"typical", 237, 1000, false},
		{"at limit", 1000, 1000, false},
		{"unbounded", 1 << 30, 0, false},

		{"negative", -1, 1000, true},
		{"over limit", 1001, 1000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStarCount(tt.n, tt.limit)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStarCount(%d, %d) error = %v, wantErr %v", tt.n, tt.limit, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidStarCount) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidStarCount)
			}
		})
	}
}

func TestValidateDimension(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"positive", 800, false},
		{"fractional", 0.5, false},

		{"zero", 0, true},
		{"negative", -10, true},
		{"NaN", math.NaN(), true},
		{"Inf", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimension("width", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDimension(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidDimensions) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidDimensions)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "ada@example.com", false},
		{"plus tag", "ada+stars@example.co.uk", false},

		{"empty", "", true},
		{"no at", "ada.example.com", true},
		{"no domain dot", "ada@localhost", true},
		{"display name", "Ada <ada@example.com>", true},
		{"spaces", "ada @example.com", true},
		{"trailing junk", "ada@example.com, bob@example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEmail(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"https", "https://example.com/path", false},
		{"http", "http://example.com/path", false},

		{"empty", "", true},
		{"ftp", "ftp://example.com", true},
		{"file", "file:///etc/passwd", true},
		{"javascript", "javascript:alert(1)", true},
		{"no scheme", "linkedin.com/in/ada", true},
		{"bare http", "http://", true},
		{"bare https", "https://", true},
		{"space after scheme", "https:// <script>", true},
		{"embedded space", "https://github.com/ada lovelace", true},
		{"bad port", "https://github.com:abc/ada", true},
		{"upper-case scheme", "HTTPS://github.com/ada", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		limit   int
		wantErr bool
	}{
		{"empty", "", 10, false},
		{"multiline", "hello\nworld\tagain", 50, false},
		{"multibyte at limit", strings.Repeat("é", 10), 10, false},

		{"too long", strings.Repeat("a", 11), 10, true},
		{"null byte", "a\x00b", 10, true},
		{"bell", "a\x07b", 10, true},
		{"invalid utf8", "a\xffb", 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateText("message", tt.input, tt.limit)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateText(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
