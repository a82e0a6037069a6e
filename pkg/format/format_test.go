package format

import (
	"encoding/json"
	"math"
	"testing"
)

func ptr(v float64) *float64 { return &v }

func TestNewInvalidLocale(t *testing.T) {
	if _, err := New("not a locale!!", 2); err == nil {
		t.Fatal("New() with invalid locale should fail")
	}
}

func TestNewDefaults(t *testing.T) {
	f, err := New("", -1)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if got := f.Locale().String(); got != DefaultLocale {
		t.Errorf("Locale() = %q, want %q", got, DefaultLocale)
	}
}

func TestNumber(t *testing.T) {
	f := MustNew("en", 2)

	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"integer", 12, "12.00"},
		{"fraction", 12.5, "12.50"},
		{"rounding", 0.126, "0.13"},
		{"negative", -3.25, "-3.25"},
		{"nan", math.NaN(), Placeholder},
		{"inf", math.Inf(1), Placeholder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Number(tt.in); got != tt.want {
				t.Errorf("Number(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNumberZeroDecimals(t *testing.T) {
	f := MustNew("en", 0)
	if got := f.Number(41.6); got != "42" {
		t.Errorf("Number(41.6) = %q, want %q", got, "42")
	}
}

func TestValue(t *testing.T) {
	f := MustNew("en", 1)

	tests := []struct {
		name    string
		in      any
		numeric bool
		want    string
	}{
		{"float numeric", 3.14, true, "3.1"},
		{"int numeric", 7, true, "7.0"},
		{"json number", json.Number("2.5"), true, "2.5"},
		{"numeric string", " 4.26 ", true, "4.3"},
		{"garbage string numeric", "n/a", true, Placeholder},
		{"nil numeric", nil, true, Placeholder},
		{"bool numeric", true, true, Placeholder},
		{"text", "RUN", false, "RUN"},
		{"padded text", "  STOP ", false, "STOP"},
		{"blank text", "   ", false, Placeholder},
		{"nil text", nil, false, Placeholder},
		{"number in text column", 5.0, false, "5.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Value(tt.in, tt.numeric); got != tt.want {
				t.Errorf("Value(%v, %v) = %q, want %q", tt.in, tt.numeric, got, tt.want)
			}
		})
	}
}

func TestNumberPtr(t *testing.T) {
	f := MustNew("en", 0)
	if got := f.NumberPtr(nil); got != Placeholder {
		t.Errorf("NumberPtr(nil) = %q, want %q", got, Placeholder)
	}
	if got := f.NumberPtr(ptr(80)); got != "80" {
		t.Errorf("NumberPtr(80) = %q, want %q", got, "80")
	}
}

func TestFillPercent(t *testing.T) {
	tests := []struct {
		name     string
		content  *float64
		capacity float64
		want     string
	}{
		{"half full", ptr(50), 100, "50.0%"},
		{"one third", ptr(1), 3, "33.3%"},
		{"empty", ptr(0), 100, "0.0%"},
		{"overfull is not clamped", ptr(120), 100, "120.0%"},
		{"negative is not clamped", ptr(-10), 100, "-10.0%"},
		{"missing content", nil, 100, Placeholder},
		{"zero capacity", ptr(50), 0, Placeholder},
		{"negative capacity", ptr(50), -1, Placeholder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FillPercent(tt.content, tt.capacity); got != tt.want {
				t.Errorf("FillPercent() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUpper(t *testing.T) {
	f := MustNew("en", 2)
	if got := f.Upper("feed mill"); got != "FEED MILL" {
		t.Errorf("Upper() = %q, want %q", got, "FEED MILL")
	}
}
