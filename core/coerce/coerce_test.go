package coerce

import (
	"testing"
	"time"
)

func TestFloat(t *testing.T) {
	tests := []struct {
		name string
		in   string
		def  float64
		want float64
	}{
		{name: "plain number", in: "1.234", def: 0, want: 1.234},
		{name: "surrounding whitespace", in: " 1.234 ", def: 0, want: 1.234},
		{name: "integer text", in: "2", def: 0, want: 2.0},
		{name: "empty uses default", in: "", def: -1.0, want: -1.0},
		{name: "garbage uses default", in: "not_a_number", def: 5.5, want: 5.5},
		{name: "negative", in: "-3.5", def: 0, want: -3.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Float(tt.in, tt.def); got != tt.want {
				t.Errorf("Float(%q, %v) = %v, want %v", tt.in, tt.def, got, tt.want)
			}
		})
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		name string
		in   string
		def  int
		want int
	}{
		{name: "plain number", in: "42", def: 0, want: 42},
		{name: "surrounding whitespace", in: " 42 ", def: 0, want: 42},
		{name: "empty uses default", in: "", def: 100, want: 100},
		{name: "fractional is rejected", in: "12.3", def: -1, want: -1},
		{name: "garbage uses default", in: "abc", def: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Int(tt.in, tt.def); got != tt.want {
				t.Errorf("Int(%q, %d) = %d, want %d", tt.in, tt.def, got, tt.want)
			}
		})
	}
}

func TestOptionalFloat(t *testing.T) {
	if got := OptionalFloat("300"); got == nil || *got != 300 {
		t.Errorf("OptionalFloat(\"300\") = %v, want 300", got)
	}
	if got := OptionalFloat(" 0 "); got == nil || *got != 0 {
		t.Errorf("OptionalFloat(\" 0 \") = %v, want 0", got)
	}
	// Blank must be distinguishable from zero: it is the unbounded sentinel.
	if got := OptionalFloat(""); got != nil {
		t.Errorf("OptionalFloat(\"\") = %v, want nil", *got)
	}
	if got := OptionalFloat("eleventy"); got != nil {
		t.Errorf("OptionalFloat(\"eleventy\") = %v, want nil", *got)
	}
}

func TestOptionalInt(t *testing.T) {
	if got := OptionalInt("18"); got == nil || *got != 18 {
		t.Errorf("OptionalInt(\"18\") = %v, want 18", got)
	}
	if got := OptionalInt(""); got != nil {
		t.Errorf("OptionalInt(\"\") = %v, want nil", *got)
	}
	if got := OptionalInt("7.5"); got != nil {
		t.Errorf("OptionalInt(\"7.5\") = %v, want nil", *got)
	}
}

func TestDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		ok   bool
		want time.Time
	}{
		{
			name: "date only",
			in:   "2025-01-01",
			ok:   true,
			want: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "date and time",
			in:   "2025-01-01 18:30:00",
			ok:   true,
			want: time.Date(2025, 1, 1, 18, 30, 0, 0, time.UTC),
		},
		{
			name: "minutes precision",
			in:   "2025-01-02 20:00",
			ok:   true,
			want: time.Date(2025, 1, 2, 20, 0, 0, 0, time.UTC),
		},
		{
			name: "slash separated",
			in:   "2025/01/01",
			ok:   true,
			want: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{name: "invalid", in: "invalid-date", ok: false},
		{name: "empty", in: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Date(tt.in)
			if ok != tt.ok {
				t.Fatalf("Date(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("Date(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
