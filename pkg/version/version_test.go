package version

import (
	"testing"
)

func TestParseEdition_Valid(t *testing.T) {
	tests := []struct {
		input  string
		year   uint16
		letter byte
	}{
		{"2024c", 2024, 'c'},
		{"2019a", 2019, 'a'},
		{"2023E", 2023, 'e'},
		{" 2025b ", 2025, 'b'},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e, err := ParseEdition(tt.input)
			if err != nil {
				t.Fatalf("ParseEdition(%q) returned error: %v", tt.input, err)
			}
			if e.Year != tt.year {
				t.Errorf("Year = %d, want %d", e.Year, tt.year)
			}
			if e.Letter != tt.letter {
				t.Errorf("Letter = %c, want %c", e.Letter, tt.letter)
			}
		})
	}
}

func TestParseEdition_Invalid(t *testing.T) {
	tests := []string{
		"",
		"2024",
		"2024cc",
		"abcdc",
		"1800a",
		"20241",
		"2024-",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := ParseEdition(input)
			if err == nil {
				t.Errorf("ParseEdition(%q) should return error", input)
			}
		})
	}
}

func TestEdition_String(t *testing.T) {
	e, err := ParseEdition("2024C")
	if err != nil {
		t.Fatal(err)
	}
	if got := e.String(); got != "2024c" {
		t.Errorf("String() = %q, want 2024c", got)
	}
	if got := (Edition{}).String(); got != "" {
		t.Errorf("zero String() = %q, want empty", got)
	}
	if !(Edition{}).IsZero() {
		t.Error("zero Edition should report IsZero")
	}
}

func TestEdition_Compare(t *testing.T) {
	a := Edition{Year: 2023, Letter: 'e'}
	b := Edition{Year: 2024, Letter: 'a'}
	c := Edition{Year: 2024, Letter: 'c'}

	if a.Compare(b) != -1 || b.Compare(a) != 1 {
		t.Error("year ordering is wrong")
	}
	if b.Compare(c) != -1 || c.Compare(b) != 1 {
		t.Error("letter ordering is wrong")
	}
	if c.Compare(c) != 0 {
		t.Error("edition should equal itself")
	}
	if !a.Before(c) || c.Before(a) {
		t.Error("Before is wrong")
	}
}
