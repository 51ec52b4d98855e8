package appointment

import "testing"

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-01-01", "2024-01-01"},
		{"2024-01-01T00:00:00Z", "2024-01-01"},
		{"2024-01-01T15:30:00+02:00", "2024-01-01"},
		{"2024-01-01 00:00:00", "2024-01-01"},
		{"  2024-01-01  ", "2024-01-01"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeDate(tt.in); got != tt.want {
			t.Errorf("NormalizeDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "domani", "01/02/2024", "2024-13-01"} {
		if _, err := ParseDate(in); err == nil {
			t.Errorf("ParseDate(%q) should fail", in)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	a, _ := ParseDate("2024-02-26")
	b, _ := ParseDate("2024-03-04")

	// attraversa il 29 febbraio
	if got := DaysBetween(a, b); got != 7 {
		t.Errorf("DaysBetween = %d, want 7", got)
	}
}

func TestEndTimeFor(t *testing.T) {
	end, err := EndTimeFor("10:00", "Taglio")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if end != "10:30" {
		t.Errorf("EndTimeFor = %q, want 10:30", end)
	}

	if _, err := EndTimeFor("10:00", "Permanente"); err == nil {
		t.Error("unknown service type should fail")
	}
	if _, err := EndTimeFor("25:99", "Taglio"); err == nil {
		t.Error("invalid time should fail")
	}
}

func TestPriceFor(t *testing.T) {
	if got := PriceFor("Taglio", 0); got != 18 {
		t.Errorf("listino Taglio = %v, want 18", got)
	}
	if got := PriceFor("Taglio", 22.5); got != 22.5 {
		t.Errorf("explicit price must win, got %v", got)
	}
	if got := PriceFor("Sconosciuto", 0); got != 0 {
		t.Errorf("unknown service without price = %v, want 0", got)
	}
}
