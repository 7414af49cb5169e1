package utils

import (
	"testing"
	"time"
	"unicode/utf8"
)

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  T@X.Com "); got != "t@x.com" {
		t.Fatalf("got %q", got)
	}
}

func TestAnyEmpty(t *testing.T) {
	if !AnyEmpty("a", "  ", "c") {
		t.Fatalf("blank value not detected")
	}
	if AnyEmpty("a", "b") {
		t.Fatalf("false positive")
	}
}

func TestFormatPrice(t *testing.T) {
	cases := map[int64]string{
		0:       "Rs. 0",
		999:     "Rs. 999",
		12000:   "Rs. 12,000",
		1234567: "Rs. 1,234,567",
		-5000:   "-Rs. 5,000",
	}
	for in, want := range cases {
		if got := FormatPrice(in); got != want {
			t.Fatalf("FormatPrice(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestSafeFilenamePart(t *testing.T) {
	if got := SafeFilenamePart("Goa Beach/Tour"); got != "Goa_Beach_Tour" {
		t.Fatalf("got %q", got)
	}
	if SafeFilenamePart("  ") != "NA" {
		t.Fatalf("blank should map to NA")
	}
}

func TestSafeFilenamePartCutsOnRuneBoundary(t *testing.T) {
	got := SafeFilenamePart("Manali Himalaya Trek Rishi ऋषिकेश Yatra")
	if !utf8.ValidString(got) {
		t.Fatalf("truncated name is not valid utf-8: %q", got)
	}
	if n := utf8.RuneCountInString(got); n != 40 {
		t.Fatalf("expected 40 runes, got %d (%q)", n, got)
	}
}

func TestFormatDateZero(t *testing.T) {
	if FormatDate(time.Time{}) != "" || FormatDateTime(time.Time{}) != "" {
		t.Fatalf("zero time should format empty")
	}
}
