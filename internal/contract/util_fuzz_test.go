package contract

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// FuzzParseWeightOverride fuzzes the --weight parser with random override strings.
func FuzzParseWeightOverride(f *testing.F) {
	seeds := []string{
		"Liver function status=0.2",
		"Immune-metabolic balance status = 0.15",
		"a=b=0.3",
		"=0.1",
		"Microbiota status=",
		"",
		"Krebs cycle and amino-acid balance=1e-2",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, raw string) {
		name, _, err := ParseWeightOverride(raw)
		if err != nil {
			return
		}
		if name != strings.TrimSpace(name) {
			t.Errorf("name %q is not trimmed", name)
		}
		if !strings.Contains(raw, "=") {
			t.Errorf("accepted %q without '='", raw)
		}
	})
}

// FuzzTruncateID fuzzes TruncateID with random identifiers and widths.
func FuzzTruncateID(f *testing.F) {
	f.Add("P000123", 5)
	f.Add("Пациент-1", 6)
	f.Add("", 0)
	f.Add("short", 40)

	f.Fuzz(func(t *testing.T, id string, maxWidth int) {
		if !utf8.ValidString(id) {
			t.Skip()
		}
		got := TruncateID(id, maxWidth)
		if maxWidth > 3 && utf8.RuneCountInString(got) > maxWidth {
			t.Errorf("TruncateID(%q, %d) = %q is wider than %d", id, maxWidth, got, maxWidth)
		}
		if got != id && !strings.HasSuffix(got, "...") {
			t.Errorf("truncated %q without ellipsis", got)
		}
	})
}
