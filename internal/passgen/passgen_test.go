package passgen

import (
	"strings"
	"testing"
)

func TestGenerateLength(t *testing.T) {
	pw, err := Generate(Params{Length: 24, IncludeLowerCase: true})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(pw) != 24 {
		t.Errorf("expected 24 characters, got %d", len(pw))
	}
}

func TestGenerateDefaultLength(t *testing.T) {
	pw, err := Generate(Params{IncludeLowerCase: true, IncludeDigits: true})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(pw) != DefaultLength {
		t.Errorf("expected default length %d, got %d", DefaultLength, len(pw))
	}
}

func TestGenerateUsesOnlyEnabledClasses(t *testing.T) {
	pw, err := Generate(Params{Length: 200, IncludeDigits: true, IncludeLookAlike: true})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for _, r := range pw {
		if !strings.ContainsRune(digitChars, r) {
			t.Fatalf("digits-only password contains %q", r)
		}
	}
}

func TestGenerateExcludesLookAlikes(t *testing.T) {
	// Long enough that every allowed character almost surely appears.
	pw, err := Generate(Params{
		Length:           2000,
		IncludeLowerCase: true,
		IncludeUpperCase: true,
		IncludeDigits:    true,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if strings.ContainsAny(pw, lookAlikeChars) {
		t.Error("password contains look-alike characters despite exclusion")
	}
}

func TestGenerateIncludesLookAlikesWhenEnabled(t *testing.T) {
	pw, err := Generate(Params{
		Length:           5000,
		IncludeLowerCase: true,
		IncludeUpperCase: true,
		IncludeDigits:    true,
		IncludeLookAlike: true,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !strings.ContainsAny(pw, lookAlikeChars) {
		t.Error("expected look-alike characters in a 5000-character password")
	}
}

func TestGenerateNoClassesEnabled(t *testing.T) {
	if _, err := Generate(Params{Length: 16}); err == nil {
		t.Error("expected error with no character classes enabled")
	}
}
