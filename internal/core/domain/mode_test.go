package domain

import (
	"errors"
	"testing"
)

func TestParseModeName(t *testing.T) {
	for _, valid := range []string{"professional", "tech", "digest"} {
		mode, err := ParseModeName(valid)
		if err != nil {
			t.Fatalf("ParseModeName(%q) returned error: %v", valid, err)
		}
		if string(mode) != valid {
			t.Fatalf("ParseModeName(%q) = %q", valid, mode)
		}
	}

	_, err := ParseModeName("casual")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestEnabledWidgetsPerMode(t *testing.T) {
	cases := []struct {
		mode ModeName
		want []Widget
	}{
		{ModeProfessional, []Widget{WidgetQuestions, WidgetEmail}},
		{ModeTech, []Widget{WidgetQuestions, WidgetConcepts, WidgetStructure}},
		{ModeDigest, []Widget{WidgetQuestions}},
	}
	for _, tc := range cases {
		got := tc.mode.EnabledWidgets()
		if len(got) != len(tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.mode, got, tc.want)
		}
		for i := range tc.want {
			if got[i] != tc.want[i] {
				t.Fatalf("%s: got %v, want %v", tc.mode, got, tc.want)
			}
		}
	}
}

func TestSupports(t *testing.T) {
	if ModeDigest.Supports(WidgetEmail) {
		t.Fatal("digest must not offer the email widget")
	}
	if !ModeProfessional.Supports(WidgetEmail) {
		t.Fatal("professional must offer the email widget")
	}
	if ModeProfessional.Supports(WidgetStructure) {
		t.Fatal("professional must not offer the structure widget")
	}
	if !ModeTech.Supports(WidgetStructure) {
		t.Fatal("tech must offer the structure widget")
	}
}

func TestDisplayName(t *testing.T) {
	cases := map[ModeName]string{
		ModeProfessional: "Professional",
		ModeTech:         "Tech Deep-Dive",
		ModeDigest:       "Quick Digest",
	}
	for mode, want := range cases {
		if got := mode.DisplayName(); got != want {
			t.Fatalf("%s.DisplayName() = %q, want %q", mode, got, want)
		}
	}
}
