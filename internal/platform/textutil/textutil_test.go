package textutil

import "testing"

func TestNormalizeSlug(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"  Tver  ", "tver"},
		{"SEPTIC", "septic"},
		{"", ""},
		{"  ", ""},
		{"rostov-na-donu", "rostov-na-donu"},
	}
	for _, tc := range cases {
		if got := NormalizeSlug(tc.in); got != tc.want {
			t.Errorf("NormalizeSlug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCapitalizeFirst(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"septic", "Septic"},
		{"септик под ключ", "Септик под ключ"},
		{"Уже с заглавной", "Уже с заглавной"},
		{"", ""},
		{"1 сентября", "1 сентября"},
	}
	for _, tc := range cases {
		if got := CapitalizeFirst(tc.in); got != tc.want {
			t.Errorf("CapitalizeFirst(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestContainsCyrillic(t *testing.T) {
	if !ContainsCyrillic("Тверь") {
		t.Errorf("expected Cyrillic detection for Тверь")
	}
	if ContainsCyrillic("Tver-2024") {
		t.Errorf("latin text should not report Cyrillic")
	}
	if ContainsCyrillic("") {
		t.Errorf("empty string should not report Cyrillic")
	}
}
