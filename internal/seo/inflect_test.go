package seo

import "testing"

func TestLocative(t *testing.T) {
	cases := []struct {
		name  string
		place string
		slug  string
		want  string
	}{
		{"soft sign", "Тверь", "tver", "Твери"},
		{"sk suffix", "Томск", "tomsk", "Томске"},
		{"soft sign kazan", "Казань", "kazan", "Казани"},
		{"exception moscow", "Москва", "moskva", "Москве"},
		{"exception rostov", "Ростов-на-Дону", "rostov-na-donu", "Ростове-на-Дону"},
		{"indeclinable vowel", "Сочи", "sochi", "Сочи"},
		{"a suffix", "Самара", "samara", "Самаре"},
		{"ya suffix", "Шуя", "shuya", "Шуе"},
		{"consonant suffix", "Владимир", "vladimir", "Владимире"},
		{"ovo class", "Иваново", "ivanovo", "Иваново"},
		{"na joiner without exception", "Ростов-на-Дону", "", "Ростове-на-Дону"},
		{"exception petersburg", "Санкт-Петербург", "sankt-peterburg", "Санкт-Петербурге"},
		{"hyphen without joiner", "Гусь-Хрустальный", "", "Гуси-Хрустальные"},
		{"multi word", "Старый Оскол", "staryy-oskol", "Старый Осколе"},
		{"exception oryol", "Орёл", "orel", "Орле"},
		{"non cyrillic passthrough", "London", "london", "London"},
		{"empty name fallback", "", "", "вашем городе"},
		{"blank name fallback", "   ", "unknown", "вашем городе"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Locative(tc.place, tc.slug); got != tc.want {
				t.Fatalf("Locative(%q, %q) = %q, want %q", tc.place, tc.slug, got, tc.want)
			}
		})
	}
}

func TestLocativeExceptionWinsOverRules(t *testing.T) {
	// The slug lookup must run before any rule: the rule path would give
	// "Нижний Новгороде" here.
	if got := Locative("Нижний Новгород", "nizhniy-novgorod"); got != "Нижнем Новгороде" {
		t.Fatalf("expected dictionary form, got %q", got)
	}
	if got := Locative("Нижний Новгород", ""); got != "Нижний Новгороде" {
		t.Fatalf("expected rule-path form without slug, got %q", got)
	}
}
