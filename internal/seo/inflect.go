package seo

import (
	"strings"

	"github.com/uslugi-market/api/internal/platform/textutil"
)

// fallbackLocative is spliced after "в" when the place name is unusable.
const fallbackLocative = "вашем городе"

// locativeExceptions maps normalized region slugs to hand-checked locative
// forms for names the suffix rules cannot predict (capital cities, compound
// names, plural forms). This dictionary is the intended override mechanism
// for anything the rule table gets wrong.
var locativeExceptions = map[string]string{
	"moskva":              "Москве",
	"sankt-peterburg":     "Санкт-Петербурге",
	"nizhniy-novgorod":    "Нижнем Новгороде",
	"velikiy-novgorod":    "Великом Новгороде",
	"rostov-na-donu":      "Ростове-на-Дону",
	"komsomolsk-na-amure": "Комсомольске-на-Амуре",
	"naberezhnye-chelny":  "Набережных Челнах",
	"mineralnye-vody":     "Минеральных Водах",
	"velikie-luki":        "Великих Луках",
	"staraya-russa":       "Старой Руссе",
	"yoshkar-ola":         "Йошкар-Оле",
	"orel":                "Орле",
}

var locativeConsonants = []string{
	"б", "в", "г", "д", "ж", "з", "й", "к", "л", "м",
	"н", "п", "р", "с", "т", "ф", "х", "ц", "ч", "ш", "щ",
}

// Locative converts a nominative place name into the form used after the
// preposition "в" ("в Твери", "в Томске"). The slug, when known, is checked
// against the exception dictionary first. This is a rule-based approximation
// rather than real morphology: names outside the exception list and the
// common suffix classes are best effort.
func Locative(name, slug string) string {
	if form, ok := locativeExceptions[textutil.NormalizeSlug(slug)]; ok {
		return form
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return fallbackLocative
	}
	// Foreign transliterations cannot be inflected safely.
	if !textutil.ContainsCyrillic(name) {
		return name
	}

	if strings.Contains(name, "-") {
		return inflectHyphenated(name)
	}

	if words := strings.Fields(name); len(words) > 1 {
		words[len(words)-1] = inflectToken(words[len(words)-1])
		return strings.Join(words, " ")
	}

	return inflectToken(name)
}

// inflectHyphenated handles compound names. A "на" joiner past the first
// segment marks a locational tail that stays in nominative form
// ("Ростов-на-Дону" inflects only "Ростов"); otherwise each segment is
// inflected independently.
func inflectHyphenated(name string) string {
	parts := strings.Split(name, "-")
	joiner := -1
	for i := 1; i < len(parts); i++ {
		if strings.EqualFold(parts[i], "на") {
			joiner = i
			break
		}
	}
	if joiner > 0 {
		for i := 0; i < joiner; i++ {
			parts[i] = inflectToken(parts[i])
		}
		return strings.Join(parts, "-")
	}
	for i := range parts {
		parts[i] = inflectToken(parts[i])
	}
	return strings.Join(parts, "-")
}

func inflectToken(token string) string {
	switch {
	case hasAnySuffix(token, "о", "е", "ё", "и", "ы", "у", "ю"):
		// Indeclinable vowel class; also covers the conventionally
		// indeclinable -ово/-ево/-ино/-ыно place-name suffixes.
		return token
	case strings.HasSuffix(token, "ь"):
		return dropLastRune(token) + "и"
	case strings.HasSuffix(token, "а"):
		return dropLastRune(token) + "е"
	case strings.HasSuffix(token, "я"):
		return dropLastRune(token) + "е"
	case strings.HasSuffix(token, "й"):
		return dropLastRune(token) + "е"
	case strings.HasSuffix(token, "ск"):
		return token + "е"
	case hasAnySuffix(token, locativeConsonants...):
		return token + "е"
	}
	return token
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

func dropLastRune(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	return string(runes[:len(runes)-1])
}
