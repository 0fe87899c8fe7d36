package ui

import "testing"

func TestLocalizationDefaultsToEnglish(t *testing.T) {
	l := NewLocalization()

	if l.GetLanguage() != "en" {
		t.Errorf("Expected default language en, got %s", l.GetLanguage())
	}
	if got := l.GetText(KeyExecute); got != "Execute" {
		t.Errorf("Expected Execute, got %s", got)
	}
}

func TestLocalizationSetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("ru")
	if got := l.GetText(KeyCancel); got != "Отмена" {
		t.Errorf("Expected Russian cancel label, got %s", got)
	}

	// Unknown languages keep the current one
	l.SetLanguage("xx")
	if l.GetLanguage() != "ru" {
		t.Errorf("Expected language to stay ru, got %s", l.GetLanguage())
	}

	// System maps to English
	l.SetLanguage("system")
	if l.GetLanguage() != "en" {
		t.Errorf("Expected system to resolve to en, got %s", l.GetLanguage())
	}
}

func TestLocalizationFallbacks(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Expected key fallback, got %s", got)
	}
}

func TestLocalizationComplete(t *testing.T) {
	l := NewLocalization()

	for key := range l.texts["en"] {
		for _, lang := range []string{"ru", "pt"} {
			if _, ok := l.texts[lang][key]; !ok {
				t.Errorf("Missing %s translation for %s", lang, key)
			}
		}
	}
}
