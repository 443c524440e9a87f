package i18n_test

import (
	"testing"

	"github.com/coaxlib/coax/i18n"
)

func TestEnglishMessages(t *testing.T) {
	if got := i18n.T("required", nil); got != "required value missing" {
		t.Fatalf("required: %q", got)
	}
	if got := i18n.T("too_small", map[string]string{"min": "18"}); got != "must be at least 18" {
		t.Fatalf("too_small: %q", got)
	}
	if got := i18n.T("invalid_type", map[string]string{"expected": "string", "got": "number"}); got != "expected string, got number" {
		t.Fatalf("invalid_type: %q", got)
	}
}

func TestUnknownCodeFallsBackToCode(t *testing.T) {
	if got := i18n.T("no_such_code", nil); got != "no_such_code" {
		t.Fatalf("got %q", got)
	}
}

func TestLanguageSwitch(t *testing.T) {
	i18n.SetLanguage("ja")
	defer i18n.SetLanguage("en")
	if got := i18n.T("required", nil); got != "必須の値が不足しています" {
		t.Fatalf("ja required: %q", got)
	}
}

type fixedTranslator struct{}

func (fixedTranslator) Message(code string, data map[string]string) string {
	return "msg:" + code
}

func TestCustomTranslator(t *testing.T) {
	i18n.SetTranslator(fixedTranslator{})
	defer i18n.SetTranslator(nil)
	if got := i18n.T("required", nil); got != "msg:required" {
		t.Fatalf("got %q", got)
	}
}
