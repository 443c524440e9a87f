package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional parameters to embed in the message (for example,
// "min" or "expected").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			if data["expected"] != "" {
				return data["expected"] + " が必要です"
			}
			return "型が不正です"
		case "required":
			return "必須の値が不足しています"
		case "constraint":
			return "制約に違反しています"
		case "too_small":
			return data["min"] + " 以上でなければなりません"
		case "too_big":
			return data["max"] + " 以下でなければなりません"
		case "too_short":
			return "長さは " + data["min"] + " 以上でなければなりません"
		case "too_long":
			return "長さは " + data["max"] + " 以下でなければなりません"
		case "pattern":
			return "パターン " + data["pattern"] + " に一致しません"
		case "invalid_enum":
			return "次のいずれかでなければなりません: " + data["options"]
		case "invalid_format":
			if data["detail"] != "" {
				return data["detail"]
			}
			return "形式が不正です"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			if data["expected"] != "" && data["got"] != "" {
				return "expected " + data["expected"] + ", got " + data["got"]
			}
			if data["expected"] != "" {
				return "expected " + data["expected"]
			}
			return "invalid type"
		case "required":
			return "required value missing"
		case "constraint":
			return "constraint violated"
		case "too_small":
			return "must be at least " + data["min"]
		case "too_big":
			return "must be at most " + data["max"]
		case "too_short":
			return "length must be at least " + data["min"]
		case "too_long":
			return "length must be at most " + data["max"]
		case "pattern":
			return "must match pattern " + data["pattern"]
		case "invalid_enum":
			return "must be one of: " + data["options"]
		case "invalid_format":
			if data["detail"] != "" {
				return data["detail"]
			}
			return "invalid format"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
