package usecase

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"smart-todo/internal/assistant"
)

const (
	minTextRunes = 2
	maxTextRunes = 500
)

// validateText trims text and rejects input the model should never see.
func validateText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", assistant.ErrEmptyText
	}

	n := utf8.RuneCountInString(text)
	if n < minTextRunes {
		return "", assistant.ErrTextTooShort
	}
	if n > maxTextRunes {
		return "", assistant.ErrTextTooLong
	}

	noise := 0
	for _, r := range text {
		if !isMeaningfulRune(r) {
			noise++
		}
	}
	if noise*2 > n {
		return "", assistant.ErrTextTooNoisy
	}

	return text, nil
}

func isMeaningfulRune(r rune) bool {
	switch {
	case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
		return true
	case unicode.Is(unicode.Hangul, r):
		return true
	case unicode.IsSpace(r):
		return true
	}
	return false
}
