package usecase

import (
	"errors"
	"strings"
	"testing"

	"smart-todo/internal/assistant"
)

func TestValidateText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    string
		wantErr error
	}{
		{name: "empty", text: "", wantErr: assistant.ErrEmptyText},
		{name: "whitespace only", text: "   \n\t", wantErr: assistant.ErrEmptyText},
		{name: "single rune", text: "a", wantErr: assistant.ErrTextTooShort},
		{name: "single hangul padded", text: "  밥 ", wantErr: assistant.ErrTextTooShort},
		{name: "two runes", text: "운동", want: "운동"},
		{name: "trimmed", text: "  내일 회의  ", want: "내일 회의"},
		{name: "exactly 500", text: strings.Repeat("가", 500), want: strings.Repeat("가", 500)},
		{name: "501 runes", text: strings.Repeat("가", 501), wantErr: assistant.ErrTextTooLong},
		{name: "noise", text: "!!!@@@###a", wantErr: assistant.ErrTextTooNoisy},
		{name: "emoji heavy", text: "🎉🎉🎉🎉 파티", wantErr: assistant.ErrTextTooNoisy},
		{name: "one emoji", text: "🎉 생일 파티 준비", want: "🎉 생일 파티 준비"},
		{name: "some punctuation", text: "회의 준비!!", want: "회의 준비!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validateText(tt.text)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("validateText(%q) error = %v, want %v", tt.text, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("validateText(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
