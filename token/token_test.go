package token

import (
	"testing"
)

func TestCreateToken(t *testing.T) {
	tests := []struct {
		name string
		got  Token
		want Token
	}{
		{
			name: "semicolon",
			got:  CreateToken(SEMICOLON, ";", 1, 5),
			want: Token{Type: SEMICOLON, Lexeme: ";", Line: 1, Column: 5},
		},
		{
			name: "becomes",
			got:  CreateToken(BECOMES, ":=", 2, 0),
			want: Token{Type: BECOMES, Lexeme: ":=", Line: 2, Column: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}

func TestCreateNumberToken(t *testing.T) {
	got := CreateNumberToken(42, "42", 3, 1)
	want := Token{Type: NUMBER, Lexeme: "42", Value: 42, Line: 3, Column: 1}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestKeyWordsCaseFolding(t *testing.T) {
	for _, kw := range []string{"BEGIN", "END", "PROCEDURE", "ODD", "WRITE", "DEBUG"} {
		if _, ok := KeyWords[kw]; !ok {
			t.Errorf("KeyWords missing entry for %s", kw)
		}
	}
}
