package token

import "fmt"

type (
	Kind int

	// Token is produced by the scanner and never mutated after.
	// Pos is a byte offset into the source, kept for diagnostics.
	Token struct {
		Kind   Kind
		Lexeme string
		Pos    int
	}
)

const (
	Int Kind = iota
	Plus
	Times
	Pow
	LParen
	RParen
	End
	Unrecognized
)

var kindNames = []string{"Int", "Plus", "Times", "Pow", "LParen", "RParen", "End", "Unrecognized"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

func (t Token) String() string {
	if t.Lexeme == "" {
		return t.Kind.String()
	}

	return fmt.Sprintf("%v %q", t.Kind, t.Lexeme)
}
