package token

type TokenType string

type Token struct {
	Type    TokenType
	Lexeme  string      // Raw text from source
	Literal interface{} // Parsed value (identifier name)
	Line    int
	Column  int
}

const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	// Identifiers
	IDENT       TokenType = "IDENT"       // zero, suc, x
	IDENT_UPPER TokenType = "IDENT_UPPER" // Nat, Vec
	UNDERSCORE  TokenType = "_"

	// Delimiters
	COMMA  TokenType = ","
	COLON  TokenType = ":"
	LPAREN TokenType = "("
	RPAREN TokenType = ")"

	// Keywords
	TYPE  TokenType = "TYPE"  // Type
	SIGMA TokenType = "SIGMA" // Sigma
)

var keywords = map[string]TokenType{
	"Type":  TYPE,
	"Sigma": SIGMA,
	"_":     UNDERSCORE,
}

// LookupIdent returns the keyword type of ident, or IDENT / IDENT_UPPER
// depending on its first letter.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	if len(ident) > 0 && 'A' <= ident[0] && ident[0] <= 'Z' {
		return IDENT_UPPER
	}
	return IDENT
}

// IsIdentifier reports whether t names something: a value, a type or a
// constructor.
func IsIdentifier(t TokenType) bool {
	return t == IDENT || t == IDENT_UPPER
}
