// Package token defines constants representing the lexical tokens of CQL3.
package token

import "strings"

// Token represents a lexical token.
type Token int

const (
	// Special tokens
	ILLEGAL Token = iota
	EOF
	COMMENT

	// Literals
	IDENT   // identifiers, quoted identifiers have Item.Quoted set
	STRING  // 'string' or $$string$$
	INTEGER // 123, -5 is MINUS INTEGER
	FLOAT   // 3.5, 1e10
	HEXNUM  // 0xCAFE
	UUID    // 5b6962dd-3f90-4c93-8f61-eabfa4a803e2

	// Operators
	PLUS     // +
	MINUS    // -
	ASTERISK // *
	SLASH    // /
	EQ       // =
	NEQ      // != or <>
	LT       // <
	GT       // >
	LTE      // <=
	GTE      // >=

	// Delimiters
	LPAREN    // (
	RPAREN    // )
	LBRACKET  // [
	RBRACKET  // ]
	LBRACE    // {
	RBRACE    // }
	COMMA     // ,
	DOT       // .
	SEMICOLON // ;
	COLON     // :
	QUESTION  // ?

	// Keywords
	keyword_beg
	ADD
	AGGREGATE
	ALL
	ALLOW
	ALTER
	AND
	APPLY
	AS
	ASC
	AUTHORIZE
	BATCH
	BEGIN
	BY
	CALLED
	CLUSTERING
	COMPACT
	CONTAINS
	COUNTER
	CREATE
	CUSTOM
	DEFAULT
	DELETE
	DESC
	DESCRIBE
	DISTINCT
	DROP
	DURABLE_WRITES
	ENTRIES
	EXECUTE
	EXISTS
	FALSE
	FILTERING
	FINALFUNC
	FROM
	FULL
	FUNCTION
	FUNCTIONS
	GRANT
	GROUP
	ID
	IF
	IN
	INDEX
	INITCOND
	INPUT
	INSERT
	INTO
	IS
	JSON
	KEY
	KEYS
	KEYSPACE
	KEYSPACES
	LANGUAGE
	LIKE
	LIMIT
	LIST
	LOGGED
	LOGIN
	MATERIALIZED
	MODIFY
	NORECURSIVE
	NOSUPERUSER
	NOT
	NULL
	OF
	ON
	OPTIONS
	OR
	ORDER
	PARTITION
	PASSWORD
	PER
	PERMISSION
	PERMISSIONS
	PRIMARY
	RENAME
	REPLACE
	REPLICATION
	RETURNS
	REVOKE
	ROLE
	ROLES
	SELECT
	SET
	SFUNC
	STATIC
	STORAGE
	STYPE
	SUPERUSER
	TABLE
	TIMESTAMP
	TO
	TRIGGER
	TRUE
	TRUNCATE
	TTL
	TYPE
	UNLOGGED
	UNSET
	UPDATE
	USE
	USER
	USING
	VALUES
	VIEW
	WHERE
	WITH
	keyword_end
)

var tokens = [...]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",
	COMMENT: "COMMENT",

	IDENT:   "IDENT",
	STRING:  "STRING",
	INTEGER: "INTEGER",
	FLOAT:   "FLOAT",
	HEXNUM:  "HEXNUM",
	UUID:    "UUID",

	PLUS:     "+",
	MINUS:    "-",
	ASTERISK: "*",
	SLASH:    "/",
	EQ:       "=",
	NEQ:      "<>",
	LT:       "<",
	GT:       ">",
	LTE:      "<=",
	GTE:      ">=",

	LPAREN:    "(",
	RPAREN:    ")",
	LBRACKET:  "[",
	RBRACKET:  "]",
	LBRACE:    "{",
	RBRACE:    "}",
	COMMA:     ",",
	DOT:       ".",
	SEMICOLON: ";",
	COLON:     ":",
	QUESTION:  "?",

	ADD:            "ADD",
	AGGREGATE:      "AGGREGATE",
	ALL:            "ALL",
	ALLOW:          "ALLOW",
	ALTER:          "ALTER",
	AND:            "AND",
	APPLY:          "APPLY",
	AS:             "AS",
	ASC:            "ASC",
	AUTHORIZE:      "AUTHORIZE",
	BATCH:          "BATCH",
	BEGIN:          "BEGIN",
	BY:             "BY",
	CALLED:         "CALLED",
	CLUSTERING:     "CLUSTERING",
	COMPACT:        "COMPACT",
	CONTAINS:       "CONTAINS",
	COUNTER:        "COUNTER",
	CREATE:         "CREATE",
	CUSTOM:         "CUSTOM",
	DEFAULT:        "DEFAULT",
	DELETE:         "DELETE",
	DESC:           "DESC",
	DESCRIBE:       "DESCRIBE",
	DISTINCT:       "DISTINCT",
	DROP:           "DROP",
	DURABLE_WRITES: "DURABLE_WRITES",
	ENTRIES:        "ENTRIES",
	EXECUTE:        "EXECUTE",
	EXISTS:         "EXISTS",
	FALSE:          "FALSE",
	FILTERING:      "FILTERING",
	FINALFUNC:      "FINALFUNC",
	FROM:           "FROM",
	FULL:           "FULL",
	FUNCTION:       "FUNCTION",
	FUNCTIONS:      "FUNCTIONS",
	GRANT:          "GRANT",
	GROUP:          "GROUP",
	ID:             "ID",
	IF:             "IF",
	IN:             "IN",
	INDEX:          "INDEX",
	INITCOND:       "INITCOND",
	INPUT:          "INPUT",
	INSERT:         "INSERT",
	INTO:           "INTO",
	IS:             "IS",
	JSON:           "JSON",
	KEY:            "KEY",
	KEYS:           "KEYS",
	KEYSPACE:       "KEYSPACE",
	KEYSPACES:      "KEYSPACES",
	LANGUAGE:       "LANGUAGE",
	LIKE:           "LIKE",
	LIMIT:          "LIMIT",
	LIST:           "LIST",
	LOGGED:         "LOGGED",
	LOGIN:          "LOGIN",
	MATERIALIZED:   "MATERIALIZED",
	MODIFY:         "MODIFY",
	NORECURSIVE:    "NORECURSIVE",
	NOSUPERUSER:    "NOSUPERUSER",
	NOT:            "NOT",
	NULL:           "NULL",
	OF:             "OF",
	ON:             "ON",
	OPTIONS:        "OPTIONS",
	OR:             "OR",
	ORDER:          "ORDER",
	PARTITION:      "PARTITION",
	PASSWORD:       "PASSWORD",
	PER:            "PER",
	PERMISSION:     "PERMISSION",
	PERMISSIONS:    "PERMISSIONS",
	PRIMARY:        "PRIMARY",
	RENAME:         "RENAME",
	REPLACE:        "REPLACE",
	REPLICATION:    "REPLICATION",
	RETURNS:        "RETURNS",
	REVOKE:         "REVOKE",
	ROLE:           "ROLE",
	ROLES:          "ROLES",
	SELECT:         "SELECT",
	SET:            "SET",
	SFUNC:          "SFUNC",
	STATIC:         "STATIC",
	STORAGE:        "STORAGE",
	STYPE:          "STYPE",
	SUPERUSER:      "SUPERUSER",
	TABLE:          "TABLE",
	TIMESTAMP:      "TIMESTAMP",
	TO:             "TO",
	TRIGGER:        "TRIGGER",
	TRUE:           "TRUE",
	TRUNCATE:       "TRUNCATE",
	TTL:            "TTL",
	TYPE:           "TYPE",
	UNLOGGED:       "UNLOGGED",
	UNSET:          "UNSET",
	UPDATE:         "UPDATE",
	USE:            "USE",
	USER:           "USER",
	USING:          "USING",
	VALUES:         "VALUES",
	VIEW:           "VIEW",
	WHERE:          "WHERE",
	WITH:           "WITH",
}

// reserved keywords can never stand in for an unquoted identifier.
var reserved = map[Token]bool{
	ALLOW:    true,
	AND:      true,
	APPLY:    true,
	AS:       true,
	ASC:      true,
	BATCH:    true,
	BEGIN:    true,
	BY:       true,
	CONTAINS: true,
	CREATE:   true,
	DELETE:   true,
	DESC:     true,
	DROP:     true,
	FALSE:    true,
	FROM:     true,
	GRANT:    true,
	IF:       true,
	IN:       true,
	INSERT:   true,
	INTO:     true,
	IS:       true,
	LIMIT:    true,
	NOT:      true,
	NULL:     true,
	OF:       true,
	ON:       true,
	OR:       true,
	ORDER:    true,
	PRIMARY:  true,
	REVOKE:   true,
	SELECT:   true,
	SET:      true,
	TO:       true,
	TRUE:     true,
	TRUNCATE: true,
	UPDATE:   true,
	USE:      true,
	USING:    true,
	VALUES:   true,
	WHERE:    true,
	WITH:     true,
}

func (tok Token) String() string {
	if tok >= 0 && int(tok) < len(tokens) {
		return tokens[tok]
	}
	return ""
}

// Keywords maps keyword strings to their token types.
var Keywords map[string]Token

func init() {
	Keywords = make(map[string]Token)
	for i := keyword_beg + 1; i < keyword_end; i++ {
		Keywords[tokens[i]] = i
	}
}

// Lookup returns the token type for an identifier string.
// Keywords are matched case-insensitively; anything else is IDENT.
func Lookup(ident string) Token {
	if tok, ok := Keywords[strings.ToUpper(ident)]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword returns true if the token is a keyword.
func (tok Token) IsKeyword() bool {
	return tok > keyword_beg && tok < keyword_end
}

// IsReserved reports whether the keyword must be quoted to be used as a name.
func (tok Token) IsReserved() bool {
	return reserved[tok]
}

// Position represents a source position.
type Position struct {
	Offset int // byte offset
	Line   int // line number (1-based)
	Column int // column number (1-based)
}

// IsValid reports whether the position was set by the lexer.
func (p Position) IsValid() bool {
	return p.Line > 0
}
