package parser

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/tobsdb/primdb/internal/types"
)

// Command is one line of the command language. Exactly one field is set.
type Command struct {
	CreateTable *CreateTable `  "create_table" @@`
	DropTable   *TableRef    `| "drop_table" @@`
	ListTables  bool         `| @"list_tables"`
	Info        *TableRef    `| "info" @@`
	Insert      *Insert      `| "insert" "into" @@`
	Select      *Select      `| "select" "from" @@`
	Update      *Update      `| "update" @@`
	Delete      *Delete      `| "delete" "from" @@`
	Help        bool         `| @"help"`
	Exit        bool         `| @( "exit" | "quit" )`
}

type TableRef struct {
	Table string `@Ident`
}

type CreateTable struct {
	Table   string        `@Ident`
	Columns []*ColumnSpec `@@*`
}

type ColumnSpec struct {
	Name string `@Ident`
	Kind string `( ":" @Ident )?`
}

// Raw gives back the "name:kind" text, or just the name when no kind was written.
func (c *ColumnSpec) Raw() string {
	if c.Kind == "" {
		return c.Name
	}
	return c.Name + ":" + c.Kind
}

type Insert struct {
	Table  string   `@Ident "values" "("`
	Values []*Value `( @@ ( "," @@ )* )? ")"`
}

type Select struct {
	Table string     `@Ident`
	Where *Condition `( "where" @@ )?`
}

type Update struct {
	Table string        `@Ident "set"`
	Set   []*Assignment `@@ ( "," @@ )*`
	Where *Condition    `( "where" @@ )?`
}

type Delete struct {
	Table string     `@Ident`
	Where *Condition `( "where" @@ )?`
}

type Condition struct {
	Column string `@Ident "="`
	Value  *Value `@@`
}

type Assignment struct {
	Column string `@Ident "="`
	Value  *Value `@@`
}

type Value struct {
	String *string `  @String`
	Number *string `| @Number`
	Word   *string `| @Ident`
}

// Raw is the value as typed, quotes included.
func (v *Value) Raw() string {
	switch {
	case v.String != nil:
		return *v.String
	case v.Number != nil:
		return *v.Number
	case v.Word != nil:
		return *v.Word
	}
	return ""
}

// Unquoted is the value with one layer of quotes removed.
func (v *Value) Unquoted() string { return types.Unquote(v.Raw()) }

// Where turns an optional condition into a predicate map; nil means no filter.
func (c *Condition) Where() map[string]any {
	if c == nil {
		return nil
	}
	return map[string]any{c.Column: c.Value.Unquoted()}
}

var command_lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"[^"]*"|'[^']*'`},
	{Name: "Number", Pattern: `[-+]?\d+(\.\d+)?`},
	{Name: "Ident", Pattern: `[\p{L}_][\p{L}\p{N}_]*`},
	{Name: "Punct", Pattern: `[(),=:]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var command_parser = participle.MustBuild[Command](
	participle.Lexer(command_lexer),
	participle.Elide("Whitespace"),
	participle.CaseInsensitive("Ident"),
)

// ParseCommand parses a single command line.
func ParseCommand(line string) (*Command, error) {
	line = strings.TrimSpace(line)
	if len(line) == 0 {
		return nil, fmt.Errorf("empty command")
	}
	cmd, err := command_parser.ParseString("", line)
	if err != nil {
		return nil, fmt.Errorf("invalid command %q: %w", line, err)
	}
	return cmd, nil
}

// Grammar returns the EBNF of the command language, shown by help.
func Grammar() string {
	return command_parser.String()
}
