package scanner

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The grammar below covers the subset of C# a plain data object uses:
// using directives, a namespace (block or file scoped), class declarations
// with attributes and modifiers, auto-properties and fields with simple
// literal initializers. Method bodies and expression-bodied members are out
// of scope.

var csharpLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*|/\*(?s:.*?)\*/`},
	{Name: "String", Pattern: `"(\\.|[^"])*"`},
	{Name: "Number", Pattern: `[0-9][0-9_]*(\.[0-9]+)?[fFdDmMuUlL]*`},
	{Name: "Ident", Pattern: `@?[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[{}\[\]();:,.<>?=+\-*/&|!]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

var csharpParser = participle.MustBuild[SourceFile](
	participle.Lexer(csharpLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.UseLookahead(2),
)

// SourceFile is the root of the parsed unit. Classes outside any namespace
// are kept so extraction can report the missing namespace instead of a
// parse failure.
type SourceFile struct {
	Usings []*UsingDirective `parser:"@@*"`
	Decls  []*TopDecl        `parser:"@@*"`
}

type TopDecl struct {
	Namespace *NamespaceDecl `parser:"@@"`
	Class     *ClassDecl     `parser:"| @@"`
}

type UsingDirective struct {
	Static bool     `parser:"'using' @'static'?"`
	Path   []string `parser:"@Ident ('.' @Ident)* ';'"`
}

// NamespaceDecl accepts both block scoped and file scoped forms.
type NamespaceDecl struct {
	Name    []string     `parser:"'namespace' @Ident ('.' @Ident)*"`
	Classes []*ClassDecl `parser:"( ';' @@* | '{' @@* '}' )"`
}

type ClassDecl struct {
	Attributes []*AttributeGroup `parser:"@@*"`
	Modifiers  []string          `parser:"@( 'public' | 'internal' | 'sealed' | 'abstract' | 'partial' )*"`
	Name       string            `parser:"'class' @Ident"`
	Bases      []*TypeRef        `parser:"( ':' @@ ( ',' @@ )* )?"`
	Members    []*MemberDecl     `parser:"'{' @@* '}'"`
}

type AttributeGroup struct {
	Attributes []*Attribute `parser:"'[' @@ ( ',' @@ )* ']'"`
}

type Attribute struct {
	Name []string `parser:"@Ident ('.' @Ident)*"`
	Args []string `parser:"( '(' ( @( Ident | Number | String ) ( ',' @( Ident | Number | String ) )* )? ')' )?"`
}

// MemberDecl is either an auto-property or a field. Fields parse so a data
// class carrying one does not abort the run; extraction ignores them.
type MemberDecl struct {
	Attributes []*AttributeGroup `parser:"@@*"`
	Modifiers  []string          `parser:"@( 'public' | 'private' | 'protected' | 'internal' | 'static' | 'virtual' | 'override' | 'sealed' | 'new' | 'required' | 'readonly' )*"`
	Type       *TypeRef          `parser:"@@"`
	Name       string            `parser:"@Ident"`
	Property   *AccessorBlock    `parser:"( @@"`
	Field      *FieldRest        `parser:"| @@ )"`
}

type FieldRest struct {
	Init []string `parser:"( '=' @( Ident | Number | String | '.' | '(' | ')' | '-' )* )? ';'"`
}

type AccessorBlock struct {
	Accessors []*Accessor `parser:"'{' @@+ '}'"`
	Init      []string    `parser:"( '=' @( Ident | Number | String | '.' | '(' | ')' | '-' )* ';' )?"`
}

type Accessor struct {
	Modifiers []string `parser:"@( 'private' | 'protected' | 'internal' )*"`
	Kind      string   `parser:"@( 'get' | 'set' | 'init' ) ';'"`
}

// TypeRef keeps enough structure to reproduce the declared type text.
type TypeRef struct {
	Name     []string   `parser:"@Ident ('.' @Ident)*"`
	Args     []*TypeRef `parser:"( '<' @@ ( ',' @@ )* '>' )?"`
	Nullable bool       `parser:"@'?'?"`
	Array    []string   `parser:"( @'[' ']' )*"`
}

// String reassembles the declared type text.
func (t *TypeRef) String() string {
	var b strings.Builder
	b.WriteString(strings.Join(t.Name, "."))
	if len(t.Args) > 0 {
		b.WriteString("<")
		for i, a := range t.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(a.String())
		}
		b.WriteString(">")
	}
	if t.Nullable {
		b.WriteString("?")
	}
	b.WriteString(strings.Repeat("[]", len(t.Array)))
	return b.String()
}

// Parse parses C# source text into a syntax tree.
func Parse(src string) (*SourceFile, error) {
	return csharpParser.ParseString("", src)
}

func (m *MemberDecl) hasModifier(mod string) bool {
	for _, v := range m.Modifiers {
		if v == mod {
			return true
		}
	}
	return false
}
