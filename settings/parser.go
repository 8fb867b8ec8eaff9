package settings

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	settingsLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "HashComment", Pattern: `#[^\n]*`},
		{Name: "Number", Pattern: `[-+]?(?:\d+\.\d*|\.\d+|\d+)`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `[\[\]:;,{}]`},
	})

	fileParser = participle.MustBuild[File](
		participle.Lexer(settingsLexer),
		participle.Elide("Whitespace", "LineComment", "HashComment"),
	)
)

// File 是设置文件的根节点，可以直接书写条目，也可以包在 cardfit { ... } 中。
type File struct {
	Pos  lexer.Position `parser:"" json:"-"`
	Body *Body          `parser:"Newline* @@? Newline*"`
}

// Body 区分两种书写方式。
type Body struct {
	Wrapped *Wrapped `parser:"  @@"`
	Entries []*Entry `parser:"| ( @@ ( ';' | Newline )* )*"`
}

// Wrapped 对应 cardfit { ... } 形式。
type Wrapped struct {
	Entries []*Entry `parser:"'cardfit' '{' Newline* ( @@ ( ';' | Newline )* )* '}'"`
}

// Entry 是一条 key: value 设置。
type Entry struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Key   string         `parser:"@Ident"`
	Value *Value         `parser:"':' Newline* @@"`
}

// Value 是设置值：字符串、数字、布尔或数组。
type Value struct {
	String *StringLiteral `parser:"  @String"`
	Number *float64       `parser:"| @Number"`
	Bool   *Boolean       `parser:"| @( 'true' | 'false' )"`
	Array  *ArrayValue    `parser:"| @@"`
}

// ArrayValue 捕获 [ ... ]，元素之间可用逗号或换行分隔。
type ArrayValue struct {
	Values []*Value `parser:"'[' Newline* ( @@ ( ( ',' | Newline+ ) Newline* @@ )* )? ','? Newline* ']'"`
}

// StringLiteral 在捕获时去掉引号。
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Boolean 捕获 true/false。
type Boolean bool

// Capture implements participle.Capture.
func (b *Boolean) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("boolean capture requires value")
	}
	*b = values[0] == "true"
	return nil
}

// Parse 从 io.Reader 解析设置文件。
func Parse(r io.Reader) (*File, error) {
	return fileParser.Parse("", r)
}

// ParseString 从字符串解析设置文件。
func ParseString(input string) (*File, error) {
	return fileParser.ParseString("", input)
}

// Entries 返回文件中的全部条目，与书写方式无关。
func (f *File) Entries() []*Entry {
	if f == nil || f.Body == nil {
		return nil
	}
	if f.Body.Wrapped != nil {
		return f.Body.Wrapped.Entries
	}
	return f.Body.Entries
}
