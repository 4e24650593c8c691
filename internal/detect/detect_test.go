package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSniff(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Format
	}{
		{name: "empty", input: "", want: Unknown},
		{name: "whitespace only", input: " \n\t\n", want: Unknown},
		{name: "comma", input: "a,b,c\n1,2,3\n", want: CSV},
		{name: "tab", input: "a\tb\n1\t2\n", want: TSV},
		{name: "semicolon with decimal commas", input: "name;price\nfoo;1,5\nbar;2,25\n", want: Semicolon},
		{name: "pipe", input: "a|b\n1|2\n", want: Pipe},
		{name: "single column", input: "name\nfoo\nbar\n", want: CSV},
		{name: "quoted commas ignored", input: "a;b\n\"x, y\";2\n", want: Semicolon},
		{name: "json object", input: `{"columns":["a"]}`, want: JSON},
		{name: "json array", input: "  [1,2,3]", want: JSON},
		{name: "crlf", input: "a,b\r\n1,2\r\n", want: CSV},
		{name: "truncated last line", input: "a\tb\n1\t2\n3", want: TSV},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sniff([]byte(tt.input)))
		})
	}
}

func TestFormat_Comma(t *testing.T) {
	assert.Equal(t, ',', CSV.Comma())
	assert.Equal(t, '\t', TSV.Comma())
	assert.Equal(t, ';', Semicolon.Comma())
	assert.Equal(t, '|', Pipe.Comma())
	assert.Equal(t, rune(0), JSON.Comma())
	assert.Equal(t, "semicolon", Semicolon.String())
}
