package jscode

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_BlockIndentsBody(t *testing.T) {
	got := Create(func(w *Writer) {
		w.Block("function draw()", func(w *Writer) {
			w.Linef("var x = %d;", 1)
			w.Line("draw(x);")
		})
	})
	assert.Equal(t, "function draw() {\n    var x = 1;\n    draw(x);\n}\n", got)
}

func TestWriter_WriteWithoutArgsIsVerbatim(t *testing.T) {
	w := New()
	w.Write("var pct = '100%';")
	assert.Equal(t, "var pct = '100%';", w.String())
}

func TestWriter_WritefFormats(t *testing.T) {
	w := New()
	w.Writef("%s(%d);", "draw", 2).NewLine().Linef("var s = %q;", "x")
	assert.Equal(t, "draw(2);\nvar s = \"x\";\n", w.String())
}

func TestWriter_BlockHeaderIsVerbatim(t *testing.T) {
	got := Create(func(w *Writer) {
		w.Block("if (pct === '50%')", func(w *Writer) {
			w.Line("done();")
		})
	})
	assert.Equal(t, "if (pct === '50%') {\n    done();\n}\n", got)
}

func TestWriter_NewLineChains(t *testing.T) {
	w := New()
	w.NewLine().Write("a();").NewLine().NewLine()
	assert.Equal(t, "\na();\n\n", w.String())
}

func TestLiteral_EscapesScriptTerminator(t *testing.T) {
	lit, err := Literal("</script><b>")
	require.NoError(t, err)
	assert.NotContains(t, lit, "</script>")
	assert.Equal(t, `"\u003c/script\u003e\u003cb\u003e"`, lit)
}

func TestLiteral_RejectsNaN(t *testing.T) {
	_, err := Literal(math.NaN())
	assert.Error(t, err)
}
