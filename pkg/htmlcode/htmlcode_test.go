package htmlcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate_RendersSiblingsInOrder(t *testing.T) {
	out, err := Create(func(d *Document) {
		d.NewElement("script", func(e *Element) {
			e.Attr("type", "text/javascript")
			e.Text("if (a < b && c) { draw(); }")
		})
		d.NewElement("div", func(e *Element) {
			e.Attr("id", "chart_1")
			e.Attr("style", "float:left;width:10px;height:20px;")
		})
	})
	require.NoError(t, err)
	assert.Equal(t,
		`<script type="text/javascript">if (a < b && c) { draw(); }</script>`+
			`<div id="chart_1" style="float:left;width:10px;height:20px;"></div>`,
		out)
}

func TestElement_EscapesTextAndAttributes(t *testing.T) {
	out, err := Create(func(d *Document) {
		d.NewElement("td", func(e *Element) {
			e.Attr("title", `say "hi"`)
			e.Text("<b>&</b>")
		})
	})
	require.NoError(t, err)
	assert.Equal(t, `<td title="say &#34;hi&#34;">&lt;b&gt;&amp;&lt;/b&gt;</td>`, out)
}

func TestElement_ScriptCannotCloseEarly(t *testing.T) {
	out, err := Create(func(d *Document) {
		d.NewElement("script", func(e *Element) { e.Text("x = '</script>';") })
	})
	require.NoError(t, err)
	assert.Equal(t, `<script>x = '<\/script>';</script>`, out)
}

func TestElement_AttrReplaces(t *testing.T) {
	out, err := Create(func(d *Document) {
		d.NewElement("div", func(e *Element) {
			e.Attr("id", "a").Attr("id", "b")
		})
	})
	require.NoError(t, err)
	assert.Equal(t, `<div id="b"></div>`, out)
}

func TestElement_Nested(t *testing.T) {
	out, err := Create(func(d *Document) {
		d.NewElement("tr", func(tr *Element) {
			tr.NewElement("td", func(td *Element) { td.Text("1") })
			tr.NewElement("td", nil)
		})
	})
	require.NoError(t, err)
	assert.Equal(t, `<tr><td>1</td><td></td></tr>`, out)
}
