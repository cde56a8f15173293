package htmltree_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/htmltree"
	"github.com/npillmayer/htmltree/attr"
	"github.com/npillmayer/htmltree/tags"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestRenderPretty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.core")
	defer teardown()
	//
	div := tags.Div(tags.H1("Title"), tags.P("Paragraph"), attr.Class("container"), tags.Hr())
	want := "<div class=\"container\">\n" +
		"  <h1>\n" +
		"    Title\n" +
		"  </h1>\n" +
		"  <p>\n" +
		"    Paragraph\n" +
		"  </p>\n" +
		"  <hr>\n" +
		"</div>"
	require.Equal(t, want, htmltree.Render(div))
}

func TestRenderCompact(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.core")
	defer teardown()
	//
	div := tags.Div(tags.H1("Header"))
	require.Equal(t, "<div><h1>Header</h1></div>", htmltree.RenderCompact(div))
}

func TestRenderEmptyElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.core")
	defer teardown()
	//
	require.Equal(t, "<p>\n</p>", htmltree.Render(tags.P()))
	require.Equal(t, "<p></p>", htmltree.RenderCompact(tags.P()))
}

func TestRenderVoidElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.core")
	defer teardown()
	//
	require.Equal(t, "<br>", htmltree.Render(tags.Br()))
	img := tags.Img(attr.Src("x.png"), attr.Alt("an image"))
	require.Equal(t, `<img src="x.png" alt="an image">`, htmltree.RenderCompact(img))
}

func TestRenderBooleanAttribute(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.core")
	defer teardown()
	//
	in := tags.Input(attr.Type("checkbox"), attr.Checked())
	require.Equal(t, `<input type="checkbox" checked>`, htmltree.RenderCompact(in))
}

func TestRenderComment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.core")
	defer teardown()
	//
	c := tags.Comment("note to self")
	require.Equal(t, "<!--\n  note to self\n-->", htmltree.Render(c))
	require.Equal(t, "<!--note to self-->", htmltree.RenderCompact(c))
}

func TestRenderConditionalComment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.core")
	defer teardown()
	//
	c := tags.Comment("This is conditional comment").WithCondition("IE 8")
	want := "<!--[if IE 8]>\n" +
		"  This is conditional comment\n" +
		"<![endif]-->"
	require.Equal(t, want, htmltree.Render(c))
	require.Equal(t, "<!--[if IE 8]>This is conditional comment<![endif]-->",
		htmltree.RenderCompact(c))
}

func TestRenderSiblingMerge(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.core")
	defer teardown()
	//
	g := htmltree.Merge(tags.P("First"), tags.P("Second"))
	require.Equal(t, "<p>First</p><p>Second</p>", htmltree.RenderCompact(g))
	require.Equal(t, "<p>\n  First\n</p>\n<p>\n  Second\n</p>", htmltree.Render(g))
}

func TestRenderReplication(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.core")
	defer teardown()
	//
	g, err := htmltree.Repeat(tags.P("Paragraph"), 3)
	require.NoError(t, err)
	require.Equal(t, strings.Repeat("<p>Paragraph</p>", 3), htmltree.RenderCompact(g))
	//
	first, err := g.Child(0)
	require.NoError(t, err)
	first.(*htmltree.Element).MustAdd(" changed")
	require.Equal(t, "<p>Paragraph changed</p><p>Paragraph</p><p>Paragraph</p>",
		htmltree.RenderCompact(g))
}

func TestRenderIndexMutation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.core")
	defer teardown()
	//
	div := tags.Div(tags.P("a"), tags.Br(), tags.P("b"))
	require.NoError(t, div.SetChild(2, tags.Strong("x")))
	require.NoError(t, div.DeleteChild(1))
	require.Equal(t, "<div><p>a</p><strong>x</strong></div>", htmltree.RenderCompact(div))
}

func TestRenderEscaping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.core")
	defer teardown()
	//
	p := tags.P("a < b & c > d")
	require.Equal(t, "<p>a &lt; b &amp; c &gt; d</p>", htmltree.RenderCompact(p))
	a := tags.A(attr.Href(`/q?x=1&y="2"`), "link")
	require.Equal(t, `<a href="/q?x=1&amp;y=&#34;2&#34;">link</a>`, htmltree.RenderCompact(a))
}

func TestRenderDeterministic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.core")
	defer teardown()
	//
	div := tags.Div(attr.Id("d"), tags.P("x"), tags.Comment("c"))
	require.Equal(t, htmltree.Render(div), htmltree.Render(div))
	require.Equal(t, htmltree.RenderCompact(div), htmltree.RenderCompact(div))
	require.NotEqual(t, htmltree.Render(div), htmltree.RenderCompact(div))
}

func TestRenderWithOptions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.core")
	defer teardown()
	//
	div := tags.Div(tags.P("x"))
	out := htmltree.RenderWith(div, htmltree.Options{Pretty: true, Indent: "\t"})
	require.Equal(t, "<div>\n\t<p>\n\t\tx\n\t</p>\n</div>", out)
}

func TestWrite(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.core")
	defer teardown()
	//
	var sb strings.Builder
	err := htmltree.Write(&sb, tags.Div(tags.P("x")), htmltree.Options{})
	require.NoError(t, err)
	require.Equal(t, "<div><p>x</p></div>", sb.String())
}
