package css_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/htmltree"
	"github.com/npillmayer/htmltree/attr"
	"github.com/npillmayer/htmltree/css"
	"github.com/npillmayer/htmltree/tags"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func selectorPage() *htmltree.Element {
	return tags.Div(attr.Class("page"),
		tags.P("first", attr.Class("lead")),
		tags.Section(
			tags.P("second"),
			tags.Ul(
				tags.Li("one"),
				tags.Li("two", attr.Id("special")),
			),
		),
	)
}

func TestSelectByTag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.css")
	defer teardown()
	//
	hits, err := css.Select(selectorPage(), "p")
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if len(hits) != 2 {
		t.Fatalf("expected 2 paragraphs, have %d", len(hits))
	}
	if el := hits[0].(*htmltree.Element); el.AttrValue("class", "") != "lead" {
		t.Error("expected document order, lead paragraph first")
	}
}

func TestSelectByClassAndId(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.css")
	defer teardown()
	//
	page := selectorPage()
	hits, err := css.Select(page, "p.lead")
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if len(hits) != 1 {
		t.Errorf("expected 1 lead paragraph, have %d", len(hits))
	}
	hits, err = css.Select(page, "#special")
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if len(hits) != 1 || hits[0].(*htmltree.Element).Tag() != "li" {
		t.Error("expected the special list item")
	}
}

func TestSelectCombinators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.css")
	defer teardown()
	//
	page := selectorPage()
	hits, err := css.Select(page, "section > p")
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if len(hits) != 1 {
		t.Errorf("expected 1 direct paragraph child of section, have %d", len(hits))
	}
	hits, err = css.Select(page, "ul li:first-child")
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if len(hits) != 1 {
		t.Errorf("expected 1 first list item, have %d", len(hits))
	}
}

func TestSelectMatchesRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.css")
	defer teardown()
	//
	page := selectorPage()
	hits, err := css.Select(page, "div.page")
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if len(hits) != 1 || hits[0] != htmltree.Node(page) {
		t.Error("expected the root element itself to be selectable")
	}
}

func TestSelectContainerTransparent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.css")
	defer teardown()
	//
	g := htmltree.Merge(tags.P("a"), tags.P("b"))
	hits, err := css.Select(g, "p")
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if len(hits) != 2 {
		t.Errorf("expected both grouped paragraphs, have %d", len(hits))
	}
}

func TestSelectBadExpression(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.css")
	defer teardown()
	//
	_, err := css.Select(selectorPage(), "p[")
	if !errors.Is(err, htmltree.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for a bad selector, got %v", err)
	}
}
