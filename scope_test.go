package htmltree_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/htmltree"
	"github.com/npillmayer/htmltree/attr"
	"github.com/npillmayer/htmltree/tags"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestScopedConstruction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.core")
	defer teardown()
	//
	page := tags.Div()
	htmltree.In(page, func() {
		tags.H1("Title")
		tags.P("Paragraph")
	})
	if page.Len() != 2 {
		t.Fatalf("expected 2 auto-attached children, have %d", page.Len())
	}
	out := htmltree.RenderCompact(page)
	if out != "<div><h1>Title</h1><p>Paragraph</p></div>" {
		t.Errorf("unexpected rendering %s", out)
	}
}

func TestScopeNesting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.core")
	defer teardown()
	//
	outer := tags.Div()
	htmltree.In(outer, func() {
		inner := tags.Section()
		htmltree.In(inner, func() {
			tags.P("deep")
		})
		tags.P("shallow")
	})
	out := htmltree.RenderCompact(outer)
	if out != "<div><section><p>deep</p></section><p>shallow</p></div>" {
		t.Errorf("unexpected rendering %s", out)
	}
}

func TestScopeExplicitParentingWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.core")
	defer teardown()
	//
	page := tags.Div()
	htmltree.In(page, func() {
		// P attaches to page at construction, then is reparented into the aside
		p := tags.P("moved")
		tags.Aside(p)
	})
	if page.Len() != 1 {
		t.Fatalf("expected only the aside under page, have %d children", page.Len())
	}
	out := htmltree.RenderCompact(page)
	if out != "<div><aside><p>moved</p></aside></div>" {
		t.Errorf("unexpected rendering %s", out)
	}
}

func TestScopeReleasedOnPanic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.core")
	defer teardown()
	//
	page := tags.Div()
	func() {
		defer func() { _ = recover() }()
		htmltree.In(page, func() {
			panic("boom")
		})
	}()
	if d := htmltree.Ambient().Depth(); d != 0 {
		t.Errorf("expected scope released after panicking body, depth is %d", d)
	}
}

func TestScopeEnterMultiple(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.core")
	defer teardown()
	//
	scope := htmltree.NewScope()
	restore := htmltree.UseScope(scope)
	defer restore()
	//
	outer, inner := tags.Div(), tags.Section()
	_ = outer.Add(inner)
	exit := scope.Enter(outer, inner)
	tags.P("hello") // attaches to the rightmost (innermost) element
	exit()
	if d := scope.Depth(); d != 0 {
		t.Fatalf("expected empty scope after release, depth is %d", d)
	}
	if inner.Len() != 1 {
		t.Errorf("expected paragraph under innermost element, has %d children", inner.Len())
	}
}

func TestIndependentScopes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.core")
	defer teardown()
	//
	page := tags.Div()
	htmltree.In(page, func() {
		scratch := htmltree.NewScope()
		restore := htmltree.UseScope(scratch)
		orphan := tags.P("independent")
		restore()
		if orphan.Parent() != nil {
			t.Error("expected node built under a fresh scope to stay unparented")
		}
	})
	if page.Len() != 0 {
		t.Errorf("expected nothing attached to page, has %d children", page.Len())
	}
}

func TestScopeRefusesVoidElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.core")
	defer teardown()
	//
	br := tags.Br()
	htmltree.In(br, func() {
		if d := htmltree.Ambient().Depth(); d != 0 {
			t.Errorf("expected void element not to open a scope, depth is %d", d)
		}
		p := tags.P("stray")
		if p.Parent() != nil {
			t.Error("expected no implicit parent under a refused void element")
		}
	})
	if br.Len() != 0 {
		t.Errorf("expected void element to stay empty, has %d children", br.Len())
	}
}

func TestAttach(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.core")
	defer teardown()
	//
	page := tags.Div()
	htmltree.In(page, func() {
		if err := htmltree.Attach(attr.Class("lead")); err != nil {
			t.Fatalf("attach failed: %v", err)
		}
	})
	if v := page.AttrValue("class", ""); v != "lead" {
		t.Errorf("expected attached class attribute, is %q", v)
	}
	err := htmltree.Attach(attr.Id("x"))
	if !errors.Is(err, htmltree.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument with no open element, got %v", err)
	}
}
