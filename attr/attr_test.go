package attr_test

import (
	"testing"

	"github.com/npillmayer/htmltree"
	"github.com/npillmayer/htmltree/attr"
	"github.com/npillmayer/htmltree/style"
	"github.com/npillmayer/htmltree/tags"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNamedNormalization(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.core")
	defer teardown()
	//
	if s := attr.Named("id_", "new_id").String(); s != `id="new_id"` {
		t.Errorf("expected reserved-word suffix stripped, got %s", s)
	}
	if s := attr.Named("accept_charset", "utf-8").String(); s != `accept-charset="utf-8"` {
		t.Errorf("expected underscore restored to dash, got %s", s)
	}
	if s := attr.Named("checked", true).String(); s != "checked" {
		t.Errorf("expected boolean attribute as bare name, got %s", s)
	}
}

func TestClassMultiValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.core")
	defer teardown()
	//
	if s := attr.Class("new_class", "second_class").String(); s != `class="new_class second_class"` {
		t.Errorf("unexpected class rendering %s", s)
	}
	p := tags.P(attr.Class("one"))
	_ = p.Add(attr.Class("two"))
	if v := p.AttrValue("class", ""); v != "one two" {
		t.Errorf("expected re-added class merged, is %q", v)
	}
}

func TestDataAndAria(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.core")
	defer teardown()
	//
	if s := attr.Data("row", 1).String(); s != `data-row="1"` {
		t.Errorf("unexpected data attribute %s", s)
	}
	if s := attr.Aria("hidden", "true").String(); s != `aria-hidden="true"` {
		t.Errorf("unexpected aria attribute %s", s)
	}
}

func TestStyleAttribute(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.core")
	defer teardown()
	//
	a := attr.Style("color: black;", style.KV("font_size", "20 px"))
	if v := a.Value(); v != "color: black;font-size: 20 px;" {
		t.Errorf("expected declarations concatenated, got %q", v)
	}
}

func TestStyleAttributeMergesOnAdd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.core")
	defer teardown()
	//
	p := tags.P("x", attr.Style("color: black;"))
	if err := p.Add(attr.Style(style.KV("font_size", "20 px"))); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	out := htmltree.RenderCompact(p)
	if out != `<p style="color: black;font-size: 20 px;">x</p>` {
		t.Errorf("unexpected rendering %s", out)
	}
}

func TestStyleRejectsUnknownItems(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.core")
	defer teardown()
	//
	defer func() {
		if recover() == nil {
			t.Error("expected Style with an unclassifiable item to panic")
		}
	}()
	attr.Style(42)
}

func TestBooleanConstructors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.core")
	defer teardown()
	//
	in := tags.Input(attr.Type("text"), attr.Required(), attr.Disabled())
	out := htmltree.RenderCompact(in)
	if out != `<input type="text" required disabled>` {
		t.Errorf("unexpected rendering %s", out)
	}
}
