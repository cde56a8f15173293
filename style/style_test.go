package style_test

import (
	"testing"

	"github.com/npillmayer/htmltree/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestKV(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.style")
	defer teardown()
	//
	kv := style.KV("font_size", "20 px")
	if kv.Key != "font-size" {
		t.Errorf("expected dash-normalized key, is %q", kv.Key)
	}
	if kv.String() != "font-size: 20 px;" {
		t.Errorf("unexpected declaration form %q", kv.String())
	}
}

func TestDeclarations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.style")
	defer teardown()
	//
	kvs := style.Declarations("color: black; font-size: 12px")
	if len(kvs) != 2 {
		t.Fatalf("expected 2 declarations, have %d", len(kvs))
	}
	if kvs[0].Key != "color" || kvs[0].Value != "black" {
		t.Errorf("unexpected first declaration %v", kvs[0])
	}
	if kvs[1].Key != "font-size" || kvs[1].Value != "12px" {
		t.Errorf("unexpected second declaration %v", kvs[1])
	}
}

func TestDeclarationsTrailingSemicolonOptional(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.style")
	defer teardown()
	//
	terminated := style.Declarations("color: black; font-size: 12px;")
	open := style.Declarations("color: black; font-size: 12px")
	if len(open) != len(terminated) {
		t.Fatalf("expected %d declarations, have %d", len(terminated), len(open))
	}
	for i := range terminated {
		if open[i] != terminated[i] {
			t.Errorf("expected declaration %d to be %v, is %v", i, terminated[i], open[i])
		}
	}
	if open[1].Value != "12px" {
		t.Errorf("expected final value kept without trailing semicolon, is %q", open[1].Value)
	}
}

func TestDeclarationsImportant(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.style")
	defer teardown()
	//
	kvs := style.Declarations("color: red !important;")
	if len(kvs) != 1 {
		t.Fatalf("expected 1 declaration, have %d", len(kvs))
	}
	if kvs[0].Value != "red !important" {
		t.Errorf("expected priority kept with the value, is %q", kvs[0].Value)
	}
}

func TestJoin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.style")
	defer teardown()
	//
	out := style.Join([]style.KeyValue{
		style.KV("color", "black"),
		style.KV("font-size", "20 px"),
	})
	if out != "color: black;font-size: 20 px;" {
		t.Errorf("expected pairs concatenated with no separating space, got %q", out)
	}
}
