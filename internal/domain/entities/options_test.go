package entities

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseOptionPath(t *testing.T) {
	cases := []struct {
		path string
		want []string
	}{
		{"buyer.email", []string{"buyer", "email"}},
		{"[buyer][email]", []string{"buyer", "email"}},
		{"payment.differedActionDate", []string{"payment", "differedActionDate"}},
		{"a[b].c", []string{"a", "b", "c"}},
		{"[a].b", []string{"a", "b"}},
		{"single", []string{"single"}},
		{"[with.dot][x]", []string{"with.dot", "x"}},
		{"  padded.path  ", []string{"padded", "path"}},
	}
	for _, tc := range cases {
		got, err := ParseOptionPath(tc.path)
		if err != nil {
			t.Fatalf("ParseOptionPath(%q) unexpected err: %v", tc.path, err)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("ParseOptionPath(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestParseOptionPath_Invalid(t *testing.T) {
	for _, path := range []string{"", "   ", "a..b", ".a", "a.", "[a", "a]", "[]", "[a[b]]"} {
		if _, err := ParseOptionPath(path); !errors.Is(err, ErrInvalidOptionPath) {
			t.Fatalf("ParseOptionPath(%q) err = %v, want ErrInvalidOptionPath", path, err)
		}
	}
}

func TestOptionsSet_DotAndBracketAreEquivalent(t *testing.T) {
	dotted := Options{}
	bracketed := Options{}
	if err := dotted.Set("buyer.email", "a@b.c"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := bracketed.Set("[buyer][email]", "a@b.c"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(dotted, bracketed) {
		t.Fatalf("dotted %v != bracketed %v", dotted, bracketed)
	}
	want := Options{"buyer": Options{"email": "a@b.c"}}
	if !reflect.DeepEqual(dotted, want) {
		t.Fatalf("got %v, want %v", dotted, want)
	}
}

func TestOptionsSet_KeepsSiblings(t *testing.T) {
	o := Options{"buyer": map[string]any{"firstName": "Ada"}}
	if err := o.Set("buyer.lastName", "Lovelace"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v, _ := o.Get("buyer.firstName"); v != "Ada" {
		t.Fatalf("firstName = %v, want Ada", v)
	}
	if v, _ := o.Get("[buyer][lastName]"); v != "Lovelace" {
		t.Fatalf("lastName = %v, want Lovelace", v)
	}
}

func TestOptionsSet_ScalarBlocksPath(t *testing.T) {
	o := Options{"buyer": "not a section"}
	if err := o.Set("buyer.email", "x"); !errors.Is(err, ErrInvalidOptionPath) {
		t.Fatalf("err = %v, want ErrInvalidOptionPath", err)
	}
}

func TestOptionsGet_Missing(t *testing.T) {
	o := Options{"a": Options{"b": 1}}
	if _, ok := o.Get("a.c"); ok {
		t.Fatalf("expected a.c to be missing")
	}
	if _, ok := o.Get("a.b.c"); ok {
		t.Fatalf("expected a.b.c to be missing, a.b is a scalar")
	}
	if _, ok := o.Get("a..b"); ok {
		t.Fatalf("invalid path should not resolve")
	}
}

func TestDeepMerge_OverlayAddsNestedKey(t *testing.T) {
	base := Options{"payment": Options{"amount": 1000, "currency": 978}}
	overlay := Options{}
	if err := overlay.Set("payment.differedActionDate", "24/03/2026"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	merged := DeepMerge(base, overlay)

	if v, _ := merged.Get("payment.amount"); v != 1000 {
		t.Fatalf("payment.amount = %v, want 1000", v)
	}
	if v, _ := merged.Get("payment.currency"); v != 978 {
		t.Fatalf("payment.currency = %v, want 978", v)
	}
	if v, _ := merged.Get("payment.differedActionDate"); v != "24/03/2026" {
		t.Fatalf("payment.differedActionDate = %v", v)
	}
}

func TestDeepMerge_LeafConflictOverlayWins(t *testing.T) {
	base := Options{"payment": Options{"mode": "CPT"}, "languageCode": "fr"}
	overlay := Options{"payment": map[string]any{"mode": "DIF"}, "languageCode": "en"}

	merged := DeepMerge(base, overlay)

	if v, _ := merged.Get("payment.mode"); v != "DIF" {
		t.Fatalf("payment.mode = %v, want DIF", v)
	}
	if merged["languageCode"] != "en" {
		t.Fatalf("languageCode = %v, want en", merged["languageCode"])
	}
}

func TestDeepMerge_DoesNotMutateInputs(t *testing.T) {
	base := Options{"order": Options{"ref": "ORD-1"}}
	overlay := Options{"order": Options{"taxes": 10}}

	merged := DeepMerge(base, overlay)
	if err := merged.Set("order.country", "FR"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, ok := base.Get("order.taxes"); ok {
		t.Fatalf("base was mutated: %v", base)
	}
	if _, ok := base.Get("order.country"); ok {
		t.Fatalf("base was mutated: %v", base)
	}
	if _, ok := overlay.Get("order.country"); ok {
		t.Fatalf("overlay was mutated: %v", overlay)
	}
}

func TestDeepMerge_NilBase(t *testing.T) {
	merged := DeepMerge(nil, Options{"a": 1})
	if merged["a"] != 1 {
		t.Fatalf("merged = %v", merged)
	}
}

func TestClone_IsDeep(t *testing.T) {
	orig := Options{"list": []any{map[string]any{"k": "v"}}, "section": Options{"x": 1}}
	cp := orig.Clone()

	cp["section"].(Options)["x"] = 2
	cp["list"].([]any)[0].(Options)["k"] = "changed"

	if orig["section"].(Options)["x"] != 1 {
		t.Fatalf("section shared with clone")
	}
	if orig["list"].([]any)[0].(map[string]any)["k"] != "v" {
		t.Fatalf("list entry shared with clone")
	}
}

func TestClone_CopiesTypedSectionLists(t *testing.T) {
	entries := []map[string]any{{"key": "cart_id", "value": "42"}}
	sections := []Options{{"key": "order_type", "value": "web"}}
	orig := Options{"entries": entries, "sections": sections}
	cp := orig.Clone()

	entries[0]["value"] = "changed"
	sections[0]["value"] = "changed"

	if got := cp["entries"].([]map[string]any)[0]["value"]; got != "42" {
		t.Fatalf("entries shared with clone: %v", got)
	}
	if got := cp["sections"].([]Options)[0]["value"]; got != "web" {
		t.Fatalf("sections shared with clone: %v", got)
	}
}

func TestOptionsSet_NilReceiver(t *testing.T) {
	var o Options
	if err := o.Set("buyer.email", "a@b.c"); !errors.Is(err, ErrNilOptions) {
		t.Fatalf("expected ErrNilOptions, got %v", err)
	}
}
