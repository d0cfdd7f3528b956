package dom

import (
	"strings"
	"testing"
)

const page = `<!DOCTYPE html><html><head><title>t</title></head><body>
<div id="clock-row"><span class="a b">one</span><p class="b">two <em>x</em></p></div>
<div class="b" id="other"></div></body></html>`

func TestByIDAndQueryClass(t *testing.T) {
	doc, err := ParseString(page)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	row := ByID(doc, "clock-row")
	if row == nil {
		t.Fatalf("expected clock-row")
	}
	if ByID(doc, "missing") != nil {
		t.Fatalf("expected nil for missing id")
	}

	matches := QueryClass(row, "b")
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches under row, got %d", len(matches))
	}
	if got := Text(matches[1]); got != "two x" {
		t.Fatalf("unexpected text: %q", got)
	}
	if len(QueryClass(doc, "b")) != 3 {
		t.Fatalf("expected 3 matches in document")
	}
	if FirstClass(row, "a") != matches[0] {
		t.Fatalf("FirstClass mismatch")
	}
	if FirstClass(row, "zzz") != nil {
		t.Fatalf("expected nil for unknown class")
	}
}

func TestElementAttributesAndText(t *testing.T) {
	el := Element("div", "class", "clock-column block", "data-timezone", "Asia/Tokyo", "dangling")
	if !HasClass(el, "clock-column") || !HasClass(el, "block") || HasClass(el, "clock") {
		t.Fatalf("unexpected class matching: %#v", el.Attr)
	}
	if v, ok := Attr(el, "data-timezone"); !ok || v != "Asia/Tokyo" {
		t.Fatalf("unexpected attr: %q %v", v, ok)
	}
	if _, ok := Attr(el, "dangling"); ok {
		t.Fatalf("dangling attribute should be ignored")
	}

	SetAttr(el, "data-timezone", "UTC")
	if v, _ := Attr(el, "data-timezone"); v != "UTC" {
		t.Fatalf("expected replaced attr, got %q", v)
	}
	if len(el.Attr) != 2 {
		t.Fatalf("expected attribute to be replaced in place, got %#v", el.Attr)
	}

	child := Element("time")
	Append(el, child, nil)
	SetText(child, "12:00")
	SetText(child, "<13:00>")
	if got := Text(el); got != "<13:00>" {
		t.Fatalf("unexpected text: %q", got)
	}

	out, err := RenderString(el)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, `<time>&lt;13:00&gt;</time>`) {
		t.Fatalf("expected escaped text, got %s", out)
	}
	if len(Children(el)) != 1 {
		t.Fatalf("expected one child element")
	}

	Clear(el)
	if el.FirstChild != nil {
		t.Fatalf("expected no children after Clear")
	}
}
