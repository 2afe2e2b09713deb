package dom

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestElAppliesAttrsAndChildren(t *testing.T) {
	doc := New()
	clicks := 0
	n := doc.El("button", Attrs{"class": "chip active", "type": "button", "onclick": func(*Event) { clicks++ }},
		"全部", nil, doc.El("span", nil, "x"))

	assert.Equal(t, "button", n.Data)
	assert.Equal(t, "chip active", Attr(n, "class"))
	assert.Equal(t, "button", Attr(n, "type"))
	assert.False(t, HasAttr(n, "onclick"))
	assert.Equal(t, "全部x", Text(n))
	assert.Len(t, Children(n), 1)

	doc.Click(n)
	assert.Equal(t, 1, clicks)
}

func TestElPanicsOnInvalidTag(t *testing.T) {
	doc := New()
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, ErrInvalidCharacter)
	}()
	doc.El("1div", nil)
}

func TestDispatchBubblesAndStops(t *testing.T) {
	doc := New()
	var order []string
	outer := doc.El("div", Attrs{"onclick": func(*Event) { order = append(order, "outer") }})
	inner := doc.El("button", Attrs{"onclick": func(ev *Event) { order = append(order, "inner") }})
	doc.Append(outer, inner)
	doc.Append(doc.Body(), outer)
	doc.AddEventListener(doc.Root(), "click", func(*Event) { order = append(order, "document") })

	doc.Click(inner)
	assert.Equal(t, []string{"inner", "outer", "document"}, order)

	order = nil
	doc.AddEventListener(inner, "click", func(ev *Event) { ev.StopPropagation() })
	doc.Click(inner)
	assert.Equal(t, []string{"inner"}, order)
}

func TestDispatchSkipsDisabled(t *testing.T) {
	doc := New()
	fired := false
	btn := doc.El("button", Attrs{"disabled": "", "onclick": func(*Event) { fired = true }})
	doc.Click(btn)
	assert.False(t, fired)
}

func TestClearDropsListeners(t *testing.T) {
	doc := New()
	box := doc.El("div", nil)
	child := doc.El("span", Attrs{"onclick": func(*Event) {}})
	doc.Append(box, child)
	require.Len(t, doc.listeners, 1)

	doc.Clear(box)
	assert.Nil(t, box.FirstChild)
	assert.Empty(t, doc.listeners)
}

func TestParseLookupAndQuery(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<html><body><div id="chips"><button class="chip">a</button><button class="chip active">b</button></div></body></html>`))
	require.NoError(t, err)

	chips := doc.GetElementByID("chips")
	require.NotNil(t, chips)
	assert.Len(t, doc.QueryAll(chips, ".chip"), 2)
	assert.Len(t, doc.QueryAll(chips, ".chip.active"), 1)
	assert.Nil(t, doc.GetElementByID("missing"))
	assert.True(t, doc.Contains(doc.Body(), chips))
	assert.False(t, doc.Contains(chips, doc.Body()))
}

func TestClassHelpers(t *testing.T) {
	n := &html.Node{Type: html.ElementNode, Data: "div"}
	AddClass(n, "open")
	AddClass(n, "open")
	assert.Equal(t, "open", Attr(n, "class"))
	assert.False(t, ToggleClass(n, "open"))
	assert.True(t, ToggleClass(n, "open"))
	RemoveClass(n, "open")
	assert.False(t, HasClass(n, "open"))
}

func TestSetInnerHTMLAndRender(t *testing.T) {
	doc := New()
	span := doc.El("span", Attrs{"class": "tag-icon"})
	require.NoError(t, doc.SetInnerHTML(span, `<svg viewBox="0 0 24 24"><path d="M0 0"/></svg>`))
	doc.Append(doc.Body(), span)

	var b strings.Builder
	require.NoError(t, doc.Render(&b))
	assert.Contains(t, b.String(), `<span class="tag-icon"><svg viewBox="0 0 24 24">`)
}

func TestLoopAdvanceFiresInOrder(t *testing.T) {
	var l Loop
	var fired []string
	l.SetTimeout(1400*time.Millisecond, func() { fired = append(fired, "restore") })
	l.SetTimeout(100*time.Millisecond, func() { fired = append(fired, "early") })

	l.Advance(1399 * time.Millisecond)
	assert.Equal(t, []string{"early"}, fired)
	assert.Equal(t, 1, l.Pending())

	l.Advance(time.Millisecond)
	assert.Equal(t, []string{"early", "restore"}, fired)
	assert.Zero(t, l.Pending())
}
