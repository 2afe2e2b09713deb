// Package dom is a small server-side document model: an x/net/html node tree
// plus event listeners and a timer loop, enough to run the page widgets
// outside a browser and render the result.
package dom

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrInvalidCharacter is the panic value El uses for tag names the HTML
// parser could never produce.
var ErrInvalidCharacter = errors.New("dom: invalid character in tag name")

// Attrs is the attribute map accepted by El. Values are strings, except for
// on* keys which take a Listener or func(*Event).
type Attrs map[string]any

// Listener handles a dispatched event.
type Listener func(ev *Event)

// Event is passed to listeners during Dispatch.
type Event struct {
	Type          string
	Target        *html.Node
	CurrentTarget *html.Node

	stopped bool
}

// StopPropagation keeps the event from reaching ancestors of CurrentTarget.
func (e *Event) StopPropagation() { e.stopped = true }

// Document owns a node tree and every listener attached to it. It is not safe
// for concurrent use; all mutation happens on the goroutine that owns it.
type Document struct {
	Loop

	root      *html.Node
	listeners map[*html.Node]map[string][]Listener
}

// New returns an empty HTML document.
func New() *Document {
	doc, err := Parse(strings.NewReader("<!DOCTYPE html><html><head></head><body></body></html>"))
	if err != nil {
		panic(err)
	}
	return doc
}

// Parse builds a Document from HTML source.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return &Document{root: root, listeners: make(map[*html.Node]map[string][]Listener)}, nil
}

// Root is the document node. Listeners attached here see every bubbling event.
func (d *Document) Root() *html.Node { return d.root }

// Body returns the body element, or nil.
func (d *Document) Body() *html.Node {
	return find(d.root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == atom.Body
	})
}

// GetElementByID returns the first element with the given id, or nil.
func (d *Document) GetElementByID(id string) *html.Node {
	if id == "" {
		return nil
	}
	return find(d.root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && Attr(n, "id") == id
	})
}

// QueryAll returns the descendants of n matching a CSS selector.
func (d *Document) QueryAll(n *html.Node, selector string) []*html.Node {
	if n == nil {
		return nil
	}
	return goquery.NewDocumentFromNode(n).Find(selector).Nodes
}

// Contains reports whether n is ancestor or ancestor-or-self of other.
func (d *Document) Contains(n, other *html.Node) bool {
	for p := other; p != nil; p = p.Parent {
		if p == n {
			return true
		}
	}
	return false
}

// El creates an element. The class key sets the class attribute, on* keys
// holding a listener register it for the rest of the key, anything else is
// set as an attribute. Children may be strings, nodes, node slices or nil.
func (d *Document) El(tag string, attrs Attrs, children ...any) *html.Node {
	if !validTagName(tag) {
		panic(fmt.Errorf("%w: %q", ErrInvalidCharacter, tag))
	}
	name := strings.ToLower(tag)
	n := &html.Node{Type: html.ElementNode, Data: name, DataAtom: atom.Lookup([]byte(name))}

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := attrs[k]
		if strings.HasPrefix(k, "on") && len(k) > 2 {
			if fn, ok := asListener(v); ok {
				d.AddEventListener(n, k[2:], fn)
				continue
			}
		}
		SetAttr(n, k, fmt.Sprint(v))
	}

	d.Append(n, children...)
	return n
}

// Append adds children to n in order, skipping nils. Nodes that already have
// a parent are moved.
func (d *Document) Append(n *html.Node, children ...any) {
	for _, c := range children {
		switch c := c.(type) {
		case nil:
		case string:
			n.AppendChild(&html.Node{Type: html.TextNode, Data: c})
		case *html.Node:
			if c == nil {
				continue
			}
			if c.Parent != nil {
				c.Parent.RemoveChild(c)
			}
			n.AppendChild(c)
		case []*html.Node:
			for _, cc := range c {
				d.Append(n, cc)
			}
		default:
			n.AppendChild(&html.Node{Type: html.TextNode, Data: fmt.Sprint(c)})
		}
	}
}

// Prepend inserts child as the first child of n.
func (d *Document) Prepend(n, child *html.Node) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	n.InsertBefore(child, n.FirstChild)
}

// Clear removes all children of n along with their listeners.
func (d *Document) Clear(n *html.Node) {
	if n == nil {
		return
	}
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		d.forget(c)
		n.RemoveChild(c)
		c = next
	}
}

// SetText replaces the children of n with a single text node.
func (d *Document) SetText(n *html.Node, text string) {
	if n == nil {
		return
	}
	d.Clear(n)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// SetInnerHTML replaces the children of n with parsed markup. Use it only for
// trusted or sanitized markup.
func (d *Document) SetInnerHTML(n *html.Node, markup string) error {
	nodes, err := html.ParseFragment(strings.NewReader(markup), n)
	if err != nil {
		return fmt.Errorf("parse fragment: %w", err)
	}
	d.Clear(n)
	for _, c := range nodes {
		n.AppendChild(c)
	}
	return nil
}

// AddEventListener registers fn for events of type typ on n.
func (d *Document) AddEventListener(n *html.Node, typ string, fn Listener) {
	if n == nil || fn == nil {
		return
	}
	byType := d.listeners[n]
	if byType == nil {
		byType = make(map[string][]Listener)
		d.listeners[n] = byType
	}
	byType[typ] = append(byType[typ], fn)
}

// Dispatch fires an event at target and bubbles it to the document root.
// Clicks on disabled elements are dropped, as browsers do.
func (d *Document) Dispatch(target *html.Node, typ string) {
	if target == nil {
		return
	}
	if typ == "click" && HasAttr(target, "disabled") {
		return
	}
	ev := &Event{Type: typ, Target: target}
	for n := target; n != nil && !ev.stopped; n = n.Parent {
		fns := d.listeners[n][typ]
		if len(fns) == 0 {
			continue
		}
		ev.CurrentTarget = n
		for _, fn := range append([]Listener(nil), fns...) {
			fn(ev)
		}
	}
}

// Click is shorthand for Dispatch(n, "click").
func (d *Document) Click(n *html.Node) { d.Dispatch(n, "click") }

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// OuterHTML renders a single node.
func OuterHTML(n *html.Node) string {
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		return ""
	}
	return b.String()
}

func (d *Document) forget(n *html.Node) {
	delete(d.listeners, n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.forget(c)
	}
}

func asListener(v any) (Listener, bool) {
	switch fn := v.(type) {
	case Listener:
		return fn, fn != nil
	case func(*Event):
		return fn, fn != nil
	case func():
		return func(*Event) { fn() }, fn != nil
	}
	return nil, false
}

func validTagName(tag string) bool {
	if tag == "" {
		return false
	}
	for i, r := range tag {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '-' || r == '_' || r == '.' || r == ':'):
		default:
			return false
		}
	}
	return true
}

func find(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := find(c, match); found != nil {
			return found
		}
	}
	return nil
}
