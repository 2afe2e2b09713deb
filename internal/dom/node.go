package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Attr returns the value of attribute key, or "".
func Attr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

// HasAttr reports whether n carries attribute key.
func HasAttr(n *html.Node, key string) bool {
	if n == nil {
		return false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return true
		}
	}
	return false
}

// SetAttr sets or replaces attribute key.
func SetAttr(n *html.Node, key, val string) {
	if n == nil {
		return
	}
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr drops attribute key if present.
func RemoveAttr(n *html.Node, key string) {
	if n == nil {
		return
	}
	out := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			continue
		}
		out = append(out, a)
	}
	n.Attr = out
}

// Text returns the concatenated text content of n.
func Text(n *html.Node) string {
	if n == nil {
		return ""
	}
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(Text(c))
	}
	return b.String()
}

// Classes returns the class list of n.
func Classes(n *html.Node) []string {
	return strings.Fields(Attr(n, "class"))
}

// HasClass reports whether n has class c.
func HasClass(n *html.Node, c string) bool {
	for _, x := range Classes(n) {
		if x == c {
			return true
		}
	}
	return false
}

// AddClass adds c to the class list of n.
func AddClass(n *html.Node, c string) {
	if n == nil || HasClass(n, c) {
		return
	}
	SetAttr(n, "class", strings.TrimSpace(Attr(n, "class")+" "+c))
}

// RemoveClass drops c from the class list of n.
func RemoveClass(n *html.Node, c string) {
	if n == nil || !HasClass(n, c) {
		return
	}
	var keep []string
	for _, x := range Classes(n) {
		if x != c {
			keep = append(keep, x)
		}
	}
	SetAttr(n, "class", strings.Join(keep, " "))
}

// ToggleClass flips c on n and reports whether it is now present.
func ToggleClass(n *html.Node, c string) bool {
	if HasClass(n, c) {
		RemoveClass(n, c)
		return false
	}
	AddClass(n, c)
	return HasClass(n, c)
}

// Children returns the element children of n.
func Children(n *html.Node) []*html.Node {
	var out []*html.Node
	if n == nil {
		return out
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}
