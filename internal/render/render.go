// Package render maps itinerary fragments to DOM subtrees. Every renderer
// clears its target before appending, so re-rendering replaces content.
package render

import (
	"golang.org/x/net/html"

	"github.com/Bitlatte/tripcard/internal/dom"
	"github.com/Bitlatte/tripcard/internal/model"
)

// AllDays is passed to a chip filter when the "all" chip is selected.
const AllDays = -1

// AllChipLabel is the text of the chip that shows every day.
const AllChipLabel = "全部"

// KV renders one row per overview entry, in source order.
func KV(doc *dom.Document, target *html.Node, overview model.Overview) {
	if target == nil {
		return
	}
	doc.Clear(target)
	for _, e := range overview {
		doc.Append(target, doc.El("div", dom.Attrs{"class": "row"},
			doc.El("span", nil, e.Key),
			doc.El("span", nil, e.Value),
		))
	}
}

// Notes renders advisory cards: optional badge, title and a bullet list.
func Notes(doc *dom.Document, target *html.Node, notes []model.Note) {
	if target == nil {
		return
	}
	doc.Clear(target)
	for _, n := range notes {
		var badge *html.Node
		if n.Badge != nil {
			badge = doc.El("span", dom.Attrs{"class": "badge " + n.Badge.Type}, n.Badge.Text)
		}
		title := doc.El("div", dom.Attrs{"class": "title"}, badge, doc.El("span", nil, n.Title))

		body := doc.El("ul", nil)
		for _, line := range n.Content {
			doc.Append(body, doc.El("li", nil, line))
		}
		doc.Append(target, doc.El("div", dom.Attrs{"class": "note"}, title, body))
	}
}

// Timeline renders one article.day per day with its item blocks.
func Timeline(doc *dom.Document, target *html.Node, days []model.Day) {
	if target == nil {
		return
	}
	doc.Clear(target)
	for _, day := range days {
		head := doc.El("div", dom.Attrs{"class": "day-head"},
			doc.El("div", dom.Attrs{"class": "left"},
				doc.El("span", dom.Attrs{"class": "date"}, day.Date),
				doc.El("span", dom.Attrs{"class": "route"}, day.Route),
			),
		)
		body := doc.El("div", dom.Attrs{"class": "day-body"})
		for _, item := range day.Items {
			doc.Append(body, timelineItem(doc, item))
		}
		doc.Append(target, doc.El("article", dom.Attrs{"class": "day"}, head, body))
	}
}

func timelineItem(doc *dom.Document, item model.Item) *html.Node {
	info := doc.El("div", dom.Attrs{"class": "item-info"},
		doc.El("div", nil,
			doc.El("div", dom.Attrs{"class": "time"}, item.Time),
			doc.El("div", dom.Attrs{"class": "label"}, item.Title),
		),
	)
	if icon := TransportIcon(doc, item); icon != nil {
		doc.Prepend(info, icon)
	}

	meta := doc.El("div", dom.Attrs{"class": "meta"})
	for _, tag := range item.Tags {
		doc.Append(meta, TagChip(doc, tag))
	}

	return doc.El("div", dom.Attrs{"class": "item"},
		doc.El("div", dom.Attrs{"class": "item-top"}, info),
		doc.El("div", dom.Attrs{"class": "desc"}, item.Desc),
		meta,
	)
}

// TransportIcon returns the icon span for the item's travel mode, or nil.
func TransportIcon(doc *dom.Document, item model.Item) *html.Node {
	mode := DetectTransport(item)
	if mode == TransportNone {
		return nil
	}
	span := doc.El("span", dom.Attrs{"class": "transport-icon " + string(mode), "aria-hidden": "true"})
	setIcon(doc, span, transportIconSVG[mode])
	return span
}

// TagChip renders a tag with its category icon when one matches.
func TagChip(doc *dom.Document, tag string) *html.Node {
	span := doc.El("span", dom.Attrs{"class": "tag"})
	if name := DetectTagIcon(tag); name != "" {
		if svg, ok := tagIconSVG[name]; ok {
			icon := doc.El("span", dom.Attrs{"class": "tag-icon " + name})
			setIcon(doc, icon, svg)
			doc.Append(span, icon)
		}
	}
	doc.Append(span, tag)
	return span
}

// Chips renders the "all" chip plus one chip per day. Selecting a chip makes
// it the only active one and calls onFilter with AllDays or the day index.
// When href is non-nil chips become links to pre-rendered filter pages.
func Chips(doc *dom.Document, target *html.Node, days []model.Day, onFilter func(day int), href func(day int) string) {
	if target == nil {
		return
	}
	doc.Clear(target)

	chip := func(label string, day int) *html.Node {
		attrs := dom.Attrs{"class": "chip", "type": "button"}
		tag := "button"
		if href != nil {
			tag = "a"
			attrs = dom.Attrs{"class": "chip", "role": "button", "href": href(day)}
		}
		n := doc.El(tag, attrs, label)
		doc.AddEventListener(n, "click", func(*dom.Event) {
			for _, x := range doc.QueryAll(target, ".chip") {
				dom.RemoveClass(x, "active")
			}
			dom.AddClass(n, "active")
			if onFilter != nil {
				onFilter(day)
			}
		})
		return n
	}

	all := chip(AllChipLabel, AllDays)
	dom.AddClass(all, "active")
	doc.Append(target, all)
	for i, day := range days {
		doc.Append(target, chip(day.Date, i))
	}
}
