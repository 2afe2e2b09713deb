package render

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/Bitlatte/tripcard/internal/dom"
)

var transportIconSVG = map[Transport]string{
	TransportPlane: `<svg viewBox="0 0 24 24"><path d="M2.5 13L21 7l-3.5 6 3.5 6-18.5-6 6-2-6-2z" fill="currentColor"/></svg>`,
	TransportTrain: `<svg viewBox="0 0 24 24"><path d="M5 3h14a2 2 0 012 2v8a4 4 0 01-4 4l2 2v1h-2l-3-3H10l-3 3H5v-1l2-2a4 4 0 01-4-4V5a2 2 0 012-2zm1 2v6h12V5H6zm1 9h10a2 2 0 002-2H5a2 2 0 002 2z" fill="currentColor"/></svg>`,
	TransportCar:   `<svg viewBox="0 0 24 24"><path d="M5 11l1.2-3.6A3 3 0 019 6h6a3 3 0 012.8 1.4L19 11h1a2 2 0 012 2v5h-2a2 2 0 01-4 0H8a2 2 0 01-4 0H2v-5a2 2 0 012-2h1zm2.3-3l-.6 2h10.6l-.7-2a1 1 0 00-.9-.7H9a1 1 0 00-.9.7z" fill="currentColor"/></svg>`,
	TransportBus:   `<svg viewBox="0 0 24 24"><path d="M6 3h12a3 3 0 013 3v9a2 2 0 01-2 2v3h-2v-3H7v3H5v-3a2 2 0 01-2-2V6a3 3 0 013-3zm-1 5v4h14V8H5zm2 7a1 1 0 100 2 1 1 0 000-2zm10 0a1 1 0 100 2 1 1 0 000-2z" fill="currentColor"/></svg>`,
}

var tagIconSVG = map[string]string{
	"plane":    `<svg viewBox="0 0 24 24"><path d="M2.5 13L21 7l-3.5 6 3.5 6-18.5-6 6-2-6-2z" fill="currentColor"/></svg>`,
	"train":    `<svg viewBox="0 0 24 24"><path d="M5 3h14a2 2 0 012 2v9a3 3 0 01-3 3l1 2v1h-2l-2-3H10l-2 3H6v-1l1-2a3 3 0 01-3-3V5a2 2 0 012-2zm1 2v6h12V5H6z" fill="currentColor"/></svg>`,
	"car":      `<svg viewBox="0 0 24 24"><path d="M5 11l1.2-3.6A3 3 0 019 6h6a3 3 0 012.8 1.4L19 11h1a2 2 0 012 2v5h-2a2 2 0 01-4 0H8a2 2 0 01-4 0H2v-5a2 2 0 012-2h1z" fill="currentColor"/></svg>`,
	"bag":      `<svg viewBox="0 0 24 24"><path d="M8 6V5a4 4 0 118 0v1h3a2 2 0 012 2v11a2 2 0 01-2 2H5a2 2 0 01-2-2V8a2 2 0 012-2h3zm2 0h4V5a2 2 0 00-4 0v1z" fill="currentColor"/></svg>`,
	"hotel":    `<svg viewBox="0 0 24 24"><path d="M4 11V5a2 2 0 012-2h12a2 2 0 012 2v6h1a1 1 0 011 1v7h-2v-2H4v2H2v-7a1 1 0 011-1h1zm2-6v6h12V5H6zm1 9h4v-2H7v2zm6 0h4v-2h-4v2z" fill="currentColor"/></svg>`,
	"food":     `<svg viewBox="0 0 24 24"><path d="M6 3h2v7h2V3h2v7h2V3h2v10h-2v8H8v-8H6V3zm12 0h3v8a3 3 0 01-3 3v-3h-1V3h1z" fill="currentColor"/></svg>`,
	"relax":    `<svg viewBox="0 0 24 24"><path d="M12 3a6 6 0 016 6v2h2v8a2 2 0 01-2 2h-3l-1-2h-4l-1 2H6a2 2 0 01-2-2v-8h2V9a6 6 0 016-6zm0 2a4 4 0 00-4 4v2h8V9a4 4 0 00-4-4z" fill="currentColor"/></svg>`,
	"scenic":   `<svg viewBox="0 0 24 24"><path d="M3 17l4-5 3 4 4-6 7 9H3zm9-9a3 3 0 110-6 3 3 0 010 6z" fill="currentColor"/></svg>`,
	"alert":    `<svg viewBox="0 0 24 24"><path d="M2 20l10-16 10 16H2zm10-3a1.5 1.5 0 100 3 1.5 1.5 0 000-3zm-1-7v5h2v-5h-2z" fill="currentColor"/></svg>`,
	"activity": `<svg viewBox="0 0 24 24"><path d="M12 2l2.5 6.5L21 9l-4.5 4 1.5 6-5-3.5L8 19l1.5-6L5 9l6.5-.5L12 2z" fill="currentColor"/></svg>`,
}

// setIcon fills el with a built-in icon. The icon tables are fixed markup, so
// a parse failure is a programming error and panics.
func setIcon(doc *dom.Document, el *html.Node, svg string) {
	if err := doc.SetInnerHTML(el, svg); err != nil {
		panic(fmt.Sprintf("render: built-in icon: %v", err))
	}
}
