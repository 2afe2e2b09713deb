// Package moodboard renders the photo gallery: a shuffled first batch, with
// the rest held back behind a reveal control.
package moodboard

import (
	"math/rand/v2"

	"golang.org/x/net/html"

	"github.com/Bitlatte/tripcard/internal/dom"
	"github.com/Bitlatte/tripcard/internal/model"
)

// InitialCount is how many shots are shown before the reveal.
const InitialCount = 6

// RevealedLabel replaces the reveal control's text once used.
const RevealedLabel = "已展开"

// Shuffle returns a Fisher-Yates permutation of list. The input is untouched.
func Shuffle(rng *rand.Rand, list []model.MoodboardShot) []model.MoodboardShot {
	out := append([]model.MoodboardShot(nil), list...)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Board is a live moodboard bound to its grid, reveal button and overlay.
type Board struct {
	doc       *dom.Document
	grid      *html.Node
	button    *html.Node
	overlay   *html.Node
	remaining []model.MoodboardShot
	loaded    bool
}

// Init shuffles shots, renders the first initial ones into moodboardGrid and
// wires btnRevealMoodboard to render the rest. It returns nil when the grid
// or the button is missing. A non-positive initial falls back to InitialCount.
func Init(doc *dom.Document, rng *rand.Rand, shots []model.MoodboardShot, initial int) *Board {
	grid := doc.GetElementByID("moodboardGrid")
	button := doc.GetElementByID("btnRevealMoodboard")
	if grid == nil || button == nil {
		return nil
	}
	if initial <= 0 {
		initial = InitialCount
	}

	all := Shuffle(rng, shots)
	n := min(initial, len(all))
	b := &Board{
		doc:       doc,
		grid:      grid,
		button:    button,
		overlay:   doc.GetElementByID("moodboardOverlay"),
		remaining: all[n:],
	}
	b.renderShots(all[:n])

	if len(b.remaining) == 0 {
		b.hideOverlay()
		return b
	}
	doc.AddEventListener(button, "click", func(*dom.Event) { b.Reveal() })
	return b
}

// Reveal renders the held-back shots once, then disables the control.
func (b *Board) Reveal() {
	if !b.loaded {
		b.renderShots(b.remaining)
		b.loaded = true
		b.doc.SetText(b.button, RevealedLabel)
		dom.SetAttr(b.button, "disabled", "")
	}
	b.hideOverlay()
}

// Loaded reports whether the held-back shots have been rendered.
func (b *Board) Loaded() bool { return b.loaded }

// Remaining returns the shots behind the reveal control.
func (b *Board) Remaining() []model.MoodboardShot { return b.remaining }

func (b *Board) hideOverlay() {
	if b.overlay != nil {
		dom.AddClass(b.overlay, "hidden")
	}
}

func (b *Board) renderShots(shots []model.MoodboardShot) {
	for _, shot := range shots {
		b.doc.Append(b.grid, Card(b.doc, shot))
	}
}

// Card renders one photo card with whichever caption lines are present.
func Card(doc *dom.Document, shot model.MoodboardShot) *html.Node {
	caption := doc.El("figcaption", nil)
	if shot.Location != "" {
		doc.Append(caption, doc.El("span", dom.Attrs{"class": "mood-location"}, shot.Location))
	}
	if shot.Season != "" {
		doc.Append(caption, doc.El("span", dom.Attrs{"class": "mood-season"}, shot.Season))
	}
	if shot.Caption != "" {
		doc.Append(caption, doc.El("span", dom.Attrs{"class": "mood-caption"}, shot.Caption))
	}
	return doc.El("figure", dom.Attrs{"class": "mood-card"},
		doc.El("img", dom.Attrs{"src": shot.Src, "alt": shot.Alt, "loading": "lazy"}),
		caption,
	)
}
