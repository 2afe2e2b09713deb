package hero

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bitlatte/tripcard/internal/dom"
	"github.com/Bitlatte/tripcard/internal/model"
)

const heroShell = `<html><body>
<p id="heroEyebrow"></p><h1 id="heroTitle">old</h1><p id="heroDesc"></p>
<span id="heroBadgeMainText"></span><span id="heroBadgeSubText"></span>
<img id="heroImage" src="./images/default.jpg" alt="default">
</body></html>`

func TestApplyWritesVariant(t *testing.T) {
	doc, err := dom.Parse(strings.NewReader(heroShell))
	require.NoError(t, err)

	v, ok := Apply(doc, rand.New(rand.NewPCG(1, 2)))
	require.True(t, ok)
	assert.Contains(t, Variants, v)
	assert.Equal(t, v.Title, dom.Text(doc.GetElementByID("heroTitle")))
	assert.Equal(t, v.Desc, dom.Text(doc.GetElementByID("heroDesc")))
	assert.Equal(t, v.BadgeMain, dom.Text(doc.GetElementByID("heroBadgeMainText")))
	assert.Equal(t, v.Image, dom.Attr(doc.GetElementByID("heroImage"), "src"))
	assert.Equal(t, v.ImageAlt, dom.Attr(doc.GetElementByID("heroImage"), "alt"))
}

func TestApplyVariantFallbacks(t *testing.T) {
	doc, err := dom.Parse(strings.NewReader(heroShell))
	require.NoError(t, err)

	require.True(t, ApplyVariant(doc, model.HeroVariant{Title: "只有标题"}))
	assert.Equal(t, DefaultEyebrow, dom.Text(doc.GetElementByID("heroEyebrow")))
	img := doc.GetElementByID("heroImage")
	assert.Equal(t, "./images/default.jpg", dom.Attr(img, "src"))
	assert.Equal(t, "只有标题", dom.Attr(img, "alt"))
}

func TestApplyAbortsWithoutSlots(t *testing.T) {
	doc, err := dom.Parse(strings.NewReader(`<html><body><h1 id="heroTitle">keep</h1></body></html>`))
	require.NoError(t, err)

	_, ok := Apply(doc, rand.New(rand.NewPCG(3, 4)))
	assert.False(t, ok)
	assert.Equal(t, "keep", dom.Text(doc.GetElementByID("heroTitle")))
}

func TestPickCoversAllVariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	seen := map[string]bool{}
	for i := 0; i < 400; i++ {
		seen[Pick(rng).Title] = true
	}
	assert.Len(t, seen, len(Variants))
}
