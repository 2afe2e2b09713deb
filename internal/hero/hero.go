// Package hero picks the banner shown atop the page.
package hero

import (
	"math/rand/v2"

	"github.com/Bitlatte/tripcard/internal/dom"
	"github.com/Bitlatte/tripcard/internal/model"
)

// DefaultEyebrow is used when a variant leaves its eyebrow empty.
const DefaultEyebrow = "YUNNAN / 旅拍"

// Variants are the preset banners.
var Variants = []model.HeroVariant{
	{
		Eyebrow:   "YUNNAN / 旅拍",
		Title:     "云海花田里的慢旅行",
		Desc:      "洱海边的木栈道与粉色云霞，把云南的柔软时光折叠进卡片行程里。",
		BadgeMain: "大理 · 丽江 · 昆明",
		BadgeSub:  "最佳 6-8 日 | 18-26℃",
		Image:     "./images/hero-yunnan.jpg",
		ImageAlt:  "洱海与花田旅拍氛围",
	},
	{
		Eyebrow:   "SEASIDE / DALI",
		Title:     "在洱海边捧一杯云朵咖啡",
		Desc:      "移动咖啡车、白色露台与天空同色，随手记录都像 Pinterest moodboard。",
		BadgeMain: "大理 · 海东 · 环湖西路",
		BadgeSub:  "清晨柔光拍照最佳",
		Image:     "./images/mood-cafe.jpg",
		ImageAlt:  "洱海西岸移动咖啡车",
	},
	{
		Eyebrow:   "LIJIANG / NIGHT GLOW",
		Title:     "古城蓝调夜与石板路",
		Desc:      "灯串和青石巷交错，夜晚散步像走进童话灯箱，适合浪漫胶片风。",
		BadgeMain: "丽江古城 · 青石巷",
		BadgeSub:  "夜拍小贴士：ISO 800",
		Image:     "./images/mood-lijiang.jpg",
		ImageAlt:  "丽江古城的夜色",
	},
	{
		Eyebrow:   "KUNMING / BLOOM",
		Title:     "春城花市的色彩胶囊",
		Desc:      "把干花与香料装进随身托特，每一束都是云南旅途的小战利品。",
		BadgeMain: "昆明 · 春城花市",
		BadgeSub:  "挑选时间：上午 10 点前",
		Image:     "./images/mood-market.jpg",
		ImageAlt:  "昆明花市氛围图",
	},
}

// Pick returns a uniformly random variant.
func Pick(rng *rand.Rand) model.HeroVariant {
	return Variants[rng.IntN(len(Variants))]
}

// Apply writes a random variant into the hero slots and returns it. It does
// nothing when the title, description or image slot is missing.
func Apply(doc *dom.Document, rng *rand.Rand) (model.HeroVariant, bool) {
	variant := Pick(rng)
	return variant, ApplyVariant(doc, variant)
}

// ApplyVariant writes v into the hero slots.
func ApplyVariant(doc *dom.Document, v model.HeroVariant) bool {
	title := doc.GetElementByID("heroTitle")
	desc := doc.GetElementByID("heroDesc")
	image := doc.GetElementByID("heroImage")
	if title == nil || desc == nil || image == nil {
		return false
	}

	if eyebrow := doc.GetElementByID("heroEyebrow"); eyebrow != nil {
		doc.SetText(eyebrow, firstNonEmpty(v.Eyebrow, DefaultEyebrow))
	}
	doc.SetText(title, v.Title)
	doc.SetText(desc, v.Desc)
	if main := doc.GetElementByID("heroBadgeMainText"); main != nil {
		doc.SetText(main, v.BadgeMain)
	}
	if sub := doc.GetElementByID("heroBadgeSubText"); sub != nil {
		doc.SetText(sub, v.BadgeSub)
	}
	dom.SetAttr(image, "src", firstNonEmpty(v.Image, dom.Attr(image, "src")))
	dom.SetAttr(image, "alt", firstNonEmpty(v.ImageAlt, v.Title, dom.Attr(image, "alt")))
	return true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
