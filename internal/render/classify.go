package render

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/Bitlatte/tripcard/internal/model"
)

// Transport is the travel mode guessed from an item's text.
type Transport string

const (
	TransportNone  Transport = ""
	TransportPlane Transport = "plane"
	TransportTrain Transport = "train"
	TransportBus   Transport = "bus"
	TransportCar   Transport = "car"
)

var transportKeywords = []struct {
	mode     Transport
	keywords []string
}{
	{TransportPlane, []string{"航班", "飞机"}},
	{TransportTrain, []string{"高铁", "火车", "列车", "动车"}},
	{TransportBus, []string{"地铁", "公交", "巴士", "公共交通"}},
	{TransportCar, []string{"打车", "出租", "车程", "自驾", "驾车", "交通", "出发"}},
}

// DetectTransport scans title, description and tags for the first matching
// travel keyword. Order is plane, train, bus, car; a title mentioning 航 in
// any form also counts as plane.
func DetectTransport(item model.Item) Transport {
	text := item.Title + " " + item.Desc + " " + strings.Join(item.Tags, " ")
	for _, group := range transportKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(text, kw) {
				return group.mode
			}
		}
		if group.mode == TransportPlane && strings.Contains(item.Title, "航") {
			return TransportPlane
		}
	}
	return TransportNone
}

// tagIcons is matched top to bottom; the first category with a keyword
// contained in the tag wins.
var tagIcons = []struct {
	name     string
	keywords []string
}{
	{"plane", []string{"航班", "航空", "机票"}},
	{"train", []string{"高铁/城际", "高铁", "火车", "火車", "动车", "列车"}},
	{"car", []string{"交通", "打车", "出租", "自驾", "驾车", "车程", "出发", "到达", "返程"}},
	{"bag", []string{"行李", "收拾", "整理"}},
	{"hotel", []string{"住宿", "入住", "酒店", "民宿"}},
	{"food", []string{"美食", "餐", "午餐", "晚餐", "早餐", "宴"}},
	{"relax", []string{"温泉", "休息", "缓冲"}},
	{"scenic", []string{"风景", "洱海", "古城", "古镇", "束河", "景", "湖", "游"}},
	{"alert", []string{"关键控制点", "务必", "注意"}},
	{"activity", []string{"活动", "游玩", "逛", "体验"}},
}

var fold = cases.Fold()

// DetectTagIcon maps a free-text tag to an icon category, or "".
func DetectTagIcon(tag string) string {
	if tag == "" {
		return ""
	}
	folded := fold.String(tag)
	for _, cat := range tagIcons {
		for _, kw := range cat.keywords {
			if strings.Contains(tag, kw) || strings.Contains(folded, fold.String(kw)) {
				return cat.name
			}
		}
	}
	return ""
}
