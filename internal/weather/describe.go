package weather

import "math"

// DefaultDescription is shown for codes missing from the table.
const DefaultDescription = "户外天气"

var codeText = map[int]string{
	0:  "晴朗",
	1:  "多云",
	2:  "多云",
	3:  "阴天",
	45: "有雾",
	48: "有雾",
	51: "毛毛雨",
	53: "细雨",
	55: "小雨",
	56: "冻雨",
	57: "冻雨",
	61: "小雨",
	63: "中雨",
	65: "大雨",
	66: "冻雨",
	67: "冻雨",
	71: "小雪",
	73: "中雪",
	75: "大雪",
	77: "雪粒",
	80: "短时小雨",
	81: "阵雨",
	82: "强阵雨",
	85: "阵雪",
	86: "强阵雪",
	95: "雷阵雨",
	96: "雷雨伴冰雹",
	99: "强雷雨伴冰雹",
}

// Describe returns the text for a WMO weather code.
func Describe(code int) string {
	if s, ok := codeText[code]; ok {
		return s
	}
	return DefaultDescription
}

// Outfit suggests clothing for a rounded temperature in ℃.
func Outfit(temp int) string {
	switch {
	case temp >= 28:
		return "短袖 + 防晒衫，注意补水"
	case temp >= 22:
		return "轻薄长袖 + 迷你外套最舒服"
	case temp >= 16:
		return "卫衣或针织 + 防风外套"
	case temp >= 10:
		return "薄羽绒/冲锋衣，早晚披上"
	default:
		return "保暖内搭 + 厚外套，围巾别忘了"
	}
}

// Round rounds half up, so -2.5 becomes -2.
func Round(v float64) int {
	return int(math.Floor(v + 0.5))
}
