package moodboard

import "github.com/Bitlatte/tripcard/internal/model"

// BaseShots are the photos every moodboard draws from.
var BaseShots = []model.MoodboardShot{
	{City: "大理", Src: "./images/mood-dali.jpg", Alt: "大理洱海的清晨", Location: "大理 · 洱海木栈道", Season: "3-5 月 · 清晨柔光", Caption: "晨光落在湖面和木栈道上，自带手账滤镜感"},
	{City: "大理", Src: "./images/mood-cafe.jpg", Alt: "洱海西岸的移动咖啡车", Location: "大理 · 洱海西岸露营地", Season: "9-11 月 · 日落咖啡", Caption: "复古咖啡车 + 白色露台，随手也能拍出 Pinterest 风"},
	{City: "丽江", Src: "./images/mood-lijiang.jpg", Alt: "丽江古城石板路夜色", Location: "丽江 · 古城青石巷", Season: "10-12 月 · 蓝调夜", Caption: "灯串与青石巷交错，夜晚散步像走进童话灯箱"},
	{City: "丽江", Src: "./images/mood-trail.jpg", Alt: "玉龙雪山的木栈道", Location: "丽江 · 玉龙雪山徒步", Season: "1-3 月 · 雪山阳光", Caption: "薄雾、雪峰与木栈道的层次，很像胶片分区曝光"},
	{City: "昆明", Src: "./images/mood-market.jpg", Alt: "昆明花市里的花束和摊位", Location: "昆明 · 春城花市", Season: "全年 · 恒春花市", Caption: "永生花与干草束，把昆明的色彩装进随身托特"},
	{City: "昆明", Src: "./images/mood-kunming-park.jpg", Alt: "昆明翠湖公园的湖面与廊桥", Location: "昆明 · 翠湖公园", Season: "4-6 月 · 绿意满分", Caption: "松影和湖水倒影让城市节奏慢下来"},
	{City: "玉溪", Src: "./images/mood-yuanyang.jpg", Alt: "元阳梯田的晨雾", Location: "玉溪 · 元阳梯田", Season: "1-2 月 · 水田倒影", Caption: "金色云雾缠绕梯田，像调色盘撒在山谷里"},
	{City: "玉溪", Src: "./images/mood-yuxi-lake.jpg", Alt: "玉溪抚仙湖的日落剪影", Location: "玉溪 · 抚仙湖", Season: "7-9 月 · 湖畔消暑", Caption: "玻璃蓝的湖面与渔船剪影，适合大片构图"},
}

// ExtraShots are appended to BaseShots before shuffling.
var ExtraShots = []model.MoodboardShot{
	{City: "大理", Src: "./images/mood-dali-alley.jpg", Alt: "大理古城白墙青瓦的巷子", Location: "大理 · 古城里仁巷", Season: "全年 · 慢巷散步", Caption: "白墙青瓦与植物藤蔓的对比，构图感极强"},
	{City: "大理", Src: "./images/mood-dali-boat.jpg", Alt: "洱海上漂浮的木船", Location: "大理 · 海舌公园", Season: "4-6 月 · 晴朗倒影", Caption: "木船、云朵和水面的对称，适合极简风"},
	{City: "丽江", Src: "./images/mood-lijiang-morning.jpg", Alt: "丽江清晨的庭院与茶桌", Location: "丽江 · 束河庭院", Season: "3-5 月 · 茶香晨雾", Caption: "藤椅、花影与茶具打造日系慵懒感"},
	{City: "丽江", Src: "./images/mood-lijiang-tea.jpg", Alt: "雪山脚下晴空与草地", Location: "丽江 · 玉湖村", Season: "5-6 月 · 草甸野餐", Caption: "雪山与绿野对比鲜明，适合露营拍照"},
	{City: "昆明", Src: "./images/mood-kunming-tea.jpg", Alt: "昆明茶室里的竹编与绿植", Location: "昆明 · 盘龙茶馆", Season: "11-2 月 · 暖茶午后", Caption: "竹编灯与绿植搭配，营造治愈系静物"},
	{City: "玉溪", Src: "./images/mood-yuxi-sunset.jpg", Alt: "玉溪山谷的日落云海", Location: "玉溪 · 新平哀牢山", Season: "10-12 月 · 云海季", Caption: "山谷被云海覆盖，适合广角纪录"},
}

// AllShots returns BaseShots followed by ExtraShots in a new slice.
func AllShots() []model.MoodboardShot {
	out := make([]model.MoodboardShot, 0, len(BaseShots)+len(ExtraShots))
	out = append(out, BaseShots...)
	return append(out, ExtraShots...)
}
