package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Bitlatte/tripcard/internal/model"
)

func TestDetectTransport(t *testing.T) {
	tests := []struct {
		name string
		item model.Item
		want Transport
	}{
		{"flight keyword", model.Item{Desc: "早班航班"}, TransportPlane},
		{"plane in tags", model.Item{Tags: []string{"飞机"}}, TransportPlane},
		{"航 in title only", model.Item{Title: "东航 MU5801"}, TransportPlane},
		{"high-speed rail", model.Item{Title: "乘高铁去昆明"}, TransportTrain},
		{"bullet train", model.Item{Desc: "动车 2 小时"}, TransportTrain},
		{"metro", model.Item{Desc: "地铁 2 号线"}, TransportBus},
		{"taxi", model.Item{Tags: []string{"打车"}}, TransportCar},
		{"departure", model.Item{Title: "出发去双廊"}, TransportCar},
		{"plane beats train", model.Item{Title: "高铁转航班"}, TransportPlane},
		{"train beats car", model.Item{Title: "火车站出发"}, TransportTrain},
		{"nothing", model.Item{Title: "喝咖啡", Desc: "看书", Tags: []string{"放松"}}, TransportNone},
		{"empty", model.Item{}, TransportNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectTransport(tt.item))
		})
	}
}

func TestDetectTagIcon(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"航班", "plane"},
		{"高铁/城际", "train"},
		{"返程", "car"},
		{"行李", "bag"},
		{"入住", "hotel"},
		{"晚餐", "food"},
		{"温泉", "relax"},
		{"洱海", "scenic"},
		{"务必", "alert"},
		{"体验", "activity"},
		// 交通 is a car keyword and car is checked before scenic.
		{"交通游览", "car"},
		{"咖啡", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectTagIcon(tt.tag))
		})
	}
}
