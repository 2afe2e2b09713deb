package export

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Bitlatte/tripcard/internal/model"
)

func sampleDoc() *model.Document {
	return &model.Document{
		Overview: model.Overview{{Key: "天数", Value: "7 天"}, {Key: "人数", Value: "2"}},
		Itinerary: []model.Day{
			{Date: "D1", Route: "上海 → 大理", Items: []model.Item{
				{Time: "08:00", Title: "东航航班", Desc: "浦东 T1", Tags: []string{"航班", "行李"}},
				{Time: "14:00", Title: "入住古城"},
			}},
			{Date: "D2", Route: "休整"},
		},
	}
}

func TestWorkbookSheets(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(sampleDoc(), &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{ItinerarySheet, OverviewSheet}, f.GetSheetList())

	rows, err := f.GetRows(ItinerarySheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"日期", "路线", "时间", "安排", "说明", "标签", "交通"}, rows[0])
	assert.Equal(t, []string{"D1", "上海 → 大理", "08:00", "东航航班", "浦东 T1", "航班、行李", "飞机"}, rows[1])
	assert.Equal(t, []string{"D1", "上海 → 大理", "14:00", "入住古城"}, rows[2])
	assert.Equal(t, []string{"D2", "休整"}, rows[3])

	overview, err := f.GetRows(OverviewSheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"天数", "7 天"}, {"人数", "2"}}, overview)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "itinerary.xlsx")
	require.NoError(t, WriteFile(&model.Document{}, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(ItinerarySheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
