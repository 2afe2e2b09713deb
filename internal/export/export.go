// Package export writes the itinerary to an xlsx workbook.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Bitlatte/tripcard/internal/model"
	"github.com/Bitlatte/tripcard/internal/render"
)

const (
	ItinerarySheet = "行程"
	OverviewSheet  = "概览"
)

var itineraryHeader = []interface{}{"日期", "路线", "时间", "安排", "说明", "标签", "交通"}

var transportLabels = map[render.Transport]string{
	render.TransportPlane: "飞机",
	render.TransportTrain: "火车",
	render.TransportBus:   "公共交通",
	render.TransportCar:   "汽车",
}

// Workbook builds the itinerary sheet (one row per item; days without items
// get a single row) and the overview sheet (key/value rows in order).
func Workbook(doc *model.Document) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", ItinerarySheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(OverviewSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("create sheet %s: %w", OverviewSheet, err)
	}
	if err := writeItinerary(f, doc.Itinerary); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeOverview(f, doc.Overview); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func writeItinerary(f *excelize.File, days []model.Day) error {
	sw, err := f.NewStreamWriter(ItinerarySheet)
	if err != nil {
		return err
	}
	if err := sw.SetRow("A1", itineraryHeader); err != nil {
		return err
	}
	row := 2
	for _, day := range days {
		items := day.Items
		if len(items) == 0 {
			items = []model.Item{{}}
		}
		for _, item := range items {
			cell, _ := excelize.CoordinatesToCellName(1, row)
			values := []interface{}{
				day.Date, day.Route, item.Time, item.Title, item.Desc,
				strings.Join(item.Tags, "、"), transportLabels[render.DetectTransport(item)],
			}
			if err := sw.SetRow(cell, values); err != nil {
				return err
			}
			row++
		}
	}
	return sw.Flush()
}

func writeOverview(f *excelize.File, overview model.Overview) error {
	sw, err := f.NewStreamWriter(OverviewSheet)
	if err != nil {
		return err
	}
	for i, e := range overview {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := sw.SetRow(cell, []interface{}{e.Key, e.Value}); err != nil {
			return err
		}
	}
	return sw.Flush()
}

// Write streams the workbook to w.
func Write(doc *model.Document, w io.Writer) error {
	f, err := Workbook(doc)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// WriteFile saves the workbook at path.
func WriteFile(doc *model.Document, path string) error {
	f, err := Workbook(doc)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
