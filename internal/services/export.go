package services

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"storefront-service/internal/i18n"
	"storefront-service/internal/listing"
	"storefront-service/internal/models"
)

// ExportContentType is the media type of ExportProducts output
const ExportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportProducts renders every product matching the query, in listing order, as an XLSX workbook.
// The page of the query is ignored.
func (s *storefrontService) ExportProducts(ctx context.Context, q ListingQuery) ([]byte, error) {
	q.Page = 0
	view, err := s.queryView(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to export products: %w", err)
	}

	locale := view.Locale
	f := excelize.NewFile()
	defer f.Close()

	sheetName := i18n.T(locale, i18n.MsgExportSheetTitle)
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}
	if locale.IsRTL() {
		rtl := true
		if err := f.SetSheetView(sheetName, -1, &excelize.ViewOptions{RightToLeft: &rtl}); err != nil {
			return nil, err
		}
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})

	headers := []string{
		"ID",
		i18n.T(locale, i18n.MsgExportName),
		i18n.T(locale, i18n.MsgExportCategory),
		i18n.T(locale, i18n.MsgExportImage),
		i18n.T(locale, i18n.MsgExportCreated),
	}
	widths := []float64{24, 40, 28, 60, 20}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)

		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, widths[i])
	}

	for i, p := range view.Results {
		card := s.productCard(p, locale, listing.DisplayName(p, locale, i))
		row := []any{card.ID, card.Name, card.Category, card.ImageURL, formatCreated(p.CreatedAt)}
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	s.logger.WithField("rows", len(view.Results)).Debug("Products exported")
	return buf.Bytes(), nil
}

func formatCreated(ts models.Timestamp) string {
	if ts.IsZero() {
		return ""
	}
	return ts.UTC().Format(time.DateOnly)
}
