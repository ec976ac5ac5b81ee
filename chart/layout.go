package chart

import "unicode/utf8"

// Fixed layout metrics, in pixels.
const (
	CellHeight     = 120
	HeaderHeight   = 140
	Padding        = 60
	TitleSpace     = 180
	MinCanvasWidth = 1800

	minCellWidth = 320
	maxCellWidth = 400
	pxPerChar    = 12 // estimated width of a header character

	logoAreaHeight = 120
	logoTop        = 30
	maxLogoWidth   = 812
	maxLogoHeight  = 271
	textLogoSize   = 48

	titleText      = "SIZE CHART"
	titleGap       = 30 // below the logo band
	underlineGap   = 20 // between title baseline and underline
	tableTopOffset = 150

	headerFontFloor = 16
	headerFontStep  = 2
	headerMarginX   = 20
	cellMarginX     = 10
	maxFitSteps     = 64

	factsGap       = 50 // between table and first fact
	factSpacing    = 60
	bulletRadius   = 8
	bulletIndent   = 30
	labelIndent    = 30
	contentGap     = 20
	factBaseline   = 25
	bulletCenterDy = 20
)

// Thresholds on the length of the product description.
const (
	longDescription     = 2000
	veryLongDescription = 5000
	manyFactsThreshold  = 3000
)

// Layout holds the geometry of a chart.
type Layout struct {
	Columns, Rows int
	CellWidth     int
	TableWidth    int
	TableHeight   int
	DetailsSpace  int
	Width         int
	Height        int
	TableX        float64 // left edge of the table
	TableY        float64 // top edge of the header row
	MaxDetails    int     // maximum number of product facts
	MaxContent    int     // maximum length of a fact's content, in characters
}

// ComputeLayout derives the chart geometry from the table headers, the number
// of body rows and the length of the product description (in characters).
func ComputeLayout(headers []string, rowCount int, descLen int) Layout {
	maxHeader := 0
	for _, h := range headers {
		maxHeader = max(maxHeader, utf8.RuneCountInString(h))
	}
	l := Layout{
		Columns:   len(headers),
		Rows:      rowCount,
		CellWidth: max(minCellWidth, min(maxCellWidth, maxHeader*pxPerChar)),
	}
	l.TableWidth = l.Columns * l.CellWidth
	l.TableHeight = HeaderHeight + rowCount*CellHeight
	switch {
	case descLen > veryLongDescription:
		l.DetailsSpace = 800
	case descLen > longDescription:
		l.DetailsSpace = 650
	default:
		l.DetailsSpace = 520
	}
	l.Width = max(l.TableWidth+2*Padding, MinCanvasWidth)
	l.Height = l.TableHeight + 2*Padding + TitleSpace + l.DetailsSpace
	l.TableX = float64(l.Width-l.TableWidth) / 2
	l.TableY = logoAreaHeight + tableTopOffset
	if descLen > manyFactsThreshold {
		l.MaxDetails, l.MaxContent = 12, 50
	} else {
		l.MaxDetails, l.MaxContent = 8, 35
	}
	return l
}

// FactsY is the top of the product facts list.
func (l Layout) FactsY() float64 {
	return l.TableY + float64(l.TableHeight) + factsGap
}
