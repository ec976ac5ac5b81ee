package sizechart

import "errors"

var (
	// ErrNoSizeChartData is returned for products without any table or
	// measurement in their description.
	ErrNoSizeChartData = errors.New("sizechart: no size chart data found in description")
	// ErrInsufficientMeasurements is returned if the description holds fewer
	// than MinRenderCells measurements.
	ErrInsufficientMeasurements = errors.New("sizechart: insufficient measurements")
)
