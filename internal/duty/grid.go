package duty

const (
	quartersPerDay = 96

	// quarterMarkLow and quarterMarkHigh bound the short 15 minute marks
	// as fractions of the row height.
	quarterMarkLow  = 0.4
	quarterMarkHigh = 0.6
)

// Line is a straight stroke in row coordinates.
type Line struct {
	X1, Y1, X2, Y2 float64
}

// GridLines is the static backdrop of one status row.
type GridLines struct {
	Baseline Line
	Hours    []Line // 24 lines, one at the end of every hour
	Quarters []Line // 96 marks, full height on the hour
}

// Grid returns the backdrop for a row of the given height. It shares the
// axis of LayoutRow, so an event starting at hour h lands on the same x as
// the hour line before it.
func Grid(rowHeight float64) GridLines {
	g := GridLines{
		Baseline: Line{X1: 0, Y1: rowHeight / 2, X2: AxisMax, Y2: rowHeight / 2},
		Hours:    make([]Line, 0, int(HoursPerDay)),
		Quarters: make([]Line, 0, quartersPerDay),
	}

	for h := 0; h < int(HoursPerDay); h++ {
		x := HourToX(float64(h + 1))
		g.Hours = append(g.Hours, Line{X1: x, Y1: 0, X2: x, Y2: rowHeight})
	}

	for i := 0; i < quartersPerDay; i++ {
		x := HourToX(float64(i) / 4)
		y1, y2 := rowHeight*quarterMarkLow, rowHeight*quarterMarkHigh
		if i%4 == 0 {
			y1, y2 = 0, rowHeight
		}
		g.Quarters = append(g.Quarters, Line{X1: x, Y1: y1, X2: x, Y2: y2})
	}
	return g
}
