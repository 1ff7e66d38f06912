package render

import "life-bg/pkg/core"

func gridFromRows(rows ...string) core.Grid {
	g := core.NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, ch := range row {
			g.Set(x, y, ch == '#')
		}
	}
	return g
}
