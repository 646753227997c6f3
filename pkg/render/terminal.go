package render

import (
	uv "github.com/charmbracelet/ultraviolet"
)

// Draw blits the frame buffer onto a terminal screen using half blocks:
// each cell shows two display rows, the upper as foreground of "▀" and the
// lower as background. The buffer height should be twice the cell rows.
func (fb *FrameBuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		top := fb.Row(2 * (row - area.Min.Y))
		bot := fb.Row(2*(row-area.Min.Y) + 1)
		if top == nil {
			return
		}

		for col := area.Min.X; col < area.Max.X; col++ {
			x := col - area.Min.X
			if x >= fb.Width {
				break
			}
			style := uv.Style{Fg: top[x].RGBA()}
			if bot != nil {
				style.Bg = bot[x].RGBA()
			}
			scr.SetCell(col, row, &uv.Cell{
				Content: "▀",
				Width:   1,
				Style:   style,
			})
		}
	}
}

// CellSize returns the frame buffer size that fills a terminal of the
// given cell dimensions.
func CellSize(cols, rows int) (width, height int) {
	return cols, rows * 2
}
