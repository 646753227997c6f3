package render

import "testing"

func TestFrameStatsAdd(t *testing.T) {
	var total FrameStats
	total.Add(FrameStats{Triangles: 4, Culled: 1, OutOfView: 1, Drawn: 2, PixelsWritten: 10, PixelsOccluded: 3})
	total.Add(FrameStats{Triangles: 2, Degenerate: 1, Drawn: 1, PixelsWritten: 5, PixelsClipped: 7})

	want := FrameStats{
		Triangles:      6,
		Culled:         1,
		OutOfView:      1,
		Degenerate:     1,
		Drawn:          3,
		PixelsWritten:  15,
		PixelsOccluded: 3,
		PixelsClipped:  7,
	}
	if total != want {
		t.Errorf("Add = %+v, want %+v", total, want)
	}
	if got := total.Skipped(); got != 3 {
		t.Errorf("Skipped() = %d, want 3", got)
	}
	if total.Skipped()+total.Drawn != total.Triangles {
		t.Error("skipped and drawn should cover every triangle")
	}
}
