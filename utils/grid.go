package utils

// MeshGrid2D builds the flattened cross product of two regularly stepped
// coordinate ranges, x varying slowest. Point i of the output keeps its
// position through any per-point computation downstream.
//
// Each coordinate is computed as count*step+min rather than accumulated, so
// long ranges do not drift. The endpoint test allows step*1e-4 of slack to
// include max when the range is an integral number of steps.
func MeshGrid2D(xmin, xstep, xmax, ymin, ystep, ymax float64) (x, y []float64) {
	var (
		ex = xstep * 1.e-4
		ey = ystep * 1.e-4
	)
	for cx, vx := 0, xmin; vx <= xmax+ex; cx, vx = cx+1, float64(cx+1)*xstep+xmin {
		for cy, vy := 0, ymin; vy <= ymax+ey; cy, vy = cy+1, float64(cy+1)*ystep+ymin {
			x = append(x, vx)
			y = append(y, vy)
		}
	}
	return
}
