package renderer

import "time"

// RenderStats contains statistics about a rendering call
type RenderStats struct {
	TotalPixels int           // Number of pixels shaded
	Rows        int           // Number of rows rendered
	ShadeCalls  int64         // Shade invocations, primary and secondary
	Workers     int           // Workers that took part
	Duration    time.Duration // Wall-clock time
}

// CallsPerPixel returns the average number of shade invocations per pixel
func (rs RenderStats) CallsPerPixel() float64 {
	if rs.TotalPixels == 0 {
		return 0
	}
	return float64(rs.ShadeCalls) / float64(rs.TotalPixels)
}
