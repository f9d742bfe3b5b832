package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of samples taken
	AverageSamples float64       // Average samples per pixel
	Chunks         int           // Number of chunks rendered
	Workers        int           // Number of workers used
	Elapsed        time.Duration // Wall clock render time
}

// SamplesPerSecond returns the sampling throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Elapsed.Seconds()
}

// add folds the statistics of one chunk into the totals
func (s *RenderStats) add(chunk RenderStats) {
	s.TotalPixels += chunk.TotalPixels
	s.TotalSamples += chunk.TotalSamples
	s.Chunks += chunk.Chunks
}

// finalize calculates derived statistics once all chunks are in
func (s *RenderStats) finalize() {
	if s.TotalPixels > 0 {
		s.AverageSamples = float64(s.TotalSamples) / float64(s.TotalPixels)
	}
}
