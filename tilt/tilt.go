// Package tilt turns device tilt readings into the small parallax offset a
// detail view applies to its header image.
package tilt

import "sync"

// Scale converts an acceleration reading into pixels. Small on purpose so
// the image drift stays subtle.
const Scale = 8.0

// Sample is one 2-axis accelerometer reading.
type Sample struct {
	X, Y float64
}

// Offset is the pixel displacement derived from a Sample.
type Offset struct {
	X, Y float64
}

// Offset scales the sample into pixels.
func (s Sample) Offset() Offset {
	return Offset{X: s.X * Scale, Y: s.Y * Scale}
}

// Layer is the render target of the parallax effect. Its position stays at
// the neutral origin until the first sample arrives.
type Layer struct {
	mu   sync.Mutex
	x, y float64
}

// Apply moves the layer for o. The horizontal axis is inverted so the image
// lags opposite the tilt direction.
func (l *Layer) Apply(o Offset) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.x = -o.X
	l.y = o.Y
}

// Position returns the current layer displacement in pixels.
func (l *Layer) Position() (x, y float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.x, l.y
}
