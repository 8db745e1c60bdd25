package tilt

import "context"

// Feed is a push-driven source of accelerometer samples. The channel closes
// when the underlying sensor goes away.
type Feed interface {
	Samples() <-chan Sample
}

// Attach consumes feed and applies each sample to layer until ctx is
// cancelled or the feed closes. The returned channel closes once the
// consumer has stopped; cancelling ctx is the teardown for the owning view,
// so a disposed view never receives stale updates.
func Attach(ctx context.Context, feed Feed, layer *Layer) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		samples := feed.Samples()
		for {
			select {
			case <-ctx.Done():
				return
			case s, ok := <-samples:
				if !ok {
					return
				}
				layer.Apply(s.Offset())
			}
		}
	}()
	return done
}

// SimFeed is a channel-backed Feed for tests and host sensor adapters.
type SimFeed struct {
	ch chan Sample
}

// NewSimFeed returns a SimFeed buffering up to n pending samples.
func NewSimFeed(n int) *SimFeed {
	return &SimFeed{ch: make(chan Sample, n)}
}

// Push delivers one sample. When the buffer is full the sample is dropped,
// so a slow consumer never blocks the sensor callback.
func (f *SimFeed) Push(s Sample) {
	select {
	case f.ch <- s:
	default:
	}
}

// Close ends the feed; attached consumers drain and stop.
func (f *SimFeed) Close() {
	close(f.ch)
}

// Samples implements Feed.
func (f *SimFeed) Samples() <-chan Sample {
	return f.ch
}
