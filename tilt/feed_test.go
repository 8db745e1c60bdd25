package tilt_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/discoverdxb/appcore/tilt"
)

func TestAttach_AppliesSamples(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	feed := tilt.NewSimFeed(8)
	var layer tilt.Layer
	done := tilt.Attach(ctx, feed, &layer)

	feed.Push(tilt.Sample{X: 1, Y: -0.5})

	require.Eventually(t, func() bool {
		x, y := layer.Position()
		return x == -1*tilt.Scale && y == -0.5*tilt.Scale
	}, time.Second, time.Millisecond)

	feed.Close()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop after feed close")
	}
}

func TestAttach_CtxCancelStopsConsumer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	feed := tilt.NewSimFeed(8)
	var layer tilt.Layer
	done := tilt.Attach(ctx, feed, &layer)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop after ctx cancel")
	}

	// A sample pushed after teardown never reaches the layer.
	feed.Push(tilt.Sample{X: 2, Y: 2})
	time.Sleep(10 * time.Millisecond)
	x, y := layer.Position()
	require.Zero(t, x)
	require.Zero(t, y)
}

func TestSimFeed_DropsWhenFull(t *testing.T) {
	feed := tilt.NewSimFeed(1)
	feed.Push(tilt.Sample{X: 1})
	feed.Push(tilt.Sample{X: 2}) // buffer full, dropped without blocking

	s, ok := <-feed.Samples()
	require.True(t, ok)
	require.Equal(t, 1.0, s.X)

	select {
	case s := <-feed.Samples():
		t.Fatalf("unexpected buffered sample %+v", s)
	default:
	}
}
