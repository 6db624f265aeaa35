package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollectorAggregates(t *testing.T) {
	c := NewCollector()
	c.Start("classic", 3)

	c.AddGame("cleared", 4110, 612)
	c.AddGame("caught", 380, 97)
	c.AddGame("timeout", 1200, 2000)

	batch := c.Complete()
	require.Equal(t, "classic", batch.Level)
	require.Equal(t, 3, batch.Config)
	require.Equal(t, 3, batch.Games)
	require.Equal(t, 1, batch.Cleared)
	require.Equal(t, 1, batch.Caught)
	require.Equal(t, 1, batch.Stalled, "unknown outcomes count as stalled")
	require.Equal(t, int64(5690), batch.TotalScore)
	require.Equal(t, int64(2709), batch.TotalTicks)
}

func TestCollectorConcurrentAddGame(t *testing.T) {
	// The batch runner finishes games from several goroutines at once
	c := NewCollector()
	c.Start("classic", 1)

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.AddGame("cleared", 10, 5)
		}()
	}
	wg.Wait()

	batch := c.Complete()
	require.Equal(t, 64, batch.Games)
	require.Equal(t, 64, batch.Cleared)
	require.Equal(t, int64(640), batch.TotalScore)
	require.Equal(t, int64(320), batch.TotalTicks)
}

func TestDummyCollector(t *testing.T) {
	c := NewDummyCollector()
	c.Start("classic", 1)
	c.AddGame("cleared", 100, 10)
	require.Equal(t, BatchMetric{}, c.Complete())
}
