package dataset

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingLoader(calls *int32) LoadFunc {
	return func(ctx context.Context) (*Dataset, error) {
		atomic.AddInt32(calls, 1)
		return &Dataset{Name: "x", Header: Header{"id"}}, nil
	}
}

func TestCache_Disabled(t *testing.T) {
	var calls int32
	c := NewCache(0)

	for i := 0; i < 3; i++ {
		_, err := c.GetOrLoad(context.Background(), "x", countingLoader(&calls))
		require.NoError(t, err)
	}
	assert.Equal(t, int32(3), calls)
	assert.Equal(t, 0, c.Len())
}

func TestCache_ReusesUntilExpired(t *testing.T) {
	var calls int32
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewCache(time.Minute)
	c.now = func() time.Time { return now }

	first, err := c.GetOrLoad(context.Background(), "x", countingLoader(&calls))
	require.NoError(t, err)
	second, err := c.GetOrLoad(context.Background(), "x", countingLoader(&calls))
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, int32(1), calls)

	now = now.Add(2 * time.Minute)
	_, err = c.GetOrLoad(context.Background(), "x", countingLoader(&calls))
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls)

	c.Invalidate("x")
	assert.Equal(t, 0, c.Len())
}

func TestCache_ErrorsAreNotCached(t *testing.T) {
	c := NewCache(time.Minute)
	boom := errors.New("boom")

	_, err := c.GetOrLoad(context.Background(), "x", func(ctx context.Context) (*Dataset, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, c.Len())
}

func TestCache_ConcurrentMissesShareLoad(t *testing.T) {
	var calls int32
	release := make(chan struct{})
	c := NewCache(time.Minute)

	load := func(ctx context.Context) (*Dataset, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return &Dataset{Name: "x"}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.GetOrLoad(context.Background(), "x", load)
			assert.NoError(t, err)
		}()
	}

	// Give the goroutines time to pile up on the singleflight slot
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
