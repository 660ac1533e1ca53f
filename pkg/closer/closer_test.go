package closer

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseLIFOOrder(t *testing.T) {
	c := NewCloser(time.Second)

	var order []string
	for _, name := range []string{"db", "redis", "http"} {
		c.Add(func(_ context.Context) error {
			order = append(order, name)
			return nil
		})
	}

	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, []string{"http", "redis", "db"}, order)
}

func TestCloseCollectsErrors(t *testing.T) {
	c := NewCloser(time.Second)
	c.Add(func(_ context.Context) error { return fmt.Errorf("db close failed") })
	c.Add(func(_ context.Context) error { return nil })

	err := c.Close(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db close failed")
}

func TestCloseIsIdempotent(t *testing.T) {
	c := NewCloser(time.Second)

	calls := 0
	c.Add(func(_ context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, c.Close(context.Background()))
	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestCloseForcesRemainingOnCancel(t *testing.T) {
	c := NewCloser(time.Second)

	forced := make(chan struct{}, 1)
	c.Add(func(_ context.Context) error {
		forced <- struct{}{}
		return nil
	})
	c.Add(func(ctx context.Context) error {
		// Закрывается первым и висит до отмены контекста
		<-ctx.Done()
		return ctx.Err()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := c.Close(ctx)
	require.Error(t, err)

	select {
	case <-forced:
	case <-time.After(2 * time.Second):
		t.Fatal("remaining closer was not forced after context cancellation")
	}
}
