package store_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/limit-calculator/generic"
	"github.com/warp/limit-calculator/generic/store"
)

func TestMemory_LoadKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	days := []generic.Date{
		generic.NewDate(2024, time.March, 15),
		generic.NewDate(2019, time.November, 8),
		generic.NewDate(2024, time.March, 10),
	}
	for i, d := range days {
		require.NoError(t, m.Append(ctx, generic.NewRecordOn(int64(i), "r", d)))
	}

	got, err := m.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, r := range got {
		assert.Equal(t, int64(i), r.Amount)
		assert.Equal(t, days[i], r.Date)
	}
}

func TestMemory_LoadReturnsCopy(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()
	require.NoError(t, m.Append(ctx, generic.NewRecordOn(5, "r", generic.NewDate(2024, time.March, 15))))

	got, err := m.Load(ctx)
	require.NoError(t, err)
	got[0].Amount = 999

	again, err := m.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), again[0].Amount)
}

func TestMemory_LoadRangeInclusive(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()
	from := generic.NewDate(2024, time.March, 8)
	to := generic.NewDate(2024, time.March, 15)

	require.NoError(t, m.Append(ctx, generic.NewRecordOn(1, "start", from)))
	require.NoError(t, m.Append(ctx, generic.NewRecordOn(2, "end", to)))
	require.NoError(t, m.Append(ctx, generic.NewRecordOn(4, "before", from.AddDays(-1))))
	require.NoError(t, m.Append(ctx, generic.NewRecordOn(8, "after", to.AddDays(1))))

	got, err := m.LoadRange(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "start", got[0].Comment)
	assert.Equal(t, "end", got[1].Comment)
}

func TestMemory_ConcurrentAppend(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()
	day := generic.NewDate(2024, time.March, 15)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Append(ctx, generic.NewRecordOn(1, "r", day))
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, m.Len())
}
