package history_test

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vayura/oxygen-calculator/internal/history"
	"github.com/vayura/oxygen-calculator/internal/oxygen"
)

// failingRepository always fails and counts calls.
type failingRepository struct {
	calls atomic.Int32
}

func (r *failingRepository) Insert(context.Context, *history.Record) error {
	r.calls.Add(1)
	return errors.New("connection refused")
}

func (r *failingRepository) ListRecent(context.Context, history.ListOptions) ([]*history.Record, error) {
	r.calls.Add(1)
	return nil, errors.New("connection refused")
}

func testData(district string) oxygen.DistrictEnvironmentalData {
	return oxygen.DistrictEnvironmentalData{
		DistrictName:      district,
		Population:        100_000,
		AQI:               90,
		SoilQuality:       70,
		DisasterFrequency: 2,
	}
}

func TestService_RecordAndList(t *testing.T) {
	svc := history.NewService(history.ServiceConfig{
		Repository: history.NewInMemoryRepository(),
		Logger:     zerolog.New(io.Discard),
	})
	ctx := context.Background()

	for _, district := range []string{"Pune", "Nagpur", "Pune"} {
		data := testData(district)
		svc.Record(ctx, data, oxygen.Calculate(data))
	}

	records, err := svc.ListRecent(ctx, "", 10)
	require.NoError(t, err)
	assert.Len(t, records, 3)

	records, err = svc.ListRecent(ctx, "Pune", 10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	for _, record := range records {
		assert.Equal(t, "Pune", record.DistrictName)
		assert.Equal(t, int64(100_000), record.Population)
		assert.Positive(t, record.TreesRequired)
		assert.NotEmpty(t, record.ID)
		assert.False(t, record.CreatedAt.IsZero())
	}
}

func TestService_ListRecentLimit(t *testing.T) {
	svc := history.NewService(history.ServiceConfig{
		Repository: history.NewInMemoryRepository(),
		Logger:     zerolog.New(io.Discard),
	})
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		data := testData("Indore")
		svc.Record(ctx, data, oxygen.Calculate(data))
	}

	records, err := svc.ListRecent(ctx, "", 2)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestService_RecordSwallowsStoreFailures(t *testing.T) {
	repo := &failingRepository{}
	svc := history.NewService(history.ServiceConfig{
		Repository:     repo,
		Logger:         zerolog.New(io.Discard),
		BreakerTimeout: time.Hour,
	})
	ctx := context.Background()

	data := testData("Pune")
	result := oxygen.Calculate(data)

	// Must not panic or block the caller, no matter how often the store
	// fails.
	for i := 0; i < 10; i++ {
		svc.Record(ctx, data, result)
	}

	// The breaker trips after 5 consecutive failures and stops hitting
	// the store.
	assert.Equal(t, int32(5), repo.calls.Load())

	_, err := svc.ListRecent(ctx, "", 10)
	assert.Error(t, err)
}
