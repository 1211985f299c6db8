package order

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/voice-shop/internal/pkg/apperr"
	"github.com/your-org/voice-shop/internal/pkg/logger"
)

func TestInsertAndGet(t *testing.T) {
	r := NewRegistry(logger.Discard())
	created := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	stored := r.Insert(Order{
		CartID:    "c-1",
		Total:     17820,
		Currency:  "USD",
		Status:    StatusProcessing,
		EtaDays:   5,
		CreatedAt: created,
	})

	assert.True(t, strings.HasPrefix(stored.ID, IDPrefix))

	got, err := r.Get(stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored, got)
	assert.Equal(t, 1, r.Count())
}

func TestInsertIgnoresCallerID(t *testing.T) {
	r := NewRegistry(logger.Discard())

	a := r.Insert(Order{ID: "fixed"})
	b := r.Insert(Order{ID: "fixed"})

	assert.NotEqual(t, "fixed", a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, r.Count())
}

func TestGetUnknown(t *testing.T) {
	r := NewRegistry(logger.Discard())

	_, err := r.Get("o-missing")
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.True(t, apperr.IsNotFound(err))
}

func TestConcurrentInsert(t *testing.T) {
	r := NewRegistry(logger.Discard())

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			o := r.Insert(Order{CartID: "c"})
			_, err := r.Get(o.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, r.Count())
}

func TestStatus(t *testing.T) {
	for _, s := range []Status{StatusProcessing, StatusPaid, StatusShipped, StatusDelivered} {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, Status("cancelled").IsValid())
}

func TestFormatting(t *testing.T) {
	o := Order{Subtotal: 19800, Discount: 1980, Total: 17820, Currency: "USD"}

	assert.Equal(t, "178.20 USD", o.FormattedTotal())
	assert.Equal(t, "198.00 USD", o.FormattedSubtotal())
	assert.Equal(t, "19.80 USD", o.FormattedDiscount())
	assert.Equal(t, "0.05 USD", Order{Total: 5, Currency: "USD"}.FormattedTotal())
}
