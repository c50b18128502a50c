//go:build unit

package booking_test

import (
	"testing"

	"slotbook/internal/domain/booking"
	"slotbook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusInitiated, actual.Status())
		assert.Equal(t, booking.PaymentPending, actual.Payment())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("rejects zero participants", func(t *testing.T) {
		_, err := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) { b.Participants = 0 }).
			BuildDomain()
		assert.ErrorIs(t, err, booking.ErrInvalidParticipants)
	})
}
