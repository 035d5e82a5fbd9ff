package create_booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
)

// availableAt возвращает свободные места на время слота из ответа get_available_slots
func availableAt(t *testing.T, slots *getAvailableSlots.UseCase, date, slotTime string, stylist *string) int {
	t.Helper()
	resp, err := slots.Execute(context.Background(), &getAvailableSlots.Request{Date: date, Stylist: stylist})
	require.NoError(t, err)
	for _, s := range resp.Slots {
		if s.Time == slotTime {
			return s.Available
		}
	}
	t.Fatalf("slot %s not found", slotTime)
	return 0
}

func TestBookingReducesAvailability(t *testing.T) {
	tests := []struct {
		name    string
		stylist *string
		// view -> свободно до и после записи
		want map[string][2]int
	}{
		{
			name:    "generic booking",
			stylist: nil,
			want: map[string][2]int{
				"":      {2, 1},
				"Iva":   {1, 1},
				"Maria": {1, 1},
			},
		},
		{
			name:    "stylist booking",
			stylist: ptr.Ptr("Iva"),
			want: map[string][2]int{
				"":      {2, 1},
				"Iva":   {1, 0},
				"Maria": {1, 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture("Iva", "Maria")
			slots := getAvailableSlots.NewUseCase(f.store, f.uc.salon, logger.NewNop())
			req := validRequest()
			req.Stylist = tt.stylist

			view := func(name string) *string {
				if name == "" {
					return nil
				}
				return ptr.Ptr(name)
			}

			for name, counts := range tt.want {
				assert.Equal(t, counts[0], availableAt(t, slots, req.Date, req.Time, view(name)), "before, view %q", name)
			}

			_, err := f.uc.Execute(context.Background(), req)
			require.NoError(t, err)

			for name, counts := range tt.want {
				assert.Equal(t, counts[1], availableAt(t, slots, req.Date, req.Time, view(name)), "after, view %q", name)
			}

			// соседнее время не затронуто
			assert.Equal(t, 2, availableAt(t, slots, req.Date, "10:00", nil))
		})
	}
}

func TestBookingFillsSlotUntilTaken(t *testing.T) {
	f := newFixture("Iva", "Maria")
	slots := getAvailableSlots.NewUseCase(f.store, f.uc.salon, logger.NewNop())

	for i := 0; i < 2; i++ {
		req := validRequest()
		req.ClientPhone = []string{"0887123456", "0887654321"}[i]
		_, err := f.uc.Execute(context.Background(), req)
		require.NoError(t, err)
	}

	resp, err := slots.Execute(context.Background(), &getAvailableSlots.Request{Date: "2025-03-10"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, "09:00", resp.Slots[0].Time)
	assert.Equal(t, 0, resp.Slots[0].Available)
	assert.Equal(t, domain.SlotTaken, resp.Slots[0].Status)

	_, err = f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}
