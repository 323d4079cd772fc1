package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingIntents struct {
	amount   int64
	currency string
	methods  []string
	err      error
}

func (r *recordingIntents) CreateIntent(_ context.Context, amount int64, currency string, methods []string) (string, error) {
	r.amount, r.currency, r.methods = amount, currency, methods
	if r.err != nil {
		return "", r.err
	}
	return "pi_123_secret_456", nil
}

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		price float64
		want  int64
	}{
		{19.99, 1999},
		{19.999, 1999},
		{10, 1000},
		{0.1 + 0.2, 30},
		{0.07, 7},
		{1.005, 100},
		{0, 0},
		{1234567.89, 123456789},
	}
	for _, tt := range tests {
		got, err := ToMinorUnits(tt.price)
		require.NoError(t, err, "%v", tt.price)
		assert.Equal(t, tt.want, got, "%v", tt.price)
	}
}

func TestToMinorUnitsRejects(t *testing.T) {
	for _, p := range []float64{-1, math.NaN(), math.Inf(1), 1e300} {
		_, err := ToMinorUnits(p)
		assert.ErrorIs(t, err, ErrInvalidPrice, "%v", p)
	}
}

func TestCreateIntentRequestsUSDCard(t *testing.T) {
	rec := &recordingIntents{}
	svc := NewPaymentService(rec)

	secret, err := svc.CreateIntent(context.Background(), 19.99)
	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret_456", secret)
	assert.Equal(t, int64(1999), rec.amount)
	assert.Equal(t, "usd", rec.currency)
	assert.Equal(t, []string{"card"}, rec.methods)
}

func TestCreateIntentErrors(t *testing.T) {
	_, err := NewPaymentService(nil).CreateIntent(context.Background(), 5)
	assert.ErrorIs(t, err, ErrPaymentsDisabled)

	_, err = NewPaymentService(nil).CreateIntent(context.Background(), -5)
	assert.ErrorIs(t, err, ErrInvalidPrice)

	rec := &recordingIntents{err: errors.New("card_declined")}
	_, err = NewPaymentService(rec).CreateIntent(context.Background(), 5)
	assert.ErrorIs(t, err, ErrPaymentProcessor)
}
