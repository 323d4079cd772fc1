package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

var (
	ErrInvalidPrice     = errors.New("invalid price")
	ErrPaymentsDisabled = errors.New("payments are not configured")
	ErrPaymentProcessor = errors.New("payment processor error")
)

const (
	paymentCurrency = "usd"
	paymentMethod   = "card"
)

// IntentCreator is the part of the payment processor the bridge needs.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amount int64, currency string, methods []string) (clientSecret string, err error)
}

type StripeIntents struct {
	api *client.API
}

func NewStripeIntents(secretKey string) *StripeIntents {
	return &StripeIntents{api: client.New(secretKey, nil)}
}

func (s *StripeIntents) CreateIntent(ctx context.Context, amount int64, currency string, methods []string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice(methods),
	}
	params.Context = ctx
	pi, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}

type PaymentService struct {
	intents IntentCreator
}

// NewPaymentService accepts a nil creator, in which case every payment
// request fails with ErrPaymentsDisabled.
func NewPaymentService(intents IntentCreator) *PaymentService {
	return &PaymentService{intents: intents}
}

// CreateIntent requests a card payment in USD for price, given in dollars.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount, err := ToMinorUnits(price)
	if err != nil {
		return "", err
	}
	if s.intents == nil {
		return "", ErrPaymentsDisabled
	}
	secret, err := s.intents.CreateIntent(ctx, amount, paymentCurrency, []string{paymentMethod})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPaymentProcessor, err)
	}
	return secret, nil
}

// ToMinorUnits converts dollars to cents, truncating anything past the second
// decimal place. It works on the shortest decimal form of price so that
// 19.99 gives 1999 even though 19.99*100 is 1998.99... in binary.
func ToMinorUnits(price float64) (int64, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPrice, price)
	}
	if price >= math.MaxInt64/100 {
		return 0, fmt.Errorf("%w: %v out of range", ErrInvalidPrice, price)
	}

	s := strconv.FormatFloat(price, 'f', -1, 64)
	whole, frac, _ := strings.Cut(s, ".")
	frac = (frac + "00")[:2]

	dollars, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPrice, err)
	}
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPrice, err)
	}
	return dollars*100 + cents, nil
}
