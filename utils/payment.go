// utils/payment.go
package utils

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"

	"go-storefront/config"
)

// ChargeRequest describes a card charge. Amount is an integer in minor
// currency units.
type ChargeRequest struct {
	Amount      int64
	Currency    string
	SourceToken string
	Description string
}

// ChargeResult is the gateway's record of a completed charge.
type ChargeResult struct {
	ID     string
	Amount int64
}

// Gateway abstracts the payment processor.
type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
	Refund(ctx context.Context, chargeID string) error
}

// StripeGateway charges cards through Stripe.
type StripeGateway struct {
	api *client.API
}

// NewStripeGateway returns a Gateway backed by the Stripe API.
func NewStripeGateway(cfg *config.Config) *StripeGateway {
	api := &client.API{}
	api.Init(cfg.StripeKey, nil)
	return &StripeGateway{api: api}
}

// Charge submits a charge for the given amount and source token.
func (g *StripeGateway) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	params := &stripe.ChargeParams{
		Amount:      stripe.Int64(req.Amount),
		Currency:    stripe.String(req.Currency),
		Description: stripe.String(req.Description),
	}
	params.Context = ctx
	if err := params.SetSource(req.SourceToken); err != nil {
		return nil, fmt.Errorf("invalid payment source: %w", err)
	}

	ch, err := g.api.Charges.New(params)
	if err != nil {
		return nil, fmt.Errorf("charge failed: %w", err)
	}
	return &ChargeResult{ID: ch.ID, Amount: ch.Amount}, nil
}

// Refund reverses a previous charge in full.
func (g *StripeGateway) Refund(ctx context.Context, chargeID string) error {
	params := &stripe.RefundParams{Charge: stripe.String(chargeID)}
	params.Context = ctx
	if _, err := g.api.Refunds.New(params); err != nil {
		return fmt.Errorf("refund of charge %s failed: %w", chargeID, err)
	}
	return nil
}
