package mpesa

import (
	"context"

	"github.com/steve-ongera/WildQuest/internal/service/ports"
)

// RequestPush adapts STKPush to the payment gateway port: phone
// normalization happens here so services pass numbers through untouched.
func (c *Client) RequestPush(ctx context.Context, phone string, amountCents int64, accountRef, description string) (*ports.STKPush, error) {
	resp, err := c.STKPush(ctx, NormalizePhone(phone), amountCents, accountRef, description)
	if err != nil {
		return nil, err
	}

	return &ports.STKPush{
		MerchantRequestID: resp.MerchantRequestID,
		CheckoutRequestID: resp.CheckoutRequestID,
	}, nil
}
