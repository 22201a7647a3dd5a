package mpesa

import (
	"fmt"
	"math"

	"github.com/steve-ongera/WildQuest/internal/domain"
)

// CallbackEnvelope mirrors the provider's stkCallback payload.
type CallbackEnvelope struct {
	Body struct {
		StkCallback struct {
			MerchantRequestID string `json:"MerchantRequestID"`
			CheckoutRequestID string `json:"CheckoutRequestID"`
			ResultCode        int    `json:"ResultCode"`
			ResultDesc        string `json:"ResultDesc"`
			CallbackMetadata  struct {
				Item []MetadataItem `json:"Item"`
			} `json:"CallbackMetadata"`
		} `json:"stkCallback"`
	} `json:"Body"`
}

type MetadataItem struct {
	Name  string `json:"Name"`
	Value any    `json:"Value"`
}

// Result flattens the envelope into the fields the payment flow acts on.
// Metadata items are only present on success.
func (e *CallbackEnvelope) Result() (domain.PaymentResult, error) {
	cb := e.Body.StkCallback
	if cb.CheckoutRequestID == "" {
		return domain.PaymentResult{}, fmt.Errorf("callback missing CheckoutRequestID")
	}

	res := domain.PaymentResult{
		CheckoutRequestID: cb.CheckoutRequestID,
		ResultCode:        cb.ResultCode,
		ResultDesc:        cb.ResultDesc,
	}

	for _, item := range cb.CallbackMetadata.Item {
		switch item.Name {
		case "Amount":
			if v, ok := item.Value.(float64); ok {
				res.AmountCents = int64(math.Round(v * 100))
			}
		case "MpesaReceiptNumber":
			if v, ok := item.Value.(string); ok {
				res.MpesaReceipt = v
			}
		case "PhoneNumber":
			switch v := item.Value.(type) {
			case float64:
				res.Phone = fmt.Sprintf("%.0f", v)
			case string:
				res.Phone = v
			}
		}
	}

	return res, nil
}
