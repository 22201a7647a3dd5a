package mpesa

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/steve-ongera/WildQuest/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(config.MpesaConfig{
		BaseURL:        srv.URL,
		ConsumerKey:    "key",
		ConsumerSecret: "secret",
		ShortCode:      "174379",
		Passkey:        "testpasskey",
		CallbackURL:    "https://example.com/api/payments/mpesa/callback",
		Timeout:        5 * time.Second,
	}, newTestLogger(t))
}

func TestClient_STKPush(t *testing.T) {
	var gotPush STKPushRequest
	var gotAuth string

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/v1/generate", func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "key", user)
		assert.Equal(t, "secret", pass)
		json.NewEncoder(w).Encode(map[string]string{
			"access_token": "tok-1",
			"expires_in":   "3599",
		})
	})
	mux.HandleFunc("/mpesa/stkpush/v1/processrequest", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPush))
		json.NewEncoder(w).Encode(STKPushResponse{
			MerchantRequestID: "mr-1",
			CheckoutRequestID: "ws_CO_191220231020363925",
			ResponseCode:      "0",
		})
	})

	client := newTestClient(t, mux)

	resp, err := client.STKPush(context.Background(), "254712345678", 38_000_00, "booking-1", "WildQuest booking")
	require.NoError(t, err)

	assert.Equal(t, "ws_CO_191220231020363925", resp.CheckoutRequestID)
	assert.Equal(t, "Bearer tok-1", gotAuth)

	// Daraja takes whole shillings
	assert.Equal(t, int64(38_000), gotPush.Amount)
	assert.Equal(t, "254712345678", gotPush.PhoneNumber)
	assert.Equal(t, "174379", gotPush.BusinessShortCode)
	assert.Equal(t, "CustomerPayBillOnline", gotPush.TransactionType)

	decoded, err := base64.StdEncoding.DecodeString(gotPush.Password)
	require.NoError(t, err)
	assert.Equal(t, "174379"+"testpasskey"+gotPush.Timestamp, string(decoded))
}

func TestClient_STKPush_Rejected(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/v1/generate", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-1", "expires_in": "3599"})
	})
	mux.HandleFunc("/mpesa/stkpush/v1/processrequest", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(STKPushResponse{
			ResponseCode:        "1",
			ResponseDescription: "Invalid PhoneNumber",
		})
	})

	client := newTestClient(t, mux)

	_, err := client.STKPush(context.Background(), "banana", 100_00, "booking-1", "desc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rejected")
}

func TestClient_TokenReused(t *testing.T) {
	var tokenCalls int

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/v1/generate", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls++
		json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-1", "expires_in": "3599"})
	})
	mux.HandleFunc("/mpesa/stkpush/v1/processrequest", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(STKPushResponse{CheckoutRequestID: "ws_CO_1", ResponseCode: "0"})
	})

	client := newTestClient(t, mux)

	for i := 0; i < 3; i++ {
		_, err := client.STKPush(context.Background(), "254712345678", 100_00, "b", "d")
		require.NoError(t, err)
	}

	assert.Equal(t, 1, tokenCalls)
}

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0712345678", "254712345678"},
		{"+254712345678", "254712345678"},
		{"254712345678", "254712345678"},
		{" 0712 345 678 ", "254712345678"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizePhone(tc.in), tc.in)
	}
}

func TestCallbackEnvelope_Result_Success(t *testing.T) {
	payload := []byte(`{
		"Body": {
			"stkCallback": {
				"MerchantRequestID": "mr-1",
				"CheckoutRequestID": "ws_CO_191220231020363925",
				"ResultCode": 0,
				"ResultDesc": "The service request is processed successfully.",
				"CallbackMetadata": {
					"Item": [
						{"Name": "Amount", "Value": 38000.00},
						{"Name": "MpesaReceiptNumber", "Value": "SGR7TYKXLA"},
						{"Name": "TransactionDate", "Value": 20260827143022},
						{"Name": "PhoneNumber", "Value": 254712345678}
					]
				}
			}
		}
	}`)

	var env CallbackEnvelope
	require.NoError(t, json.Unmarshal(payload, &env))

	result, err := env.Result()
	require.NoError(t, err)

	assert.True(t, result.Succeeded())
	assert.Equal(t, "ws_CO_191220231020363925", result.CheckoutRequestID)
	assert.Equal(t, int64(38_000_00), result.AmountCents)
	assert.Equal(t, "SGR7TYKXLA", result.MpesaReceipt)
	assert.Equal(t, "254712345678", result.Phone)
}

func TestCallbackEnvelope_Result_Failure(t *testing.T) {
	payload := []byte(`{
		"Body": {
			"stkCallback": {
				"MerchantRequestID": "mr-1",
				"CheckoutRequestID": "ws_CO_191220231020363925",
				"ResultCode": 1032,
				"ResultDesc": "Request cancelled by user"
			}
		}
	}`)

	var env CallbackEnvelope
	require.NoError(t, json.Unmarshal(payload, &env))

	result, err := env.Result()
	require.NoError(t, err)

	assert.False(t, result.Succeeded())
	assert.Equal(t, 1032, result.ResultCode)
	assert.Empty(t, result.MpesaReceipt)
}

func TestCallbackEnvelope_Result_MissingCheckout(t *testing.T) {
	var env CallbackEnvelope
	_, err := env.Result()
	assert.Error(t, err)
}
