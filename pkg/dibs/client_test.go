package dibs_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tixbase/dibs-payment-service/pkg/dibs"
)

var testKeys = dibs.MerchantKeys{
	Key1: "11111111111111111111111111111111",
	Key2: "22222222222222222222222222222222",
}

// Vectors computed independently against the documented MD5 chain
// MD5(key2 + MD5(key1 + params)).
func TestMD5Keys(t *testing.T) {
	t.Run("Request", func(t *testing.T) {
		got := dibs.RequestMD5Key(testKeys, "90001234", "demo/2026/AB1CD/1", "208", 12500)
		assert.Equal(t, "06bfc395978010b33f945bcb2eb71589", got)
	})

	t.Run("Callback", func(t *testing.T) {
		got := dibs.CallbackAuthKey(testKeys, "1234567890", "208", 12500)
		assert.Equal(t, "8386dbb235539e606cae143d57c67961", got)
	})

	t.Run("Transaction", func(t *testing.T) {
		got := dibs.TransactionMD5Key(testKeys, "90001234", "demo/2026/AB1CD/1", "1234567890", 12500)
		assert.Equal(t, "0854b647a4c28770f27e3748e2109d23", got)
	})
}

func TestBuildCheckoutForm(t *testing.T) {
	client := dibs.NewClient("", "", nil)

	params := &dibs.CheckoutParams{
		MerchantID:  "90001234",
		OrderID:     "demo/2026/AB1CD/1",
		Amount:      12500,
		Currency:    "DKK",
		AcceptURL:   "https://tickets.example.com/return",
		CancelURL:   "https://tickets.example.com/cancel",
		CallbackURL: "https://tickets.example.com/webhook",
		Language:    "da",
		Decorator:   "responsive",
		CaptureNow:  true,
		TestMode:    true,
		Keys:        testKeys,
	}

	t.Run("Success", func(t *testing.T) {
		form, err := client.BuildCheckoutForm(params)

		require.NoError(t, err)
		assert.Equal(t, dibs.DefaultPaymentWindowURL, form.Action)
		assert.Equal(t, "90001234", form.Fields["merchant"])
		assert.Equal(t, "demo/2026/AB1CD/1", form.Fields["orderid"])
		assert.Equal(t, "12500", form.Fields["amount"])
		assert.Equal(t, "208", form.Fields["currency"])
		assert.Equal(t, "https://tickets.example.com/webhook", form.Fields["callbackurl"])
		assert.Equal(t, "da", form.Fields["lang"])
		assert.Equal(t, "responsive", form.Fields["decorator"])
		assert.Equal(t, "1", form.Fields["capturenow"])
		assert.Equal(t, "1", form.Fields["test"])
		assert.Equal(t, "06bfc395978010b33f945bcb2eb71589", form.Fields["md5key"])
	})

	t.Run("Production mode omits flags", func(t *testing.T) {
		prod := *params
		prod.CaptureNow = false
		prod.TestMode = false
		prod.OrderText = ""

		form, err := client.BuildCheckoutForm(&prod)

		require.NoError(t, err)
		assert.NotContains(t, form.Fields, "capturenow")
		assert.NotContains(t, form.Fields, "test")
		assert.NotContains(t, form.Fields, "ordertext")
	})

	t.Run("Failure - unsupported currency", func(t *testing.T) {
		bad := *params
		bad.Currency = "XXX"

		form, err := client.BuildCheckoutForm(&bad)

		assert.Error(t, err)
		assert.Nil(t, form)
	})
}

func TestVerifyCallback(t *testing.T) {
	client := dibs.NewClient("", "", nil)

	callback := &dibs.CallbackParams{
		Transact:   "1234567890",
		Amount:     12500,
		Currency:   "208",
		StatusCode: dibs.StatusAuthorizationApproved,
		AuthKey:    "8386dbb235539e606cae143d57c67961",
	}

	assert.True(t, client.VerifyCallback(testKeys, callback))

	tampered := *callback
	tampered.Amount = 1
	assert.False(t, client.VerifyCallback(testKeys, &tampered))

	forged := *callback
	forged.AuthKey = "deadbeefdeadbeefdeadbeefdeadbeef"
	assert.False(t, client.VerifyCallback(testKeys, &forged))
}

func TestRefund(t *testing.T) {
	params := &dibs.TransactionParams{
		MerchantID: "90001234",
		OrderID:    "demo/2026/AB1CD/1",
		Transact:   "1234567890",
		Amount:     12500,
		Currency:   "208",
		TestMode:   true,
		Keys:       testKeys,
	}

	creds := dibs.Credentials{Username: "apiuser", Password: "apipass"}

	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/cgi-adm/refund.cgi", r.URL.Path)

			user, pass, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "apiuser", user)
			assert.Equal(t, "apipass", pass)

			require.NoError(t, r.ParseForm())
			assert.Equal(t, "90001234", r.PostForm.Get("merchant"))
			assert.Equal(t, "1234567890", r.PostForm.Get("transact"))
			assert.Equal(t, "12500", r.PostForm.Get("amount"))
			assert.Equal(t, "true", r.PostForm.Get("textreply"))
			assert.Equal(t, "1", r.PostForm.Get("test"))
			assert.Equal(t, "0854b647a4c28770f27e3748e2109d23", r.PostForm.Get("md5key"))

			w.Write([]byte("status=ACCEPTED&result=0"))
		}))
		defer server.Close()

		client := dibs.NewClient("", server.URL, server.Client())

		reply, err := client.Refund(context.Background(), creds, params)

		require.NoError(t, err)
		assert.True(t, reply.Accepted())
		assert.Equal(t, "ACCEPTED", reply.Status)
	})

	t.Run("Declined", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("status=DECLINED&result=7&message=Amount too high"))
		}))
		defer server.Close()

		client := dibs.NewClient("", server.URL, server.Client())

		reply, err := client.Refund(context.Background(), creds, params)

		require.NoError(t, err)
		assert.False(t, reply.Accepted())
		assert.Equal(t, 7, reply.Result)
		assert.Equal(t, "Amount too high", reply.Message)
	})

	t.Run("Failure - missing credentials", func(t *testing.T) {
		client := dibs.NewClient("", "http://127.0.0.1:1", nil)

		reply, err := client.Refund(context.Background(), dibs.Credentials{}, params)

		assert.Error(t, err)
		assert.Nil(t, reply)
	})

	t.Run("Failure - http error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "forbidden", http.StatusForbidden)
		}))
		defer server.Close()

		client := dibs.NewClient("", server.URL, server.Client())

		reply, err := client.Refund(context.Background(), creds, params)

		assert.Error(t, err)
		assert.Nil(t, reply)
	})
}

func TestCapture(t *testing.T) {
	params := &dibs.TransactionParams{
		MerchantID: "90001234",
		OrderID:    "demo/2026/AB1CD/1",
		Transact:   "1234567890",
		Amount:     12500,
		Currency:   "208",
		Keys:       testKeys,
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cgi-bin/capture.cgi", r.URL.Path)

		_, _, ok := r.BasicAuth()
		assert.False(t, ok, "capture.cgi must not send basic auth")

		w.Write([]byte("status=ACCEPTED&result=0"))
	}))
	defer server.Close()

	client := dibs.NewClient("", server.URL, server.Client())

	reply, err := client.Capture(context.Background(), params)

	require.NoError(t, err)
	assert.True(t, reply.Accepted())
}

func TestApproved(t *testing.T) {
	assert.True(t, dibs.Approved(dibs.StatusAuthorizationApproved))
	assert.True(t, dibs.Approved(dibs.StatusCaptureCompleted))
	assert.False(t, dibs.Approved(dibs.StatusDeclined))
	assert.False(t, dibs.Approved(dibs.StatusDeclinedByDIBS))
	assert.False(t, dibs.Approved(dibs.StatusTransactionInserted))
}

func TestCardType(t *testing.T) {
	assert.Equal(t, dibs.CardTypeCredit, dibs.CardType("VISA"))
	assert.Equal(t, dibs.CardTypeCredit, dibs.CardType("MC(DK)"))
	assert.Equal(t, dibs.CardTypeDebit, dibs.CardType("DK"))
	assert.Equal(t, dibs.CardTypeDebit, dibs.CardType("V-DK"))
	assert.Empty(t, dibs.CardType("MPO_Nets"))
}

func TestCurrency(t *testing.T) {
	number, err := dibs.CurrencyNumber("DKK")
	require.NoError(t, err)
	assert.Equal(t, "208", number)

	alpha, err := dibs.CurrencyAlpha("978")
	require.NoError(t, err)
	assert.Equal(t, "EUR", alpha)

	_, err = dibs.CurrencyNumber("BTC")
	assert.Error(t, err)

	_, err = dibs.CurrencyAlpha("000")
	assert.Error(t, err)
}
