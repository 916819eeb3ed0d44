package dibs

import (
	"context"
	"crypto/hmac"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultPaymentWindowURL is where the payer's browser posts the hosted
	// checkout form (DIBS D2 "Standard" payment window).
	DefaultPaymentWindowURL = "https://payment.architrade.com/paymentweb/start.action"

	// DefaultAPIBaseURL hosts the server-to-server CGI endpoints.
	DefaultAPIBaseURL = "https://payment.architrade.com"

	refundPath  = "/cgi-adm/refund.cgi"
	capturePath = "/cgi-bin/capture.cgi"
)

// Credentials is an API user for the cgi-adm endpoints, set up per merchant
// in the DIBS administration (Setup > User Setup > API users).
type Credentials struct {
	Username string
	Password string
}

func (c Credentials) Complete() bool {
	return c.Username != "" && c.Password != ""
}

// MerchantKeys are the two MD5 keys used for the chained request/response
// signing scheme. Both are 32 hex characters.
type MerchantKeys struct {
	Key1 string
	Key2 string
}

// CheckoutParams describes one hosted-checkout attempt.
type CheckoutParams struct {
	MerchantID  string
	OrderID     string
	Amount      int64  // minor units
	Currency    string // ISO-4217 alpha code, e.g. "DKK"
	AcceptURL   string
	CancelURL   string
	CallbackURL string
	Language    string
	Decorator   string
	OrderText   string
	CaptureNow  bool
	TestMode    bool
	Keys        MerchantKeys
}

// CheckoutForm is the signed field set the payer's browser must POST to the
// payment window.
type CheckoutForm struct {
	Action string            `json:"action"`
	Fields map[string]string `json:"fields"`
}

// CallbackParams are the output parameters DIBS sends to the callback and
// accept URLs after the payer completes the payment window.
type CallbackParams struct {
	Transact   string
	OrderID    string
	Amount     int64
	Currency   string // numeric ISO-4217 code, as DIBS sends it
	StatusCode int
	AuthKey    string
	PayType    string
	CardNoMask string
	Acquirer   string
}

// TransactionParams identify an authorized transaction for refund.cgi and
// capture.cgi calls.
type TransactionParams struct {
	MerchantID string
	OrderID    string
	Transact   string
	Amount     int64  // minor units
	Currency   string // numeric ISO-4217 code
	TestMode   bool
	Keys       MerchantKeys
}

// Reply is the urlencoded reply body of the CGI endpoints.
type Reply struct {
	Status  string     `json:"status"`
	Result  int        `json:"result"`
	Message string     `json:"message"`
	Raw     url.Values `json:"raw"`
}

func (r *Reply) Accepted() bool {
	return r.Result == ResultAccepted
}

// Client defines the calls the payment service makes against DIBS. The legacy
// D2 API has no SDK, so the whole wire contract lives here.
type Client interface {
	BuildCheckoutForm(params *CheckoutParams) (*CheckoutForm, error)
	VerifyCallback(keys MerchantKeys, cb *CallbackParams) bool
	Refund(ctx context.Context, creds Credentials, params *TransactionParams) (*Reply, error)
	Capture(ctx context.Context, params *TransactionParams) (*Reply, error)
}

type client struct {
	paymentWindowURL string
	apiBaseURL       string
	httpClient       *http.Client
}

func NewClient(paymentWindowURL, apiBaseURL string, httpClient *http.Client) Client {
	if paymentWindowURL == "" {
		paymentWindowURL = DefaultPaymentWindowURL
	}

	if apiBaseURL == "" {
		apiBaseURL = DefaultAPIBaseURL
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &client{
		paymentWindowURL: paymentWindowURL,
		apiBaseURL:       apiBaseURL,
		httpClient:       httpClient,
	}
}

// BuildCheckoutForm implements Client.
func (c *client) BuildCheckoutForm(params *CheckoutParams) (*CheckoutForm, error) {
	currencyNumber, err := CurrencyNumber(params.Currency)
	if err != nil {
		return nil, err
	}

	amount := strconv.FormatInt(params.Amount, 10)

	fields := map[string]string{
		"merchant":    params.MerchantID,
		"orderid":     params.OrderID,
		"amount":      amount,
		"currency":    currencyNumber,
		"accepturl":   params.AcceptURL,
		"cancelurl":   params.CancelURL,
		"callbackurl": params.CallbackURL,
		"md5key":      RequestMD5Key(params.Keys, params.MerchantID, params.OrderID, currencyNumber, params.Amount),
	}

	if params.Language != "" {
		fields["lang"] = params.Language
	}

	if params.Decorator != "" {
		fields["decorator"] = params.Decorator
	}

	if params.OrderText != "" {
		fields["ordertext"] = params.OrderText
	}

	if params.CaptureNow {
		fields["capturenow"] = "1"
	}

	if params.TestMode {
		fields["test"] = "1"
	}

	return &CheckoutForm{Action: c.paymentWindowURL, Fields: fields}, nil
}

// VerifyCallback implements Client. The authkey authenticates the callback;
// it is the only thing standing between a forged form POST and a confirmed
// payment, so the comparison is constant time.
func (c *client) VerifyCallback(keys MerchantKeys, cb *CallbackParams) bool {
	expected := CallbackAuthKey(keys, cb.Transact, cb.Currency, cb.Amount)

	return hmac.Equal([]byte(expected), []byte(cb.AuthKey))
}

// Refund implements Client. refund.cgi requires HTTP basic auth with the
// merchant's API user.
func (c *client) Refund(ctx context.Context, creds Credentials, params *TransactionParams) (*Reply, error) {
	if !creds.Complete() {
		return nil, fmt.Errorf("dibs refund: missing api credentials for merchant %s", params.MerchantID)
	}

	return c.postCGI(ctx, refundPath, &creds, params)
}

// Capture implements Client. capture.cgi authenticates through the md5key
// alone, no API user needed.
func (c *client) Capture(ctx context.Context, params *TransactionParams) (*Reply, error) {
	return c.postCGI(ctx, capturePath, nil, params)
}

func (c *client) postCGI(ctx context.Context, path string, creds *Credentials, params *TransactionParams) (*Reply, error) {
	amount := strconv.FormatInt(params.Amount, 10)

	payload := url.Values{}
	payload.Set("merchant", params.MerchantID)
	payload.Set("orderid", params.OrderID)
	payload.Set("transact", params.Transact)
	payload.Set("amount", amount)
	payload.Set("currency", params.Currency)
	payload.Set("textreply", "true")
	payload.Set("md5key", TransactionMD5Key(params.Keys, params.MerchantID, params.OrderID, params.Transact, params.Amount))

	if params.TestMode {
		payload.Set("test", "1")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBaseURL+path, strings.NewReader(payload.Encode()))
	if err != nil {
		return nil, fmt.Errorf("dibs %s: build request: %w", path, err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	if creds != nil {
		req.SetBasicAuth(creds.Username, creds.Password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dibs %s: %w", path, err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("dibs %s: read reply: %w", path, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dibs %s: http %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return parseReply(string(body))
}

// parseReply decodes the urlencoded status/result/message reply of the CGI
// endpoints. A missing result field counts as declined, matching how the
// payment window behaves on malformed replies.
func parseReply(body string) (*Reply, error) {
	values, err := url.ParseQuery(strings.TrimSpace(body))
	if err != nil {
		return nil, fmt.Errorf("dibs: parse reply %q: %w", body, err)
	}

	result := -1
	if raw := values.Get("result"); raw != "" {
		result, err = strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("dibs: invalid result %q: %w", raw, err)
		}
	}

	return &Reply{
		Status:  values.Get("status"),
		Result:  result,
		Message: strings.TrimSpace(values.Get("message")),
		Raw:     values,
	}, nil
}

// RequestMD5Key signs the checkout form: MD5(key2 + MD5(key1 + params)).
func RequestMD5Key(keys MerchantKeys, merchantID, orderID, currencyNumber string, amount int64) string {
	params := "merchant=" + merchantID + "&orderid=" + orderID + "&currency=" + currencyNumber + "&amount=" + strconv.FormatInt(amount, 10)

	return md5Hex(keys.Key2 + md5Hex(keys.Key1+params))
}

// CallbackAuthKey computes the authkey DIBS attaches to approved callbacks.
func CallbackAuthKey(keys MerchantKeys, transact, currencyNumber string, amount int64) string {
	params := "transact=" + transact + "&amount=" + strconv.FormatInt(amount, 10) + "&currency=" + currencyNumber

	return md5Hex(keys.Key2 + md5Hex(keys.Key1+params))
}

// TransactionMD5Key signs refund.cgi and capture.cgi calls.
func TransactionMD5Key(keys MerchantKeys, merchantID, orderID, transact string, amount int64) string {
	params := "merchant=" + merchantID + "&orderid=" + orderID + "&transact=" + transact + "&amount=" + strconv.FormatInt(amount, 10)

	return md5Hex(keys.Key2 + md5Hex(keys.Key1+params))
}

func md5Hex(s string) string {
	sum := md5.Sum([]byte(s))

	return hex.EncodeToString(sum[:])
}
