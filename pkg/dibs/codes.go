package dibs

// Transaction status codes reported by the payment window and payinfo.
const (
	StatusTransactionInserted       = 0
	StatusDeclined                  = 1
	StatusAuthorizationApproved     = 2
	StatusCaptureSentToAcquirer     = 3
	StatusCaptureDeclinedByAcquirer = 4
	StatusCaptureCompleted          = 5
	StatusAuthorizationDeleted      = 6
	StatusCaptureBalanced           = 7
	StatusPartiallyRefunded         = 8
	StatusRefundSentToAcquirer      = 9
	StatusRefundDeclined            = 10
	StatusRefundCompleted           = 11
	StatusCapturePending            = 12
	StatusTicketTransaction         = 13
	StatusDeletedTicketTransaction  = 14
	StatusRefundPending             = 15
	StatusWaitingForShopApproval    = 16
	StatusDeclinedByDIBS            = 17
	StatusMulticapOpen              = 18
	StatusMulticapClosed            = 19
	StatusPostponed                 = 26
)

// Approved reports whether a callback status code means the payment went
// through: either the authorization was approved or, with capturenow, the
// capture already completed.
func Approved(statusCode int) bool {
	return statusCode == StatusAuthorizationApproved || statusCode == StatusCaptureCompleted
}

// Result codes of refund.cgi and capture.cgi replies.
const (
	ResultAccepted                = 0
	ResultNoResponseFromAcquirer  = 1
	ResultTimeout                 = 2
	ResultCardExpired             = 3
	ResultRejectedByAcquirer      = 4
	ResultAuthorisationTooOld     = 5
	ResultStatusDoesNotAllow      = 6
	ResultAmountTooHigh           = 7
	ResultParameterError          = 8
	ResultOrderNumberMismatch     = 9
	ResultReauthorisationRejected = 10
	ResultAcquirerUnreachable     = 11
	ResultConfirmRequestError     = 12
	ResultAlreadyPendingForBatch  = 14
	ResultBlockedByDIBS           = 15
)

var resultTexts = map[int]string{
	ResultAccepted:                "accepted",
	ResultNoResponseFromAcquirer:  "no response from acquirer",
	ResultTimeout:                 "timeout",
	ResultCardExpired:             "credit card expired",
	ResultRejectedByAcquirer:      "rejected by acquirer",
	ResultAuthorisationTooOld:     "authorisation older than 7 days",
	ResultStatusDoesNotAllow:      "transaction status does not allow function",
	ResultAmountTooHigh:           "amount too high",
	ResultParameterError:          "error in request parameters",
	ResultOrderNumberMismatch:     "order number does not match authorisation",
	ResultReauthorisationRejected: "re-authorisation rejected",
	ResultAcquirerUnreachable:     "unable to communicate with acquirer",
	ResultConfirmRequestError:     "confirm request error",
	ResultAlreadyPendingForBatch:  "capture already pending for batch",
	ResultBlockedByDIBS:           "capture or refund blocked by DIBS",
}

// ResultText returns a short description of a CGI result code.
func ResultText(result int) string {
	if text, ok := resultTexts[result]; ok {
		return text
	}

	return "unknown result code"
}

// Card type classification, derived from the paytype output parameter.
const (
	CardTypeCredit = "credit"
	CardTypeDebit  = "debit"
)

var cardTypes = map[string]string{
	// credit
	"ELEC":     CardTypeCredit, // VISA Electron
	"MC":       CardTypeCredit, // Mastercard
	"MC(DK)":   CardTypeCredit,
	"MC(SE)":   CardTypeCredit,
	"MC(YX)":   CardTypeCredit, // YX Mastercard
	"VISA":     CardTypeCredit,
	"VISA(DK)": CardTypeCredit,
	"VISA(SE)": CardTypeCredit,
	// debit
	"DK":   CardTypeDebit, // Dankort
	"V-DK": CardTypeDebit, // VISA-Dankort
}

// CardType maps a DIBS paytype to "credit" or "debit"; unknown paytypes
// (store cards, MobilePay, ...) return "".
func CardType(payType string) string {
	return cardTypes[payType]
}
