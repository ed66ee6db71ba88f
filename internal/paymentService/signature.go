package payment

import (
	"crypto/hmac"
	"crypto/md5"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Gateway form field names per the ITN contract.
const (
	FieldPaymentStatus = "payment_status"
	FieldPaymentID     = "m_payment_id"
	FieldGatewayTxnID  = "pf_payment_id"
	FieldAmountGross   = "amount_gross"
	FieldReference     = "custom_str1"
	FieldPurpose       = "custom_str2"
	FieldSignature     = "signature"
)

// Gateway payment_status values.
const (
	StatusComplete  = "COMPLETE"
	StatusCancelled = "CANCELLED"
	StatusFailed    = "FAILED"
)

// Sign computes the gateway signature over the callback parameters:
// keys sorted, empty values and the signature field itself skipped, values
// url-encoded, the shared passphrase appended, MD5 hex over the result.
func Sign(params map[string]string, passphrase string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		if k == FieldSignature || params[k] == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(params[k]))
	}
	if passphrase != "" {
		b.WriteString("&passphrase=")
		b.WriteString(url.QueryEscape(passphrase))
	}

	return fmt.Sprintf("%x", md5.Sum([]byte(b.String())))
}

// VerifySignature recomputes the signature and compares it to the one the
// callback carried. Comparison is constant-time.
func VerifySignature(params map[string]string, passphrase string) bool {
	claimed, ok := params[FieldSignature]
	if !ok || claimed == "" {
		return false
	}
	expected := Sign(params, passphrase)
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(claimed)))
}
