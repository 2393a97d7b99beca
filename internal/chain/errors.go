package chain

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
)

// RelayError carries the user-facing explanation of a failed relay alongside
// the raw node error for logs.
type RelayError struct {
	Reason string
	cause  error
}

func (e *RelayError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.cause)
	}
	return e.Reason
}

func (e *RelayError) Unwrap() error { return e.cause }

// NewRelayError builds a RelayError for failures detected before submission,
// using the same reasons the revert translator produces.
func NewRelayError(reason string, cause error) *RelayError {
	return &RelayError{Reason: reason, cause: cause}
}

// User-facing reasons for known contract failures. The contracts revert with
// custom errors, so these are keyed off the 4-byte selectors below.
const (
	ReasonUnauthorizedSigner    = "chip not registered to this wallet"
	ReasonInvalidNonce          = "payment out of order or already processed"
	ReasonExpiredSignature      = "authorization expired, please tap again"
	ReasonInvalidSignature      = "signature verification failed"
	ReasonInsufficientAllowance = "token allowance too low: approve the payments contract before paying"
	ReasonInsufficientBalance   = "insufficient token balance"
	ReasonUnknownRevert         = "transaction reverted"
)

var selectorReasons = map[string]string{
	errorSelector("UnauthorizedSigner()"): ReasonUnauthorizedSigner,
	errorSelector("InvalidNonce()"):       ReasonInvalidNonce,
	errorSelector("ExpiredSignature()"):   ReasonExpiredSignature,
	errorSelector("InvalidSignature()"):   ReasonInvalidSignature,
	errorSelector("ChipNotRegistered()"):  ReasonUnauthorizedSigner,
}

func errorSelector(signature string) string {
	return "0x" + hex.EncodeToString(crypto.Keccak256([]byte(signature))[:4])
}

// dataError is the shape go-ethereum's rpc errors expose revert data through.
type dataError interface {
	ErrorData() interface{}
}

// TranslateRevert maps a node error from a failed call or gas estimate to a
// RelayError with a reason a payer can act on. Unknown reverts keep the raw
// error wrapped for diagnosis.
func TranslateRevert(err error) *RelayError {
	if err == nil {
		return nil
	}

	if de, ok := err.(dataError); ok {
		if reason, ok := reasonFromData(de.ErrorData()); ok {
			return &RelayError{Reason: reason, cause: err}
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unauthorized signer") || strings.Contains(msg, "chip not registered"):
		return &RelayError{Reason: ReasonUnauthorizedSigner, cause: err}
	case strings.Contains(msg, "invalid nonce"):
		return &RelayError{Reason: ReasonInvalidNonce, cause: err}
	case strings.Contains(msg, "expired"):
		return &RelayError{Reason: ReasonExpiredSignature, cause: err}
	case strings.Contains(msg, "invalid signature"):
		return &RelayError{Reason: ReasonInvalidSignature, cause: err}
	case strings.Contains(msg, "insufficient allowance"):
		return &RelayError{Reason: ReasonInsufficientAllowance, cause: err}
	case strings.Contains(msg, "exceeds balance") || strings.Contains(msg, "insufficient balance"):
		return &RelayError{Reason: ReasonInsufficientBalance, cause: err}
	}
	return &RelayError{Reason: ReasonUnknownRevert, cause: err}
}

func reasonFromData(data interface{}) (string, bool) {
	raw, ok := data.(string)
	if !ok || len(raw) < 10 || !strings.HasPrefix(raw, "0x") {
		return "", false
	}
	if reason, ok := selectorReasons[strings.ToLower(raw[:10])]; ok {
		return reason, true
	}
	// Error(string) reverts carry the message ABI-encoded after the selector.
	if strings.EqualFold(raw[:10], "0x08c379a0") {
		if decoded, err := hex.DecodeString(raw[2:]); err == nil {
			if msg, err := abiDecodeRevertString(decoded); err == nil {
				return reasonFromMessage(msg)
			}
		}
	}
	return "", false
}

func abiDecodeRevertString(data []byte) (string, error) {
	out, err := revertStringArgs.Unpack(data[4:])
	if err != nil {
		return "", err
	}
	msg, _ := out[0].(string)
	return msg, nil
}

func reasonFromMessage(msg string) (string, bool) {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "insufficient allowance"):
		return ReasonInsufficientAllowance, true
	case strings.Contains(lower, "exceeds balance") || strings.Contains(lower, "insufficient balance"):
		return ReasonInsufficientBalance, true
	case strings.Contains(lower, "invalid nonce"):
		return ReasonInvalidNonce, true
	case strings.Contains(lower, "expired"):
		return ReasonExpiredSignature, true
	case msg != "":
		return msg, true
	}
	return "", false
}
