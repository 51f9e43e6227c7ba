package models

import (
	// Go Internal Packages
	"encoding/json"

	// External Packages
	"github.com/shopspring/decimal"
)

// RawAuthRequest mirrors the inbound JSON body before any coercion. Pointer
// and RawMessage fields let the validator tell an absent or null field apart
// from a zero value. cc_num and amount stay raw because clients send them as
// either numbers or numeric strings.
type RawAuthRequest struct {
	Bank          *string         `json:"bank"`
	MerchantName  *string         `json:"merchant_name"`
	MerchantToken *string         `json:"merchant_token"`
	CCNum         json.RawMessage `json:"cc_num"`
	SecurityCode  *string         `json:"security_code"`
	Amount        json.RawMessage `json:"amount"`
	CardZip       *string         `json:"card_zip"`
	Timestamp     *string         `json:"timestamp"`
}

// AuthRequest is the fully coerced authorization request handed to the
// engine once validation has passed.
type AuthRequest struct {
	Bank          string
	MerchantName  string
	MerchantToken string
	CardNumber    int64
	SecurityCode  string
	Amount        decimal.Decimal
	CardZip       string
	Timestamp     string
}

// Outcome is the terminal classification of a request. It is the audit
// source of truth; HTTP status codes are derived from errors at the
// transport boundary, never the other way around.
type Outcome string

const (
	OutcomeApproved     Outcome = "approved"
	OutcomeDeclined     Outcome = "declined"
	OutcomeError        Outcome = "error"
	OutcomeUnauthorized Outcome = "merchant unauthorized"
	OutcomeBankFailure  Outcome = "bank failure"
)
