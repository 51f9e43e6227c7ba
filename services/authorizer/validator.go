package authorizer

import (
	// Go Internal Packages
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	// Local Packages
	errors "tx-authorizer/errors"
	models "tx-authorizer/models"

	// External Packages
	"github.com/shopspring/decimal"
)

var jsonNull = []byte("null")

// ParseRequest decodes the raw body and checks that all eight required
// fields are present and non-null. It runs before any store access and has
// no side effects.
func ParseRequest(body []byte) (*models.RawAuthRequest, error) {
	var raw models.RawAuthRequest
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, errors.InvalidJSONErr(err)
	}

	present := raw.Bank != nil &&
		raw.MerchantName != nil &&
		raw.MerchantToken != nil &&
		rawPresent(raw.CCNum) &&
		raw.SecurityCode != nil &&
		rawPresent(raw.Amount) &&
		raw.CardZip != nil &&
		raw.Timestamp != nil
	if !present {
		return nil, errors.MissingFieldsErr()
	}
	return &raw, nil
}

func rawPresent(raw json.RawMessage) bool {
	return len(raw) > 0 && !bytes.Equal(raw, jsonNull)
}

// CoerceAmount interprets a raw amount as a decimal. Clients send it as
// either a JSON number or a numeric string.
func CoerceAmount(raw json.RawMessage) (decimal.Decimal, error) {
	return decimal.NewFromString(rawText(raw))
}

// CoerceCardNumber interprets a raw cc_num as an integer, again accepting
// number or numeric-string form.
func CoerceCardNumber(raw json.RawMessage) (int64, error) {
	return strconv.ParseInt(rawText(raw), 10, 64)
}

// RawText returns the textual content of a raw number-or-string field,
// with surrounding quotes stripped. Used for audit rows when coercion
// fails and there is no typed value to fall back on.
func RawText(raw json.RawMessage) string {
	return rawText(raw)
}

func rawText(raw json.RawMessage) string {
	s := string(raw)
	if strings.HasPrefix(s, `"`) {
		var unquoted string
		if err := json.Unmarshal(raw, &unquoted); err == nil {
			return unquoted
		}
	}
	return s
}
