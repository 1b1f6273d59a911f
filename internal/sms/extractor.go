// Package sms extracts structured invoice data from bank SMS notifications.
// Saudi bank messages arrive as loose key:value lines with Arabic labels, so
// extraction is literal line splitting rather than language understanding.
package sms

import (
	"strconv"
	"strings"

	"masroof/internal/models"
)

// Protocol constants of the SMS format. These are fixed by the banks
// sending the messages, not configurable per deployment.
const (
	AmountLabel   = "مبلغ"
	MerchantLabel = "لدى"
	CurrencyToken = "SAR"
)

// Result is the outcome of extracting one SMS message. RawMessage is always
// populated; Amount and Merchant are set together on success and both nil on
// failure. Malformed input is an expected, high-frequency condition, so a
// failed extraction is a state, never an error.
type Result struct {
	RawMessage string
	Amount     *float64
	Merchant   *string
	Status     models.ExtractionStatus
}

// ParseLines splits a raw text block into key/value pairs. Each line
// containing a colon is split at the first colon only, with both segments
// trimmed; lines without a colon are skipped. When a label repeats, the
// last occurrence wins. ParseLines always succeeds.
func ParseLines(text string) map[string]string {
	fields := make(map[string]string)
	for _, line := range strings.Split(text, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		fields[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return fields
}

// Extract parses one SMS message into a Result. Extraction succeeds only
// when both the amount and merchant labels are present and the amount value
// parses as a number after stripping the currency token. Any failure is
// total: Amount and Merchant stay nil and only the raw message is kept.
func Extract(message string) Result {
	result := Result{
		RawMessage: message,
		Status:     models.ExtractionFailed,
	}

	fields := ParseLines(message)

	rawAmount, hasAmount := fields[AmountLabel]
	merchant, hasMerchant := fields[MerchantLabel]
	if !hasAmount || !hasMerchant {
		return result
	}

	rawAmount = strings.TrimSpace(strings.ReplaceAll(rawAmount, CurrencyToken, ""))
	amount, err := strconv.ParseFloat(rawAmount, 64)
	if err != nil {
		return result
	}

	result.Amount = &amount
	result.Merchant = &merchant
	result.Status = models.ExtractionSuccess
	return result
}
