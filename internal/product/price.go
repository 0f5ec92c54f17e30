package product

import (
	"encoding/json"
	"strconv"
)

// Price is a currency-agnostic decimal that survives malformed payloads.
// Backend and legacy persisted data occasionally carry prices as strings
// (sometimes non-numeric, e.g. "N/A"); Price keeps the raw value intact
// for round-tripping and coerces to 0 wherever arithmetic is needed.
type Price struct {
	raw string
}

// NewPrice builds a Price from a known-good numeric value.
func NewPrice(v float64) Price {
	return Price{raw: strconv.FormatFloat(v, 'f', -1, 64)}
}

// PriceFrom builds a Price from an untrusted string, numeric or not.
func PriceFrom(s string) Price {
	return Price{raw: s}
}

// Float64 returns the numeric value, or 0 when the raw value does not
// parse as a number.
func (p Price) Float64() float64 {
	v, err := strconv.ParseFloat(p.raw, 64)
	if err != nil {
		return 0
	}
	return v
}

func (p Price) String() string {
	if p.raw == "" {
		return "0"
	}
	return p.raw
}

func (p Price) MarshalJSON() ([]byte, error) {
	if p.raw == "" {
		return []byte("0"), nil
	}
	// Emit a bare number only when the raw value is a valid JSON number;
	// ParseFloat alone is too lenient (it accepts "Inf" and friends).
	if _, err := strconv.ParseFloat(p.raw, 64); err == nil && json.Valid([]byte(p.raw)) {
		return []byte(p.raw), nil
	}
	return json.Marshal(p.raw)
}

func (p *Price) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		p.raw = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		p.raw = s
		return nil
	}
	p.raw = string(data)
	return nil
}
