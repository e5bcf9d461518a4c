package types

import (
	"bytes"
	"encoding/json"
	"reflect"

	"github.com/shopspring/decimal"
)

// Number is a decimal that only accepts JSON numbers.
//
// decimal.Decimal also parses quoted strings like "500", which are not
// valid budgets or amounts.
type Number struct {
	decimal.Decimal
}

// UnmarshalJSON parses a JSON number. Strings are rejected with a
// *json.UnmarshalTypeError.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return &json.UnmarshalTypeError{Value: "string", Type: reflect.TypeOf(n).Elem()}
	}

	return n.Decimal.UnmarshalJSON(data)
}
