package dto

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number is a float64 that also accepts numeric strings in JSON, since form
// inputs on the web client post values such as "25" or "19.99".
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("dto: %s is not a number", string(b))
	}
	*n = Number(f)
	return nil
}

func (n Number) Float() float64 { return float64(n) }
