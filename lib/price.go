package lib

import (
	"strconv"
	"strings"
)

// ParsePrice converts a decimal money string ("1500", "1500.50") into
// cents. Anything that is not a plain non-negative decimal with at most
// two fraction digits is rejected; no silent coercion.
func ParsePrice(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidPrice
	}

	whole := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}

	if whole == "" || len(frac) > 2 {
		return 0, ErrInvalidPrice
	}

	units, err := strconv.ParseUint(whole, 10, 64)
	if err != nil {
		return 0, ErrInvalidPrice
	}

	cents := uint64(0)
	if frac != "" {
		f, err := strconv.ParseUint(frac, 10, 64)
		if err != nil {
			return 0, ErrInvalidPrice
		}
		if len(frac) == 1 {
			f *= 10
		}
		cents = f
	}

	const maxUnits = (1<<64 - 1) / 100
	if units > maxUnits {
		return 0, ErrInvalidPrice
	}

	return units*100 + cents, nil
}
