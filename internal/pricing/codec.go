package pricing

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Tick is the smallest price increment: one eighth of a 32nd.
const Tick = 1.0 / 256

// ErrInvalidPrice is returned by Decode for strings that are not
// handle-fraction quotes.
var ErrInvalidPrice = errors.New("invalid fractional price")

// Quantize snaps raw down to the nearest multiple of 1/256.
// It truncates, it does not round.
func Quantize(raw float64) float64 {
	return math.Floor(raw*256) / 256
}

// Encode renders value as "<handle>-<fraction>", where fraction is two
// digits of 32nds followed by one digit of 256ths, or '+' for 4/256.
func Encode(value float64) string {
	handle := math.Floor(value)
	rem := (value - handle) * 32
	thirtySecond := math.Floor(rem)
	rem -= thirtySecond
	eighth := int(math.Floor(rem * 8))

	var frac string
	if eighth == 4 {
		frac = strconv.Itoa(int(thirtySecond)) + "+"
	} else {
		frac = strconv.Itoa(int(thirtySecond)) + strconv.Itoa(eighth)
	}
	frac = "00" + frac
	frac = frac[len(frac)-3:]

	return strconv.Itoa(int(handle)) + "-" + frac
}

// EncodeQuantized is Encode(Quantize(raw)).
func EncodeQuantized(raw float64) string {
	return Encode(Quantize(raw))
}

// Decode parses a handle-fraction quote back into a decimal price.
// The result is exact for every string produced by Encode.
func Decode(s string) (float64, error) {
	handleStr, frac, ok := strings.Cut(s, "-")
	if !ok || handleStr == "" || len(frac) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}

	handle, err := strconv.ParseUint(handleStr, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: handle %q", ErrInvalidPrice, handleStr)
	}

	thirtySecond, err := strconv.ParseUint(frac[:2], 10, 8)
	if err != nil || thirtySecond > 31 {
		return 0, fmt.Errorf("%w: 32nds %q", ErrInvalidPrice, frac[:2])
	}

	var eighth uint64
	switch c := frac[2]; {
	case c == '+':
		eighth = 4
	case c >= '0' && c <= '7':
		eighth = uint64(c - '0')
	default:
		return 0, fmt.Errorf("%w: 256ths %q", ErrInvalidPrice, string(c))
	}

	return float64(handle) + float64(thirtySecond)/32 + float64(eighth)/256, nil
}
