// Package refdata holds the static on-the-run US Treasury reference set that
// every generator draws instruments from.
package refdata

import "time"

// Bond is a Treasury security identified by CUSIP.
type Bond struct {
	CUSIP    string
	Ticker   string  // Benchmark name, e.g. "US10Y"
	Coupon   float64 // Annual coupon rate (0.0225 = 2.25%)
	Maturity time.Time
}

var treasuries = []Bond{
	{CUSIP: "9128283H1", Ticker: "US2Y", Coupon: 0.01750, Maturity: date(2019, time.November, 30)},
	{CUSIP: "9128283L2", Ticker: "US3Y", Coupon: 0.01875, Maturity: date(2020, time.December, 15)},
	{CUSIP: "912828M80", Ticker: "US5Y", Coupon: 0.02000, Maturity: date(2022, time.November, 30)},
	{CUSIP: "9128283J7", Ticker: "US7Y", Coupon: 0.02125, Maturity: date(2024, time.November, 30)},
	{CUSIP: "9128283F5", Ticker: "US10Y", Coupon: 0.02250, Maturity: date(2027, time.December, 15)},
	{CUSIP: "912810RZ3", Ticker: "US30Y", Coupon: 0.02750, Maturity: date(2047, time.December, 15)},
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Treasuries returns a copy of the reference set in benchmark order.
func Treasuries() []Bond {
	out := make([]Bond, len(treasuries))
	copy(out, treasuries)
	return out
}

// CUSIPs returns the reference identifiers in benchmark order.
func CUSIPs() []string {
	out := make([]string, len(treasuries))
	for i, b := range treasuries {
		out[i] = b.CUSIP
	}
	return out
}

// Lookup finds a bond by CUSIP.
func Lookup(cusip string) (Bond, bool) {
	for _, b := range treasuries {
		if b.CUSIP == cusip {
			return b, true
		}
	}
	return Bond{}, false
}

// ValidCUSIP reports whether s has the shape of a CUSIP: nine upper-case
// alphanumeric characters. The check digit is not verified.
func ValidCUSIP(s string) bool {
	if len(s) != 9 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
