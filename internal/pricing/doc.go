// Package pricing converts between decimal bond prices and the US Treasury
// "handle-fraction" quote notation.
//
// A quote such as "100-16+" reads as handle 100, sixteen 32nds, plus half a
// 32nd. The third fraction character counts eighths of a 32nd (1/256 units)
// and renders 4/8 as '+'.
//
// Conventions:
//   - Quantized prices are multiples of 1/256 obtained by truncation.
//   - Encode expects 0 <= value < 1000; other inputs are not checked.
package pricing
