package bigint

import (
	"fmt"
	"strings"
)

// Text renders z according to the formatting rules for the given base:
//
//	 2, -2     binary; base -2 inserts a space between bytes
//	16         hex, prefixed "0x"
//	-16        hex, no prefix
//	58         Bitcoin base58 alphabet
//	-58        conventional base58 alphabet
//	64         this toolkit's base64 alphabet
//	256        decimal byte values, most-significant first, ", "-separated
//	other      any base in 2..63, using 0-9a-zA-Z digits
//
// A leading '-' is emitted for negative values in every mode except 256
// (which prints raw magnitude bytes and has no sign convention).
func (z *Int) Text(base int) string {
	sign := ""
	if z.sign == Negative && !z.IsZero() {
		sign = "-"
	}

	switch base {
	case 256:
		return z.textBytesDecimal()
	case 2, -2:
		return sign + z.textBinary(base == -2)
	case 16:
		return sign + "0x" + z.textBaseN(16)
	case -16:
		return sign + z.textBaseN(16)
	case 58:
		return sign + z.textBaseN(58)
	case -58:
		return sign + z.textBaseN(-58)
	case 64:
		return sign + z.textBaseN(64)
	default:
		if base < 2 || base > 63 {
			return ""
		}
		return sign + z.textBaseN(base)
	}
}

// textBinary renders the magnitude as big-endian bits, most-significant
// byte first. When spaced is true, a single space separates each byte's
// 8 bits.
func (z *Int) textBinary(spaced bool) string {
	mag := New().SetInt(z)
	mag.sign = Positive
	mag.Trim()

	var sb strings.Builder
	for i := len(mag.mag) - 1; i >= 0; i-- {
		b := mag.mag[i]
		for bit := 7; bit >= 0; bit-- {
			if b&(1<<uint(bit)) != 0 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		if spaced && i > 0 {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// textBytesDecimal renders the magnitude as comma-space-separated
// decimal byte values, most-significant byte first.
func (z *Int) textBytesDecimal() string {
	mag := New().SetInt(z)
	mag.Trim()

	parts := make([]string, len(mag.mag))
	for i := range mag.mag {
		parts[len(mag.mag)-1-i] = fmt.Sprintf("%d", mag.mag[i])
	}
	return strings.Join(parts, ", ")
}
