package card

// ValidateLuhn checks the card number checksum. It expects a string already
// stripped of non-digits; anything containing a non-digit rune is invalid.
//
// Traverses from the least significant digit, doubling every second digit
// (starting from the second-from-right) and subtracting 9 from doubled
// digits above 9; the number is valid iff the sum ends in 0.
func ValidateLuhn(digits string) bool {
	if digits == "" {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}

	return sum%10 == 0
}
