package validation

// luhnValid reports whether the given numeric string passes the Luhn
// checksum: doubling every second digit from the right (reducing by 9 when
// the doubled value exceeds 9), the total must be congruent to 0 modulo 10.
func luhnValid(number string) bool {
	if !digitsOnly(number) {
		return false
	}

	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		digit := int(number[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}

	return sum%10 == 0
}
