package extract

import (
	"regexp"
	"strconv"
	"time"

	"cohortsplit/internal"
)

var reNonDigit = regexp.MustCompile(`[^0-9]`)

// ParseNationalID validates a South African identity number (YYMMDD + 4-digit
// sequence + citizenship + race + check digit) and derives birth date, age and
// gender. Every failure returns a tagged invalid result; nothing panics on
// malformed input. The reference date is a parameter so age-dependent century
// selection stays deterministic under test.
func ParseNationalID(raw string, today time.Time) internal.IDFacts {
	if raw == "" {
		return internal.IDFacts{Reason: internal.IDReasonEmpty}
	}
	digits := reNonDigit.ReplaceAllString(raw, "")
	if len(digits) != 13 {
		return internal.IDFacts{Reason: internal.IDReasonLength}
	}

	yy, _ := strconv.Atoi(digits[0:2])
	mm, _ := strconv.Atoi(digits[2:4])
	dd, _ := strconv.Atoi(digits[4:6])

	dob1900, age1900, ok1900 := tryCentury(1900, yy, mm, dd, today)
	dob2000, age2000, ok2000 := tryCentury(2000, yy, mm, dd, today)
	if !ok1900 && !ok2000 {
		return internal.IDFacts{Reason: internal.IDReasonInvalidDate}
	}

	var dob time.Time
	var age int
	// Prefer the 2000s when the 1900s reading is impossible or implies an
	// implausible age over 100.
	if ok2000 && (!ok1900 || age1900 > 100) {
		dob, age = dob2000, age2000
	} else {
		dob, age = dob1900, age1900
	}

	if !checksumOK(digits) {
		return internal.IDFacts{Reason: internal.IDReasonChecksum}
	}

	gender := internal.GenderFemale
	if seq, err := strconv.Atoi(digits[6:10]); err == nil && seq >= 5000 {
		gender = internal.GenderMale
	}

	return internal.IDFacts{DOB: &dob, Age: &age, Gender: gender, Valid: true}
}

// tryCentury accepts a hypothesis only for a real calendar date with an age
// between 0 and 120 inclusive.
func tryCentury(century, yy, mm, dd int, today time.Time) (time.Time, int, bool) {
	year := century + yy
	dob := time.Date(year, time.Month(mm), dd, 0, 0, 0, 0, time.UTC)
	if dob.Year() != year || int(dob.Month()) != mm || dob.Day() != dd {
		return time.Time{}, 0, false
	}
	age := today.Year() - year
	if int(today.Month()) < mm || (int(today.Month()) == mm && today.Day() < dd) {
		age--
	}
	if age < 0 || age > 120 {
		return time.Time{}, 0, false
	}
	return dob, age, true
}

// checksumOK applies the SA ID Luhn variant: A is the sum of the odd-position
// digits (1-indexed 1..11), B is the digit sum of twice the even-position
// digits read as one number, and the check digit is (10-((A+B) mod 10)) mod 10.
func checksumOK(digits string) bool {
	a := 0
	for i := 0; i <= 10; i += 2 {
		a += int(digits[i] - '0')
	}
	even := ""
	for i := 1; i <= 11; i += 2 {
		even += string(digits[i])
	}
	evenNum, err := strconv.Atoi(even)
	if err != nil {
		return false
	}
	b := 0
	for _, ch := range strconv.Itoa(evenNum * 2) {
		b += int(ch - '0')
	}
	c := a + b
	return (10-(c%10))%10 == int(digits[12]-'0')
}
