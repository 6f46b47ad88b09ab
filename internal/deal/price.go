package deal

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// The price text these patterns deal with is informal marketplace copy
// ("$1,299.99", "20% off", "$60 (was $100)"), not a grammar. Currency
// matching requires a literal dollar sign; percent and "was" phrases
// match case-insensitively.
var (
	moneyRe   = regexp.MustCompile(`\$([\d,]+(?:\.\d{1,2})?)`)
	percentRe = regexp.MustCompile(`(?i)(\d{1,3})\s*%`)
	wasRe     = regexp.MustCompile(`(?i)was[^$]*\$([\d,]+(?:\.\d{1,2})?)`)
)

// firstMoney returns the first dollar amount found in s.
func firstMoney(s string) (decimal.Decimal, bool) {
	m := moneyRe.FindStringSubmatch(s)
	if m == nil {
		return decimal.Decimal{}, false
	}
	return parseMoney(m[1])
}

func parseMoney(digits string) (decimal.Decimal, bool) {
	v, err := decimal.NewFromString(strings.ReplaceAll(digits, ",", ""))
	if err != nil {
		return decimal.Decimal{}, false
	}
	return v, true
}

// firstPercent returns the first percentage marker (N%) found in s.
func firstPercent(s string) (int, bool) {
	m := percentRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// wasPrice extracts the reference "was" price from free-text price info:
// an explicit "was $X" phrase, or the last dollar amount mentioned when
// it exceeds the first ("$60 now $100" style listings).
func wasPrice(info string) (decimal.Decimal, bool) {
	if m := wasRe.FindStringSubmatch(info); m != nil {
		return parseMoney(m[1])
	}

	matches := moneyRe.FindAllStringSubmatch(info, -1)
	if len(matches) >= 2 {
		first, okFirst := parseMoney(matches[0][1])
		last, okLast := parseMoney(matches[len(matches)-1][1])
		if okFirst && okLast && last.GreaterThan(first) {
			return last, true
		}
	}

	return decimal.Decimal{}, false
}
