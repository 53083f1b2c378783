package report

import (
	"strconv"

	"github.com/samber/lo"
)

// Parsed holds the integers read from the command line and the tokens that
// could not be read, both in argument order.
type Parsed struct {
	Values   []int32
	Rejected []string
}

// ParseTokens reads every token as a base-10 integer. It never fails: tokens
// that do not start with an integer are put aside in Rejected.
func ParseTokens(tokens []string) Parsed {
	type result struct {
		token string
		value int32
		ok    bool
	}

	results := lo.Map(tokens, func(token string, _ int) result {
		v, ok := ParseInt(token)
		return result{token: token, value: v, ok: ok}
	})
	accepted, rejected := lo.FilterReject(results, func(r result, _ int) bool {
		return r.ok
	})

	return Parsed{
		Values:   lo.Map(accepted, func(r result, _ int) int32 { return r.value }),
		Rejected: lo.Map(rejected, func(r result, _ int) string { return r.token }),
	}
}

// ParseInt reads a leading integer the way strtol does: white space is
// skipped, an optional sign and at least one digit are required, anything
// after the digits is ignored. Values outside the int32 range are rejected.
func ParseInt(token string) (int32, bool) {
	i := 0
	for i < len(token) && isSpace(token[i]) {
		i++
	}

	start := i
	if i < len(token) && (token[i] == '+' || token[i] == '-') {
		i++
	}

	digits := i
	for i < len(token) && '0' <= token[i] && token[i] <= '9' {
		i++
	}
	if i == digits {
		return 0, false
	}

	v, err := strconv.ParseInt(token[start:i], 10, 32)
	if err != nil {
		return 0, false
	}

	return int32(v), true
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
