//
// Tencent is pleased to support the open source community by making trpc-evalstats-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-evalstats-go is licensed under the Apache License Version 2.0.
//
//

// Package token provides feature predicates over word tokens, the kind
// of lightweight extraction used to feed classifiers whose outcomes
// the confusion package accumulates.
package token

import (
	"regexp"
	"strings"
	"unicode"
)

// Case feature values returned by CaseFeature.
const (
	CaseLower = "*lowercase*"
	CaseUpper = "*uppercase*"
	CaseTitle = "*titlecase*"
)

// separators matches the characters stripped before the digit test.
var separators = regexp.MustCompile(`[.,/]`)

var numberWords = make(map[string]struct{})

func init() {
	const words = `
		zero one two three four five six seven eight nine ten eleven twelve
		thirteen fourteen fifteen sixteen seventeen eighteen nineteen twenty
		thirty fourty fifty sixty seventy eighty ninety hundred thousand million
		billion trillion quadrillion
		zeros ones twos threes fours fives sixs sevens eights nines tens elevens
		twelves thirteens fourteens fifteens sixteens seventeens eighteens
		nineteens twenties thirties fourties fifties sixties seventies eighties
		nineties hundreds thousands millions billions trillions quadrillions`
	for _, w := range strings.Fields(words) {
		numberWords[strings.ToUpper(w)] = struct{}{}
	}
}

// IsNumberLike reports whether token matches a relatively broad
// definition of numberhood: all digits once [.,/] separators are
// stripped, or a hyphenated sequence of English number words.
func IsNumberLike(token string) bool {
	token = separators.ReplaceAllString(token, "")
	if isDigits(token) {
		return true
	}
	for _, part := range strings.Split(token, "-") {
		if _, ok := numberWords[strings.ToUpper(part)]; !ok {
			return false
		}
	}
	return true
}

// CaseFeature returns the case-class feature for token. ok is false
// when the token has no cased characters or mixes case classes.
func CaseFeature(token string) (feature string, ok bool) {
	switch {
	case isLower(token):
		return CaseLower, true
	case isUpper(token):
		return CaseUpper, true
	case isTitle(token):
		return CaseTitle, true
	}
	return "", false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// isLower reports whether s has at least one cased rune and no upper
// or title case runes.
func isLower(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsLower(r) {
			cased = true
		}
	}
	return cased
}

// isUpper reports whether s has at least one cased rune and no lower
// case runes.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			cased = true
		}
	}
	return cased
}

// isTitle reports whether every cased run in s starts with exactly one
// upper case rune followed only by lower case runes.
func isTitle(s string) bool {
	cased := false
	prevCased := false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			if prevCased {
				return false
			}
			prevCased = true
			cased = true
		case unicode.IsLower(r):
			if !prevCased {
				return false
			}
			cased = true
		default:
			prevCased = false
		}
	}
	return cased
}
