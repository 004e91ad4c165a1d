package splitter

import "strings"

// abbreviations never end a sentence when directly followed by a period.
var abbreviations = map[string]struct{}{
	// titles
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "prof": {}, "sr": {}, "jr": {},
	// business
	"inc": {}, "ltd": {}, "corp": {}, "co": {}, "vs": {},
	// scholarly
	"etc": {}, "eg": {}, "ie": {}, "vol": {}, "ch": {}, "pt": {}, "pg": {}, "pp": {}, "fig": {}, "eq": {},
	// addresses
	"st": {}, "ave": {}, "blvd": {}, "rd": {}, "apt": {}, "no": {},
	// months
	"jan": {}, "feb": {}, "mar": {}, "apr": {}, "jun": {}, "jul": {},
	"aug": {}, "sep": {}, "oct": {}, "nov": {}, "dec": {},
}

// IsAbbreviation reports whether word is in the fixed abbreviation set.
// Matching is case-insensitive.
func IsAbbreviation(word string) bool {
	if word == "" {
		return false
	}
	_, ok := abbreviations[strings.ToLower(word)]
	return ok
}
