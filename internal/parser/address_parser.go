package parser

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/ris-pipeline/app/models"
	"github.com/ris-pipeline/internal/normalizer"
	"github.com/ris-pipeline/internal/numerals"
)

// Positional patterns, each anchored at the start of whatever is left of
// the address. City and district use non-greedy runs so a village name
// ending in 市 cannot be swallowed into the city.
var (
	reCityDistrict = regexp.MustCompile(`^([\x{4e00}-\x{9fff}]+?[市縣])([\x{4e00}-\x{9fff}]+?[區鄉鎮市])`)
	reVillageNeigh = regexp.MustCompile(`^([\x{4e00}-\x{9fff}]+[里村])?(\d+鄰)?`)
	reRoadSection  = regexp.MustCompile(`^([\x{4e00}-\x{9fff}]+[路街道])([一二三四五六七八九十]+段)?`)
)

// Fine-grained components are searched over the entire cleaned address, not
// the unconsumed remainder, first match wins. A digit run inside an earlier
// component (say a village name) can therefore bind to the wrong field;
// downstream consumers depend on this looseness, so it stays.
var (
	reLane      = regexp.MustCompile(`(\d+)巷`)
	reAlley     = regexp.MustCompile(`(\d+)弄`)
	reNumber    = regexp.MustCompile(`(\d+)號`)
	reFloor     = regexp.MustCompile(`([\d一二三四五六七八九十]+)樓`)
	reFloorDash = regexp.MustCompile(`樓之(\d+|[一二三四五六七八九十]+)`)
)

// Parse decomposes a Taiwan address into structured components:
//
//	臺北市大安區信義路四段100巷5弄10號3樓之1
//	→ city 臺北市, district 大安區, road 信義路, section 四段,
//	  lane 100, alley 5, number 10, floor 3, floor_dash 1
//
// Returns nil when the address has no recognizable city+district prefix.
func Parse(fullAddress string) *models.AddressParts {
	if fullAddress == "" {
		return nil
	}

	cleaned := normalizer.Clean(fullAddress)

	m := reCityDistrict.FindStringSubmatch(cleaned)
	if m == nil {
		return nil
	}
	parts := &models.AddressParts{
		City:       m[1],
		District:   m[2],
		RawAddress: fullAddress,
	}
	remaining := cleaned[len(m[0]):]

	// Village (里/村) and neighborhood (鄰). Both groups are optional, so
	// the pattern always matches; it just may consume nothing.
	if vm := reVillageNeigh.FindStringSubmatch(remaining); vm != nil {
		parts.Village = vm[1]
		if vm[2] != "" {
			parts.Neighborhood = stripNeighborhood(vm[2])
		}
		remaining = remaining[len(vm[0]):]
	}

	// Road (路/街/道) with an optional section. The section token is kept
	// verbatim (四段, not 4段).
	if rm := reRoadSection.FindStringSubmatch(remaining); rm != nil {
		parts.Road = rm[1]
		parts.Section = rm[2]
	}

	if lm := reLane.FindStringSubmatch(cleaned); lm != nil {
		parts.Lane = lm[1]
	}
	if am := reAlley.FindStringSubmatch(cleaned); am != nil {
		parts.Alley = am[1]
	}
	if nm := reNumber.FindStringSubmatch(cleaned); nm != nil {
		parts.Number = nm[1]
	}
	if fm := reFloor.FindStringSubmatch(cleaned); fm != nil {
		parts.Floor, _ = numerals.ToDecimal(fm[1])
	}
	if dm := reFloorDash.FindStringSubmatch(cleaned); dm != nil {
		parts.FloorDash, _ = numerals.ToDecimal(dm[1])
	}

	return parts
}

// stripNeighborhood turns "019鄰" into "19". An all-zero run normalizes to
// "0" rather than the empty string.
func stripNeighborhood(token string) string {
	digits := token[:len(token)-len("鄰")]
	for len(digits) > 1 && digits[0] == '0' {
		digits = digits[1:]
	}
	if digits == "" || digits == "0" {
		return "0"
	}
	return digits
}

// Validate rejects addresses that are empty, shorter than five characters,
// or that Parse cannot decompose into at least a city and a district.
func Validate(fullAddress string) (bool, string) {
	if fullAddress == "" {
		return false, "Address is empty"
	}
	if utf8.RuneCountInString(fullAddress) < 5 {
		return false, fmt.Sprintf("Address too short: %s", fullAddress)
	}

	parts := Parse(fullAddress)
	if parts == nil {
		return false, fmt.Sprintf("Cannot parse address: %s", fullAddress)
	}
	if parts.City == "" {
		return false, "Missing city"
	}
	if parts.District == "" {
		return false, "Missing district"
	}
	return true, ""
}
