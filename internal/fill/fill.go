// Package fill materializes a contract template from submitted form data.
// It is pure: literal {{field_id}} substitution, a fixed set of named
// conditional slots resolved by rule, and a final sweep that strips any
// token left unresolved so no placeholder ever reaches the user.
package fill

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Unspecified replaces placeholders whose submitted value is empty.
const Unspecified = "[Belirtilmedi]"

// FormData maps field id to the submitted value. Numbers and dates arrive
// as strings.
type FormData map[string]string

// Resolver produces the replacement text for a named slot. ok=false leaves
// the slot untouched so the cleanup pass strips it.
type Resolver func(data FormData) (value string, ok bool)

// Named slots are never also form-field ids, so the literal pass and the
// slot pass cannot collide.
var slotResolvers = map[string]Resolver{
	"penalty_clause":          penaltyClause,
	"special_clauses_section": specialClausesSection,
	"duration_months_text":    durationMonthsText,
	"partner1_capital":        partnerCapital(1),
	"partner2_capital":        partnerCapital(2),
}

// slotOrder fixes the resolution sequence; resolver output (verbatim user
// text in special_clauses_section, say) can itself contain slot tokens.
var slotOrder = []string{
	"duration_months_text",
	"partner1_capital",
	"partner2_capital",
	"penalty_clause",
	"special_clauses_section",
}

var placeholderPattern = regexp.MustCompile(`\{\{[^}]+\}\}`)

// Turkish grouping (50000 -> "50.000"), fixed so output is deterministic.
var trPrinter = message.NewPrinter(language.Turkish)

// Apply fills baseText with data. Deterministic, no I/O, never fails.
// Both passes run in sorted key order: a submitted value may itself carry
// placeholder syntax, and whether a later pass sees it must not depend on
// map iteration order.
func Apply(baseText string, data FormData) string {
	text := baseText

	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		value := data[key]
		if value == "" {
			value = Unspecified
		}
		text = strings.ReplaceAll(text, "{{"+key+"}}", value)
	}

	for _, slot := range slotOrder {
		if value, ok := slotResolvers[slot](data); ok {
			text = strings.Replace(text, "{{"+slot+"}}", value, 1)
		}
	}

	return placeholderPattern.ReplaceAllString(text, "")
}

func penaltyClause(data FormData) (string, bool) {
	if amount, err := strconv.ParseFloat(strings.TrimSpace(data["penalty_amount"]), 64); err == nil && amount > 0 {
		formatted := trPrinter.Sprintf("%v", number.Decimal(amount))
		return "Gizlilik yükümlülüğünün ihlali halinde, ihlal eden taraf " + formatted +
			" TL cezai şart ödeyecektir. Cezai şart, uğranılan gerçek zararın tazmini talebini engellemez (TBK m. 180).", true
	}
	return "Gizlilik yükümlülüğünün ihlali halinde, ihlal eden taraf diğer tarafın uğradığı doğrudan ve dolaylı zararları tazmin edecektir.", true
}

func specialClausesSection(data FormData) (string, bool) {
	clauses := data["special_clauses"]
	if strings.TrimSpace(clauses) == "" {
		return "", true
	}
	return "\nEK MADDELER\n\n" + clauses + "\n", true
}

// Word forms for the common durations; anything else falls back to the
// numeric value.
var monthWords = map[int]string{
	1: "bir", 2: "iki", 3: "üç", 6: "altı", 12: "on iki",
	18: "on sekiz", 24: "yirmi dört", 36: "otuz altı", 48: "kırk sekiz", 60: "altmış",
}

func durationMonthsText(data FormData) (string, bool) {
	raw := data["duration_months"]
	if raw == "" {
		return "", false
	}
	months, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return raw, true
	}
	if word, ok := monthWords[months]; ok {
		return word, true
	}
	return strconv.Itoa(months), true
}

// partnerCapital splits the initial capital by share percentage. Partner 2's
// share defaults to 100 minus partner 1's when not explicitly given.
func partnerCapital(partner int) Resolver {
	return func(data FormData) (string, bool) {
		capital, err := strconv.ParseFloat(strings.TrimSpace(data["initial_capital"]), 64)
		if err != nil {
			return "", false
		}
		share1, err := strconv.ParseFloat(strings.TrimSpace(data["partner1_share"]), 64)
		if err != nil {
			return "", false
		}

		share := share1
		if partner == 2 {
			share = 100 - share1
			if raw := strings.TrimSpace(data["partner2_share"]); raw != "" {
				if explicit, err := strconv.ParseFloat(raw, 64); err == nil {
					share = explicit
				}
			}
		}

		amount := int64(math.Round(capital * share / 100))
		return trPrinter.Sprintf("%d", amount), true
	}
}
