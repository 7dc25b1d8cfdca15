package fill

import (
	"strings"
	"testing"
)

const ndaBase = `GİZLİLİK SÖZLEŞMESİ

Taraflar: {{discloser_name}} ve {{receiver_name}}

Süre: {{duration_months}} ({{duration_months_text}}) ay

7. CEZAİ ŞART

{{penalty_clause}}

{{special_clauses_section}}

Yetkili mahkeme: {{jurisdiction}}`

func TestApplyLiteralSubstitution(t *testing.T) {
	out := Apply(ndaBase, FormData{
		"discloser_name": "Acme A.Ş.",
		"receiver_name":  "Beta Ltd.",
		"jurisdiction":   "İstanbul",
	})

	if !strings.Contains(out, "Acme A.Ş.") || !strings.Contains(out, "Beta Ltd.") {
		t.Fatalf("party names not substituted: %s", out)
	}
	if !strings.Contains(out, "İstanbul") {
		t.Fatalf("jurisdiction not substituted")
	}
}

func TestApplyEmptyValueMarker(t *testing.T) {
	out := Apply("Adres: {{address}}", FormData{"address": ""})
	if !strings.Contains(out, Unspecified) {
		t.Fatalf("expected %q for empty value, got %s", Unspecified, out)
	}
}

func TestApplyLeavesNoPlaceholders(t *testing.T) {
	out := Apply(ndaBase, FormData{"discloser_name": "A"})
	if strings.Contains(out, "{{") || strings.Contains(out, "}}") {
		t.Fatalf("unresolved placeholder left in output: %s", out)
	}
}

func TestApplyIdempotent(t *testing.T) {
	data := FormData{
		"discloser_name":  "Acme",
		"receiver_name":   "Beta",
		"duration_months": "24",
		"penalty_amount":  "50000",
	}
	first := Apply(ndaBase, data)
	second := Apply(ndaBase, data)
	if first != second {
		t.Fatalf("fill is not deterministic")
	}
}

func TestPenaltyClauseFixedAmount(t *testing.T) {
	out := Apply(ndaBase, FormData{"penalty_amount": "50000"})
	if !strings.Contains(out, "50.000 TL cezai şart") {
		t.Fatalf("expected locale-formatted penalty amount, got: %s", out)
	}
	if !strings.Contains(out, "TBK m. 180") {
		t.Fatalf("expected statutory reference in fixed-amount clause")
	}
	if strings.Contains(out, "doğrudan ve dolaylı zararları") {
		t.Fatalf("damages variant must not appear when amount > 0")
	}
}

func TestPenaltyClauseDamagesVariant(t *testing.T) {
	for name, data := range map[string]FormData{
		"absent":   {},
		"zero":     {"penalty_amount": "0"},
		"negative": {"penalty_amount": "-5"},
		"garbage":  {"penalty_amount": "abc"},
	} {
		out := Apply(ndaBase, data)
		if !strings.Contains(out, "doğrudan ve dolaylı zararları tazmin edecektir") {
			t.Fatalf("%s: expected damages variant, got: %s", name, out)
		}
		if strings.Contains(out, "TBK m. 180") {
			t.Fatalf("%s: fixed-amount variant must not appear", name)
		}
	}
}

func TestSpecialClausesSection(t *testing.T) {
	out := Apply(ndaBase, FormData{"special_clauses": "   \n\t"})
	if strings.Contains(out, "EK MADDELER") {
		t.Fatalf("whitespace-only special clauses must not emit a header")
	}

	out = Apply(ndaBase, FormData{"special_clauses": "Taraflar yıllık denetime tabidir."})
	if strings.Count(out, "Taraflar yıllık denetime tabidir.") != 1 {
		t.Fatalf("expected exactly one occurrence of the submitted clause text")
	}
	if strings.Count(out, "EK MADDELER") != 1 {
		t.Fatalf("expected exactly one extra-clause header")
	}
}

func TestDurationMonthsText(t *testing.T) {
	cases := map[string]string{
		"1":  "bir",
		"12": "on iki",
		"24": "yirmi dört",
		"60": "altmış",
		"7":  "7", // outside the lookup, numeric fallback
	}
	for in, want := range cases {
		out := Apply("{{duration_months_text}}", FormData{"duration_months": in})
		if out != want {
			t.Errorf("duration %s: got %q want %q", in, out, want)
		}
	}

	// Absent duration leaves the slot unresolved, cleanup strips it.
	if out := Apply("x{{duration_months_text}}y", FormData{}); out != "xy" {
		t.Errorf("expected stripped slot, got %q", out)
	}
}

func TestPartnerCapitalSplit(t *testing.T) {
	base := "1: {{partner1_capital}} TL / 2: {{partner2_capital}} TL"

	out := Apply(base, FormData{"initial_capital": "100000", "partner1_share": "60"})
	if !strings.Contains(out, "60.000") || !strings.Contains(out, "40.000") {
		t.Fatalf("expected derived 60/40 split, got: %s", out)
	}

	// Explicit partner2_share wins over the derived complement.
	out = Apply(base, FormData{
		"initial_capital": "100000",
		"partner1_share":  "60",
		"partner2_share":  "30",
	})
	if !strings.Contains(out, "30.000") {
		t.Fatalf("expected explicit partner 2 share, got: %s", out)
	}

	// Missing either input strips both slots.
	if out := Apply(base, FormData{"initial_capital": "100000"}); strings.Contains(out, "{{") {
		t.Fatalf("slots must be stripped when inputs are missing")
	}
}

func TestScenarioNDA(t *testing.T) {
	out := Apply(ndaBase, FormData{
		"penalty_amount":  "50000",
		"duration_months": "24",
		"special_clauses": "",
	})
	if !strings.Contains(out, "50.000") {
		t.Fatalf("expected tr-TR formatted penalty, got: %s", out)
	}
	if !strings.Contains(out, "yirmi dört") {
		t.Fatalf("expected word form for 24")
	}
	if strings.Contains(out, "EK MADDELER") {
		t.Fatalf("expected no extra-clause header")
	}
}

func TestApplyDeterministicWithPlaceholderValues(t *testing.T) {
	// A submitted value may itself contain another field's token. The
	// outcome (resolved or stripped) must not vary between calls.
	base := "X: {{a}} Y: {{b}}"
	data := FormData{"a": "{{b}}", "b": "merhaba"}

	first := Apply(base, data)
	for i := 0; i < 200; i++ {
		if got := Apply(base, data); got != first {
			t.Fatalf("output changed between calls: %q vs %q", first, got)
		}
	}
	// Sorted order: a's token lands before b is substituted, so both
	// positions resolve.
	if first != "X: merhaba Y: merhaba" {
		t.Fatalf("unexpected output: %q", first)
	}

	// Slot tokens inside user text behave the same way.
	sbase := "{{special_clauses_section}} | ceza: {{penalty_clause}}"
	sdata := FormData{"special_clauses": "bkz. {{penalty_clause}}"}
	sfirst := Apply(sbase, sdata)
	for i := 0; i < 200; i++ {
		if got := Apply(sbase, sdata); got != sfirst {
			t.Fatalf("slot output changed between calls: %q vs %q", sfirst, got)
		}
	}
}
