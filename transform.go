package main

import (
	"log/slog"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Spellings accepted for dependencies and categories, keyed by labelKey.
var (
	dependencyLabels = map[string]string{
		"federal":   DependencyFederal,
		"estadual":  DependencyState,
		"state":     DependencyState,
		"municipal": DependencyMunicipal,
		"privada":   DependencyPrivate,
		"private":   DependencyPrivate,
	}
	categoryLabels = map[string]string{
		"total":          CategoryTotal,
		"com superior":   CategoryWithDegree,
		"with degree":    CategoryWithDegree,
		"sem superior":   CategoryWithoutDegree,
		"without degree": CategoryWithoutDegree,
	}
)

// cleanRecords turns the loaded rows into the cleaned table: rows without
// grouping labels are dropped, measures are parsed and rounded, rows are
// sorted by their grouping labels and the network type and pay gap columns
// are added. It returns the table and the number of dropped rows.
func cleanRecords(raw []rawRecord) ([]Record, int) {
	records := make([]Record, 0, len(raw))
	for _, r := range raw {
		region, state := cleanLabel(r.Region), cleanLabel(r.State)
		dependency, category := cleanLabel(r.Dependency), cleanLabel(r.Category)
		// Notes and source lines at the bottom of the sheet leave these blank.
		if region == "" || state == "" || dependency == "" || category == "" {
			continue
		}
		records = append(records, Record{
			RowIndex:                  strings.TrimSpace(r.RowIndex),
			CensusYear:                strings.TrimSpace(r.CensusYear),
			Region:                    region,
			State:                     state,
			Dependency:                canonicalLabel(dependencyLabels, dependency),
			Category:                  canonicalLabel(categoryLabels, category),
			TeacherCount:              teacherCount(parseDecimal(r.TeacherCount)),
			FullTimePercentage:        round2(parseDecimal(r.FullTimePercentage)),
			MinPay:                    round2(parseDecimal(r.MinPay)),
			MedianPay:                 round2(parseDecimal(r.MedianPay)),
			MeanPay:                   round2(parseDecimal(r.MeanPay)),
			Pay75thPercentile:         round2(parseDecimal(r.Pay75thPercentile)),
			PayStdDev:                 round2(parseDecimal(r.PayStdDev)),
			PayCoefficientOfVariation: round2(parseDecimal(r.PayCoefficientOfVariation)),
			MeanPay40h:                round2(parseDecimal(r.MeanPay40h)),
		})
	}
	dropped := len(raw) - len(records)

	slices.SortStableFunc(records, func(a, b Record) bool {
		return lessKeys(
			[]string{a.Region, a.State, a.Dependency, a.Category},
			[]string{b.Region, b.State, b.Dependency, b.Category})
	})

	for i := range records {
		records[i].NetworkType = networkType(records[i].Dependency)
	}

	gaps := payGaps(records)
	for i := range records {
		records[i].PayGap = gaps[records[i].groupKey()]
	}

	slog.Info("records cleaned",
		slog.Int("records", len(records)),
		slog.Int("dropped", dropped),
		slog.Int("pay_gap_groups", len(gaps)))
	return records, dropped
}

// parseDecimal parses a cell. Anything that is not a finite number is missing.
func parseDecimal(s string) Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return Decimal{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Decimal{}
	}
	return validDecimal(v)
}

// round2 rounds half away from zero to 2 fraction digits. The rounding is
// done on the shortest decimal form of the value, so 2.005 becomes 2.01 even
// though its binary approximation is slightly below 2.005.
func round2(d Decimal) Decimal {
	if !d.Valid {
		return d
	}
	v, _ := decimal.NewFromFloat(d.Value).Round(2).Float64()
	return validDecimal(v)
}

// teacherCount truncates to an integer. Missing and negative counts become 0;
// counts beyond the int64 range saturate at math.MaxInt64.
func teacherCount(d Decimal) int64 {
	if !d.Valid || d.Value < 0 {
		return 0
	}
	if d.Value >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(math.Trunc(d.Value))
}

func networkType(dependency string) string {
	if dependency == DependencyPrivate {
		return NetworkPrivate
	}
	return NetworkPublic
}

// payGaps computes, per (region, state, dependency) group, the mean pay of
// teachers with a degree minus the mean pay of teachers without one. Groups
// missing either category have no entry.
func payGaps(records []Record) map[groupKey]Decimal {
	type means struct {
		with, without meanAccumulator
	}
	groups := make(map[groupKey]*means)
	for _, r := range records {
		k := r.groupKey()
		g, ok := groups[k]
		if !ok {
			g = &means{}
			groups[k] = g
		}
		switch r.Category {
		case CategoryWithDegree:
			g.with.add(r.MeanPay)
		case CategoryWithoutDegree:
			g.without.add(r.MeanPay)
		}
	}

	gaps := make(map[groupKey]Decimal)
	for k, g := range groups {
		with, without := g.with.mean(), g.without.mean()
		if !with.Valid || !without.Valid {
			continue
		}
		v, _ := decimal.NewFromFloat(with.Value).Sub(decimal.NewFromFloat(without.Value)).Round(2).Float64()
		gaps[k] = validDecimal(v)
	}
	return gaps
}

// cleanLabel trims a label and collapses inner whitespace.
func cleanLabel(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// canonicalLabel maps a known label, in any case and with or without
// accents, to its canonical spelling. Unknown labels are kept as they are.
func canonicalLabel(known map[string]string, label string) string {
	if c, ok := known[labelKey(label)]; ok {
		return c
	}
	return label
}

// labelKey lower-cases a label and strips its accents.
func labelKey(label string) string {
	t := transform.Chain(norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
		runes.Map(unicode.ToLower))
	key, _, _ := transform.String(t, label)
	return cleanLabel(key)
}

// lessKeys compares two keys of the same length element by element.
func lessKeys(a, b []string) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
