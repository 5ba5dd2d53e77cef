package main

import (
	"strings"

	"golang.org/x/exp/slices"
)

// meanAccumulator averages the present values it is given.
type meanAccumulator struct {
	sum float64
	n   int
}

func (m *meanAccumulator) add(d Decimal) {
	if d.Valid {
		m.sum += d.Value
		m.n++
	}
}

func (m meanAccumulator) mean() Decimal {
	if m.n == 0 {
		return Decimal{}
	}
	return validDecimal(m.sum / float64(m.n))
}

// summaryRow is one group of an aggregate view.
type summaryRow struct {
	Keys         []string
	TeacherCount int64   // sum of teacher_count
	MeanPay      Decimal // mean of mean_pay
	MedianPay    Decimal // median of median_pay
	MinPay       Decimal // min of min_pay
}

func (s summaryRow) cells() []interface{} {
	cells := make([]interface{}, 0, len(s.Keys)+4)
	for _, k := range s.Keys {
		cells = append(cells, k)
	}
	return append(cells, s.TeacherCount, s.MeanPay.cell(), s.MedianPay.cell(), s.MinPay.cell())
}

// summarize groups the records accepted by keep by the key keyOf returns and
// reduces each group. Missing measures are left out of the reductions. Groups
// come out in ascending key order.
func summarize(records []Record, keyOf func(Record) []string, keep func(Record) bool) []summaryRow {
	type group struct {
		keys    []string
		count   int64
		mean    meanAccumulator
		medians []float64
		min     Decimal
	}
	var order []string
	groups := make(map[string]*group)
	for _, r := range records {
		if keep != nil && !keep(r) {
			continue
		}
		keys := keyOf(r)
		id := strings.Join(keys, "\x00")
		g, ok := groups[id]
		if !ok {
			g = &group{keys: keys}
			groups[id] = g
			order = append(order, id)
		}
		g.count += r.TeacherCount
		g.mean.add(r.MeanPay)
		if r.MedianPay.Valid {
			g.medians = append(g.medians, r.MedianPay.Value)
		}
		if r.MinPay.Valid && (!g.min.Valid || r.MinPay.Value < g.min.Value) {
			g.min = r.MinPay
		}
	}

	rows := make([]summaryRow, 0, len(order))
	for _, id := range order {
		g := groups[id]
		rows = append(rows, summaryRow{
			Keys:         g.keys,
			TeacherCount: g.count,
			MeanPay:      g.mean.mean(),
			MedianPay:    median(g.medians),
			MinPay:       g.min,
		})
	}
	slices.SortFunc(rows, func(a, b summaryRow) bool { return lessKeys(a.Keys, b.Keys) })
	return rows
}

func median(values []float64) Decimal {
	if len(values) == 0 {
		return Decimal{}
	}
	sorted := append([]float64(nil), values...)
	slices.Sort(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return validDecimal(sorted[mid])
	}
	return validDecimal((sorted[mid-1] + sorted[mid]) / 2)
}

// gapRow is one group of the pay gap view.
type gapRow struct {
	Key    groupKey
	PayGap Decimal
}

func (g gapRow) cells() []interface{} {
	return []interface{}{g.Key.Region, g.Key.State, g.Key.Dependency, g.PayGap.cell()}
}

// summarizePayGaps averages the pay gap of the "Total" rows of each
// (region, state, dependency) group, largest gap first. Groups without a pay
// gap are left out.
func summarizePayGaps(records []Record) []gapRow {
	var order []groupKey
	groups := make(map[groupKey]*meanAccumulator)
	for _, r := range records {
		if r.Category != CategoryTotal {
			continue
		}
		k := r.groupKey()
		acc, ok := groups[k]
		if !ok {
			acc = &meanAccumulator{}
			groups[k] = acc
			order = append(order, k)
		}
		acc.add(r.PayGap)
	}

	rows := make([]gapRow, 0, len(order))
	for _, k := range order {
		if gap := groups[k].mean(); gap.Valid {
			rows = append(rows, gapRow{Key: k, PayGap: gap})
		}
	}
	slices.SortFunc(rows, func(a, b gapRow) bool {
		return lessKeys(
			[]string{a.Key.Region, a.Key.State, a.Key.Dependency},
			[]string{b.Key.Region, b.Key.State, b.Key.Dependency})
	})
	slices.SortStableFunc(rows, func(a, b gapRow) bool { return a.PayGap.Value > b.PayGap.Value })
	return rows
}
