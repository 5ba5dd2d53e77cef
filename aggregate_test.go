package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(region, state, dependency, category string, count int64, minPay, medianPay, meanPay Decimal) Record {
	return Record{
		Region:       region,
		State:        state,
		Dependency:   dependency,
		Category:     category,
		NetworkType:  networkType(dependency),
		TeacherCount: count,
		MinPay:       minPay,
		MedianPay:    medianPay,
		MeanPay:      meanPay,
	}
}

func byRegion(r Record) []string { return []string{r.Region} }

func TestSummarizeByRegion(t *testing.T) {
	records := []Record{
		rec("Sul", "PR", "Municipal", "Total", 100, validDecimal(1000), validDecimal(3000), validDecimal(3200)),
		rec("Nordeste", "BA", "Estadual", "Total", 300, validDecimal(1100), validDecimal(2000), validDecimal(2500)),
		rec("Nordeste", "PE", "Estadual", "Total", 200, validDecimal(900), validDecimal(4000), validDecimal(3500)),
		rec("Nordeste", "PE", "Privada", "Total", 50, Decimal{}, Decimal{}, Decimal{}),
		rec("Nordeste", "CE", "Municipal", "Total", 0, validDecimal(950), validDecimal(3000), Decimal{}),
	}

	rows := summarize(records, byRegion, nil)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"Nordeste"}, rows[0].Keys)
	assert.Equal(t, int64(550), rows[0].TeacherCount)
	assert.Equal(t, validDecimal(3000), rows[0].MeanPay)
	assert.Equal(t, validDecimal(3000), rows[0].MedianPay)
	assert.Equal(t, validDecimal(900), rows[0].MinPay)

	assert.Equal(t, []string{"Sul"}, rows[1].Keys)
	assert.Equal(t, int64(100), rows[1].TeacherCount)
}

func TestSummarizeTeacherCountMatchesRows(t *testing.T) {
	records := []Record{
		rec("Norte", "AM", "Municipal", "Total", 10, Decimal{}, Decimal{}, Decimal{}),
		rec("Norte", "PA", "Estadual", "Com Superior", 7, Decimal{}, Decimal{}, Decimal{}),
		rec("Sudeste", "SP", "Privada", "Total", 31, Decimal{}, Decimal{}, Decimal{}),
		rec("Norte", "PA", "Estadual", "Sem Superior", 5, Decimal{}, Decimal{}, Decimal{}),
	}

	want := map[string]int64{}
	for _, r := range records {
		want[r.Region] += r.TeacherCount
	}
	for _, row := range summarize(records, byRegion, nil) {
		assert.Equal(t, want[row.Keys[0]], row.TeacherCount, row.Keys[0])
	}
}

func TestSummarizeAllMeasuresMissing(t *testing.T) {
	rows := summarize([]Record{
		rec("Norte", "AM", "Municipal", "Total", 10, Decimal{}, Decimal{}, Decimal{}),
	}, byRegion, nil)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].MeanPay.Valid)
	assert.False(t, rows[0].MedianPay.Valid)
	assert.False(t, rows[0].MinPay.Valid)
	assert.Equal(t, []interface{}{"Norte", int64(10), nil, nil, nil}, rows[0].cells())
}

func TestSummarizeFilter(t *testing.T) {
	records := []Record{
		rec("Norte", "AM", "Municipal", CategoryTotal, 10, Decimal{}, Decimal{}, validDecimal(1)),
		rec("Norte", "AM", "Municipal", CategoryWithDegree, 6, Decimal{}, Decimal{}, validDecimal(2)),
		rec("Norte", "AM", "Municipal", CategoryWithoutDegree, 4, Decimal{}, Decimal{}, validDecimal(3)),
	}

	rows := summarize(records, func(r Record) []string { return []string{r.Category} },
		func(r Record) bool { return r.Category != CategoryTotal })
	require.Len(t, rows, 2)
	assert.Equal(t, []string{CategoryWithDegree}, rows[0].Keys)
	assert.Equal(t, []string{CategoryWithoutDegree}, rows[1].Keys)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Empty(t, summarize(nil, byRegion, nil))
	assert.Empty(t, summarizePayGaps(nil))
}

func TestMedian(t *testing.T) {
	assert.Equal(t, Decimal{}, median(nil))
	assert.Equal(t, validDecimal(2), median([]float64{3, 1, 2}))
	assert.Equal(t, validDecimal(2.5), median([]float64{4, 1, 3, 2}))
}

func TestSummarizePayGaps(t *testing.T) {
	withGap := func(region, state, dependency, category string, gap Decimal) Record {
		r := rec(region, state, dependency, category, 1, Decimal{}, Decimal{}, Decimal{})
		r.PayGap = gap
		return r
	}
	records := []Record{
		withGap("Nordeste", "BA", "Estadual", CategoryTotal, validDecimal(500)),
		withGap("Nordeste", "BA", "Estadual", CategoryWithDegree, validDecimal(500)),
		withGap("Nordeste", "BA", "Municipal", CategoryTotal, validDecimal(1200)),
		withGap("Nordeste", "BA", "Privada", CategoryTotal, Decimal{}),
		withGap("Nordeste", "AL", "Municipal", CategoryTotal, validDecimal(500)),
		withGap("Norte", "AM", "Federal", CategoryTotal, validDecimal(-100)),
		withGap("Norte", "PA", "Federal", CategoryWithDegree, validDecimal(9999)),
	}

	rows := summarizePayGaps(records)
	var got []groupKey
	for _, r := range rows {
		got = append(got, r.Key)
	}
	assert.Equal(t, []groupKey{
		{"Nordeste", "BA", "Municipal"},
		{"Nordeste", "AL", "Municipal"},
		{"Nordeste", "BA", "Estadual"},
		{"Norte", "AM", "Federal"},
	}, got)
	assert.Equal(t, validDecimal(1200), rows[0].PayGap)
	assert.Equal(t, []interface{}{"Norte", "AM", "Federal", -100.0}, rows[3].cells())
}
