package main

import (
	"strconv"
)

// Canonical labels, in the language of the INEP spreadsheet.
const (
	DependencyFederal   = "Federal"
	DependencyState     = "Estadual"
	DependencyMunicipal = "Municipal"
	DependencyPrivate   = "Privada"

	CategoryTotal         = "Total"
	CategoryWithDegree    = "Com Superior"
	CategoryWithoutDegree = "Sem Superior"

	NetworkPrivate = "Privada"
	NetworkPublic  = "Pública"
)

// Decimal is a numeric measure that may be missing. Cells that fail to parse
// become invalid decimals instead of errors.
type Decimal struct {
	Value float64
	Valid bool
}

func validDecimal(v float64) Decimal {
	return Decimal{Value: v, Valid: true}
}

// MarshalCSV writes missing values as empty fields.
func (d Decimal) MarshalCSV() (string, error) {
	if !d.Valid {
		return "", nil
	}
	return strconv.FormatFloat(d.Value, 'f', -1, 64), nil
}

// cell returns the value handed to the spreadsheet writer; nil leaves the cell empty.
func (d Decimal) cell() interface{} {
	if !d.Valid {
		return nil
	}
	return d.Value
}

// rawRecord is one data row of the source sheet, positionally mapped to the
// configured columns. Nothing is parsed yet.
type rawRecord struct {
	RowIndex                  string
	CensusYear                string
	Region                    string
	State                     string
	Dependency                string
	Category                  string
	TeacherCount              string
	FullTimePercentage        string
	MinPay                    string
	MedianPay                 string
	MeanPay                   string
	Pay75thPercentile         string
	PayStdDev                 string
	PayCoefficientOfVariation string
	MeanPay40h                string
}

// Record is a cleaned row of the teacher pay table.
type Record struct {
	RowIndex                  string  `csv:"Indice"`
	CensusYear                string  `csv:"ANO_CENSO"`
	Region                    string  `csv:"REGIAO"`
	State                     string  `csv:"UF"`
	Dependency                string  `csv:"DEPENDENCIA"`
	Category                  string  `csv:"CATEGORIA"`
	TeacherCount              int64   `csv:"NUMERO_DOCENTES"`
	FullTimePercentage        Decimal `csv:"PERCENTUAL_DOC_TEMPO_INTEGRAL"`
	MinPay                    Decimal `csv:"REMUNERACAO_MINIMA"`
	MedianPay                 Decimal `csv:"REMUNERACAO_MEDIANA"`
	MeanPay                   Decimal `csv:"REMUNERACAO_MEDIA"`
	Pay75thPercentile         Decimal `csv:"REMUNERACAO_75_PERCENTIL"`
	PayStdDev                 Decimal `csv:"DESVIO_PADRAO_REMUNERACAO"`
	PayCoefficientOfVariation Decimal `csv:"COEF_VARIACAO_PERC"`
	MeanPay40h                Decimal `csv:"REMUNERACAO_MEDIA_40H"`
	NetworkType               string  `csv:"TIPO_REDE"`
	PayGap                    Decimal `csv:"DIFERENCA_SALARIAL"`
}

// groupKey identifies the (region, state, dependency) group a pay gap belongs to.
type groupKey struct {
	Region     string
	State      string
	Dependency string
}

func (r Record) groupKey() groupKey {
	return groupKey{Region: r.Region, State: r.State, Dependency: r.Dependency}
}

// cells returns the row written to the full data sheet, in column order.
func (r Record) cells() []interface{} {
	return []interface{}{
		r.RowIndex,
		r.CensusYear,
		r.Region,
		r.State,
		r.Dependency,
		r.Category,
		r.TeacherCount,
		r.FullTimePercentage.cell(),
		r.MinPay.cell(),
		r.MedianPay.cell(),
		r.MeanPay.cell(),
		r.Pay75thPercentile.cell(),
		r.PayStdDev.cell(),
		r.PayCoefficientOfVariation.cell(),
		r.MeanPay40h.cell(),
		r.NetworkType,
		r.PayGap.cell(),
	}
}
