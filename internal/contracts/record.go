package contracts

import (
	"github.com/fortuna/rb70/internal/table"
)

// Record is one signed contract. Amounts are nil when the page left them blank.
type Record struct {
	Player             string
	Team               string
	YearSigned         *int
	Years              *int
	TotalValue         *float64
	APY                *float64
	Guaranteed         *float64
	APYCapPct          *float64
	InflatedValue      *float64
	InflatedAPY        *float64
	InflatedGuaranteed *float64
}

// Records reads a cleaned contracts table into typed records.
func Records(t *table.Table) ([]Record, error) {
	col, err := PlayerColumn(t)
	if err != nil {
		return nil, err
	}

	out := make([]Record, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		r := t.Row(i)
		out = append(out, Record{
			Player:             r.Get(col).String(),
			Team:               r.Get("team").String(),
			YearSigned:         intPtr(r.Get("year_signed")),
			Years:              intPtr(r.Get("years")),
			TotalValue:         floatPtr(r.Get("total_value")),
			APY:                floatPtr(r.Get("apy")),
			Guaranteed:         floatPtr(r.Get("guaranteed")),
			APYCapPct:          floatPtr(r.Get("apy_cap_pct")),
			InflatedValue:      floatPtr(r.Get("inflated_value")),
			InflatedAPY:        floatPtr(r.Get("inflated_apy")),
			InflatedGuaranteed: floatPtr(r.Get("inflated_guaranteed")),
		})
	}
	return out, nil
}

func floatPtr(v table.Value) *float64 {
	if v.Kind() != table.KindNumber {
		return nil
	}
	f, _ := v.Float()
	return &f
}

func intPtr(v table.Value) *int {
	if v.Kind() != table.KindNumber {
		return nil
	}
	i, _ := v.Int()
	return &i
}
