// Package analysis computes the descriptive statistics and price-evolution
// reports over the merged CCAM relation.
package analysis

import (
	"sort"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	apperrors "ccamcli/internal/errors"
)

// ReportPercentiles are the fixed percentiles reported over the ungrouped
// price distribution.
var ReportPercentiles = []int{10, 25, 50, 75, 90, 95, 99}

// Describe summarizes one numeric column: row count, the usual moments and
// extrema, and the number of distinct values of a reference column.
type Describe struct {
	Count    int
	Mean     float64
	Median   float64
	Min      float64
	Max      float64
	Std      float64
	Distinct int
}

// Percentile is one point of the price distribution.
type Percentile struct {
	Percent int
	Value   float64
}

// GroupStat is a Describe for one value of the grouping column.
type GroupStat struct {
	Key string
	Describe
}

// DescribeColumn computes summary statistics of valueCol over the whole
// frame, counting distinct values of distinctCol.
func DescribeColumn(df dataframe.DataFrame, valueCol, distinctCol string) (Describe, error) {
	for _, col := range []string{valueCol, distinctCol} {
		if !hasColumn(df, col) {
			return Describe{}, apperrors.NewSchemaError("frame", col)
		}
	}

	return describeFrame(df, valueCol, distinctCol), nil
}

func describeFrame(df dataframe.DataFrame, valueCol, distinctCol string) Describe {
	d := Describe{Count: df.Nrow(), Distinct: distinctCount(df, distinctCol)}
	if d.Count == 0 {
		return d
	}

	values := df.Col(valueCol)
	d.Mean = values.Mean()
	d.Median = values.Median()
	d.Min = values.Min()
	d.Max = values.Max()
	d.Std = values.StdDev()
	if d.Count < 2 {
		d.Std = 0
	}

	return d
}

// Percentiles computes the fixed report percentiles of valueCol over the
// ungrouped frame. Values are non-decreasing in the percentile argument.
func Percentiles(df dataframe.DataFrame, valueCol string) ([]Percentile, error) {
	if !hasColumn(df, valueCol) {
		return nil, apperrors.NewSchemaError("frame", valueCol)
	}

	values := df.Col(valueCol)
	result := make([]Percentile, 0, len(ReportPercentiles))
	for _, p := range ReportPercentiles {
		result = append(result, Percentile{
			Percent: p,
			Value:   values.Quantile(float64(p) / 100),
		})
	}

	return result, nil
}

// GroupStats computes per-group summary statistics of valueCol, one group
// per distinct value of keyCol, sorted by key (numerically when the keys
// are numeric).
func GroupStats(df dataframe.DataFrame, keyCol, valueCol, distinctCol string) ([]GroupStat, error) {
	for _, col := range []string{keyCol, valueCol, distinctCol} {
		if !hasColumn(df, col) {
			return nil, apperrors.NewSchemaError("frame", col)
		}
	}

	keys := distinctValues(df, keyCol)
	sortKeys(keys)

	result := make([]GroupStat, 0, len(keys))
	for _, key := range keys {
		group := df.Filter(dataframe.F{Colname: keyCol, Comparator: series.Eq, Comparando: key})
		if group.Err != nil {
			return nil, group.Err
		}

		result = append(result, GroupStat{
			Key:      key,
			Describe: describeFrame(group, valueCol, distinctCol),
		})
	}

	return result, nil
}

// TopNMaps returns the n rows with the largest values of the metric
// column. Ties keep the stable order of the input rows.
func TopNMaps(rows []map[string]interface{}, metric string, n int) []map[string]interface{} {
	sorted := append([]map[string]interface{}(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return toFloat(sorted[i][metric]) > toFloat(sorted[j][metric])
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// DistinctCount counts the distinct values of one column.
func DistinctCount(df dataframe.DataFrame, col string) (int, error) {
	if !hasColumn(df, col) {
		return 0, apperrors.NewSchemaError("frame", col)
	}
	return distinctCount(df, col), nil
}

func hasColumn(df dataframe.DataFrame, name string) bool {
	for _, col := range df.Names() {
		if col == name {
			return true
		}
	}
	return false
}

func distinctValues(df dataframe.DataFrame, col string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, v := range df.Col(col).Records() {
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	return values
}

func distinctCount(df dataframe.DataFrame, col string) int {
	seen := make(map[string]bool)
	for _, v := range df.Col(col).Records() {
		seen[v] = true
	}
	return len(seen)
}

// sortKeys orders group keys numerically when every key parses as a
// number, lexicographically otherwise.
func sortKeys(keys []string) {
	numeric := true
	for _, k := range keys {
		if _, err := strconv.ParseFloat(k, 64); err != nil {
			numeric = false
			break
		}
	}

	sort.Slice(keys, func(i, j int) bool {
		if numeric {
			a, _ := strconv.ParseFloat(keys[i], 64)
			b, _ := strconv.ParseFloat(keys[j], 64)
			return a < b
		}
		return keys[i] < keys[j]
	})
}
