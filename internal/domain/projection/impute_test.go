package projection

import (
	"math"
	"testing"

	"github.com/frenchfries11234/ff.gg/internal/domain/odds"
	"github.com/frenchfries11234/ff.gg/internal/platform/numeric"
)

func rawRow(name string, values ...float64) RawRow {
	row := RawRow{Name: name, Game: "NYY vs TOR"}
	for _, v := range values {
		if math.IsNaN(v) {
			row.Stats = append(row.Stats, odds.PropEstimate{})
			continue
		}
		row.Stats = append(row.Stats, odds.PropEstimate{Value: v, OK: true})
	}
	return row
}

var missing = math.NaN()

func TestImpute_SingleGapUsesMeanMinusStd(t *testing.T) {
	batch := []RawRow{
		rawRow("a", 1, 1, 1, 1, 1),
		rawRow("b", 2, 2, 2, 2, 2),
		rawRow("c", 3, 3, 3, 3, 3),
		rawRow("d", 4, 4, 4, 4, 4),
		rawRow("e", 0.5, 0.6, missing, 0.8, 0.9),
	}

	got := Impute(batch, 5)
	if len(got.Rows) != 5 || len(got.Excluded) != 0 {
		t.Fatalf("expected 5 rows and no exclusions, got %d/%d", len(got.Rows), len(got.Excluded))
	}

	mean, _ := numeric.Mean([]float64{1, 2, 3, 4})
	std, _ := numeric.SampleStdDev([]float64{1, 2, 3, 4})
	want := numeric.Round(math.Max(0, mean-std), odds.StatPrecision)

	e := got.Rows[4]
	if e.Stats[2].Value != want || !e.Stats[2].Imputed {
		t.Fatalf("unexpected fill: %+v want %v", e.Stats[2], want)
	}
	if want != 1.209 {
		t.Fatalf("unexpected reference fill %v", want)
	}
	for i, v := range []float64{0.5, 0.6, 0, 0.8, 0.9} {
		if i == 2 {
			continue
		}
		if e.Stats[i].Imputed || e.Stats[i].Value != v {
			t.Fatalf("stat %d must be unchanged, got %+v", i, e.Stats[i])
		}
	}
	for _, row := range got.Rows[:4] {
		for _, s := range row.Stats {
			if s.Imputed {
				t.Fatalf("complete rows must not be imputed: %+v", row)
			}
		}
	}
}

func TestImpute_ExcludesPlayersMissingTwoOrMore(t *testing.T) {
	batch := []RawRow{
		rawRow("a", 1, 2, 3),
		rawRow("b", 2, 3, missing),
		rawRow("c", missing, 100, missing),
		rawRow("d", 3, 4, 5),
	}

	got := Impute(batch, 3)
	if len(got.Excluded) != 1 || got.Excluded[0].Name != "c" {
		t.Fatalf("expected c to be excluded, got %+v", got.Excluded)
	}
	for _, row := range got.Rows {
		if row.Name == "c" {
			t.Fatalf("excluded player must not be in output")
		}
	}

	// Excluded players do not feed the column statistics.
	if got.Fills[1].Mean != 3 {
		t.Fatalf("expected column 1 mean over kept rows only, got %v", got.Fills[1].Mean)
	}
	// Column 2 keeps {3, 5}: mean 4, sample std sqrt(2).
	if b := got.Rows[1]; b.Name != "b" || !b.Stats[2].Imputed || b.Stats[2].Value != 2.586 {
		t.Fatalf("unexpected fill for b: %+v", b.Stats[2])
	}
}

func TestImpute_FallbackBranches(t *testing.T) {
	t.Run("single known value uses mean", func(t *testing.T) {
		got := Impute([]RawRow{
			rawRow("a", 2.5, 1),
			rawRow("b", missing, 1),
		}, 2)
		if fill := got.Rows[1].Stats[0]; fill.Value != 2.5 || !fill.Imputed {
			t.Fatalf("expected mean fill 2.5, got %+v", fill)
		}
		if got.Fills[0].HasStd {
			t.Fatalf("std must be undefined for one value")
		}
	})

	t.Run("empty column fills zero", func(t *testing.T) {
		got := Impute([]RawRow{
			rawRow("a", missing, 1),
			rawRow("b", missing, 2),
		}, 2)
		for _, row := range got.Rows {
			if row.Stats[0].Value != 0 || !row.Stats[0].Imputed {
				t.Fatalf("expected zero fill, got %+v", row.Stats[0])
			}
		}
	})

	t.Run("fill is never negative", func(t *testing.T) {
		got := Impute([]RawRow{
			rawRow("a", 0.1, 1),
			rawRow("b", 0.2, 1),
			rawRow("c", 3, 1),
			rawRow("d", missing, 1),
		}, 2)
		if fill := got.Rows[3].Stats[0]; fill.Value != 0 || !fill.Imputed {
			t.Fatalf("expected clamped fill, got %+v", fill)
		}
	})
}

func TestImpute_EmptyBatch(t *testing.T) {
	got := Impute(nil, 4)
	if len(got.Rows) != 0 || len(got.Excluded) != 0 || len(got.Fills) != 4 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestStatValueDisplay(t *testing.T) {
	if got := (StatValue{Value: 1.209, Imputed: true}).Display(); got != "1.209*" {
		t.Fatalf("unexpected display %q", got)
	}
	if got := (StatValue{Value: 0.75}).Display(); got != "0.75" {
		t.Fatalf("unexpected display %q", got)
	}
}
