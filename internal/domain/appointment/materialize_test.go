package appointment

import (
	"testing"

	"github.com/AtelierGestione/atelier-manager/internal/models"
)

func TestMaterializeWeekly(t *testing.T) {
	seed := models.Appointment{
		EmployeeID:    1,
		Date:          "2024-01-01",
		StartTime:     "10:00",
		EndTime:       "10:30",
		ClientName:    "Mario Rossi",
		ServiceType:   "Taglio",
		PaymentMethod: "contanti",
	}

	series, err := MaterializeWeekly(seed, DefaultRecurrenceWeeks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(series) != 52 {
		t.Fatalf("expected 52 occurrences, got %d", len(series))
	}

	if series[0].Date != "2024-01-01" {
		t.Errorf("first occurrence should be the seed date, got %s", series[0].Date)
	}
	// 51 settimane dopo il seme
	if last := series[51].Date; last != "2024-12-23" {
		t.Errorf("last occurrence should be 2024-12-23, got %s", last)
	}

	groupID := series[0].RecurrenceGroupID
	if groupID == nil || *groupID == "" {
		t.Fatal("expected a generated group id on the first occurrence")
	}

	prev, _ := ParseDate(series[0].Date)
	for i, ap := range series {
		if ap.RecurrenceGroupID == nil || *ap.RecurrenceGroupID != *groupID {
			t.Errorf("occurrence %d does not share the group id", i)
		}
		if !ap.IsRecurring {
			t.Errorf("occurrence %d should carry the recurring flag", i)
		}
		if ap.ClientName != seed.ClientName || ap.StartTime != seed.StartTime {
			t.Errorf("occurrence %d lost seed fields", i)
		}

		if i > 0 {
			cur, _ := ParseDate(ap.Date)
			if gap := DaysBetween(prev, cur); gap != 7 {
				t.Errorf("gap between occurrence %d and %d is %d days, want 7", i-1, i, gap)
			}
			prev = cur
		}
	}
}

func TestMaterializeWeeklyFreshGroupPerSeries(t *testing.T) {
	seed := models.Appointment{Date: "2024-03-04", ClientName: "Luca Verdi"}

	a, err := MaterializeWeekly(seed, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := MaterializeWeekly(seed, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if *a[0].RecurrenceGroupID == *b[0].RecurrenceGroupID {
		t.Error("two series must not share a group id")
	}
}

func TestMaterializeWeeklyBadSeedDate(t *testing.T) {
	if _, err := MaterializeWeekly(models.Appointment{Date: "ieri"}, 52); err == nil {
		t.Error("expected an error for an unparseable seed date")
	}
}

func TestMaterializeWeeklyDefaultSpan(t *testing.T) {
	series, err := MaterializeWeekly(models.Appointment{Date: "2024-01-01"}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != DefaultRecurrenceWeeks {
		t.Errorf("expected default span of %d, got %d", DefaultRecurrenceWeeks, len(series))
	}
}

// Una serie appena materializzata deve sempre risultare settimanale
// al rilevamento.
func TestMaterializedSeriesIsDetected(t *testing.T) {
	seed := models.Appointment{
		EmployeeID: 2,
		Date:       "2024-06-03",
		StartTime:  "15:00",
		ClientName: "Giulia Neri",
	}

	series, err := MaterializeWeekly(seed, 52)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !IsWeeklySeries(series) {
		t.Error("a freshly materialized series must classify as weekly")
	}
}
