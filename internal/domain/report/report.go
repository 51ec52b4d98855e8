package report

import (
	"fmt"

	domain "github.com/AtelierGestione/atelier-manager/internal/domain/appointment"
	"github.com/AtelierGestione/atelier-manager/internal/models"
)

// Ripartizione storica del salone: 40% al dipendente, 60% al titolare.
const (
	EmployeeShareRate = 0.40
	OwnerShareRate    = 0.60
)

// MonthKey produce la chiave YYYY-MM usata per i raggruppamenti mensili.
func MonthKey(year int, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// ===============================
// Fatturato
// ===============================

// Revenue somma il fatturato reale: solo appuntamenti pagati con
// carta o contanti. Scontistica e da-pagare non contano.
func Revenue(aps []models.Appointment) float64 {
	var total float64
	for _, ap := range aps {
		if !domain.CountsAsRevenue(ap.PaymentMethod) {
			continue
		}
		total += domain.PriceFor(ap.ServiceType, ap.Price)
	}
	return total
}

type Split struct {
	Revenue       float64 `json:"revenue"`
	EmployeeShare float64 `json:"employee_share"`
	OwnerShare    float64 `json:"owner_share"`
}

func SplitRevenue(revenue float64) Split {
	return Split{
		Revenue:       revenue,
		EmployeeShare: revenue * EmployeeShareRate,
		OwnerShare:    revenue * OwnerShareRate,
	}
}

// ===============================
// Spese e utile
// ===============================

type Expenses struct {
	Utilities   float64 `json:"utilities"`
	Bar         float64 `json:"bar"`
	Maintenance float64 `json:"maintenance"`
	Products    float64 `json:"products"`
}

func (e Expenses) Total() float64 {
	return e.Utilities + e.Bar + e.Maintenance + e.Products
}

// NetProfit: quota titolare meno tutte le spese del periodo.
func NetProfit(ownerShare float64, e Expenses) float64 {
	return ownerShare - e.Total()
}

// ===============================
// Riepilogo periodo
// ===============================

type Summary struct {
	Split
	Expenses  Expenses `json:"expenses"`
	NetProfit float64  `json:"net_profit"`
}

func Summarize(aps []models.Appointment, e Expenses) Summary {
	split := SplitRevenue(Revenue(aps))
	return Summary{
		Split:     split,
		Expenses:  e,
		NetProfit: NetProfit(split.OwnerShare, e),
	}
}

// ===============================
// Ripartizione per dipendente
// ===============================

type EmployeeTotal struct {
	EmployeeID uint    `json:"employee_id"`
	Revenue    float64 `json:"revenue"`
	Share      float64 `json:"share"`
}

func ByEmployee(aps []models.Appointment) []EmployeeTotal {
	totals := make(map[uint]float64)
	order := make([]uint, 0)

	for _, ap := range aps {
		if !domain.CountsAsRevenue(ap.PaymentMethod) {
			continue
		}
		if _, ok := totals[ap.EmployeeID]; !ok {
			order = append(order, ap.EmployeeID)
		}
		totals[ap.EmployeeID] += domain.PriceFor(ap.ServiceType, ap.Price)
	}

	out := make([]EmployeeTotal, 0, len(order))
	for _, id := range order {
		out = append(out, EmployeeTotal{
			EmployeeID: id,
			Revenue:    totals[id],
			Share:      totals[id] * EmployeeShareRate,
		})
	}
	return out
}
