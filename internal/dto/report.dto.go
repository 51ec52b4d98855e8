package dto

import (
	"math"

	"github.com/AtelierGestione/atelier-manager/internal/domain/report"
)

// Gli importi si arrotondano solo in uscita, a due decimali.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type ReportDTO struct {
	MonthKey string `json:"month,omitempty"`
	From     string `json:"from,omitempty"`
	To       string `json:"to,omitempty"`

	Revenue       float64 `json:"revenue"`
	EmployeeShare float64 `json:"employee_share"`
	OwnerShare    float64 `json:"owner_share"`

	Expenses struct {
		Utilities   float64 `json:"utilities"`
		Bar         float64 `json:"bar"`
		Maintenance float64 `json:"maintenance"`
		Products    float64 `json:"products"`
		Total       float64 `json:"total"`
	} `json:"expenses"`

	NetProfit float64 `json:"net_profit"`
}

func FromSummary(s report.Summary) ReportDTO {
	var out ReportDTO
	out.Revenue = round2(s.Revenue)
	out.EmployeeShare = round2(s.EmployeeShare)
	out.OwnerShare = round2(s.OwnerShare)
	out.Expenses.Utilities = round2(s.Expenses.Utilities)
	out.Expenses.Bar = round2(s.Expenses.Bar)
	out.Expenses.Maintenance = round2(s.Expenses.Maintenance)
	out.Expenses.Products = round2(s.Expenses.Products)
	out.Expenses.Total = round2(s.Expenses.Total())
	out.NetProfit = round2(s.NetProfit)
	return out
}
