package appointment

import (
	"fmt"
	"time"

	"github.com/AtelierGestione/atelier-manager/internal/httperr"
)

// ===============================
// Listino servizi
// ===============================

type ServiceInfo struct {
	DurationMin int
	Price       float64
}

// Listino statico: tipo di servizio -> durata e prezzo di default.
var services = map[string]ServiceInfo{
	"Taglio":       {DurationMin: 30, Price: 18},
	"Barba":        {DurationMin: 20, Price: 12},
	"Taglio+Barba": {DurationMin: 45, Price: 28},
	"Colore":       {DurationMin: 60, Price: 35},
	"Piega":        {DurationMin: 30, Price: 15},
	"Trattamento":  {DurationMin: 40, Price: 25},
}

func ServiceByType(serviceType string) (ServiceInfo, error) {
	info, ok := services[serviceType]
	if !ok {
		return ServiceInfo{}, httperr.ErrBusiness("unknown_service_type")
	}
	return info, nil
}

// EndTimeFor deriva l'orario di fine da inizio + durata del servizio.
// Non viene mai rivalidato in seguito.
func EndTimeFor(startTime string, serviceType string) (string, error) {
	start, err := time.Parse("15:04", startTime)
	if err != nil {
		return "", httperr.ErrBusiness("invalid_time")
	}

	info, err := ServiceByType(serviceType)
	if err != nil {
		return "", err
	}

	end := start.Add(time.Duration(info.DurationMin) * time.Minute)
	return fmt.Sprintf("%02d:%02d", end.Hour(), end.Minute()), nil
}

// PriceFor usa il prezzo esplicito della riga se presente,
// altrimenti il listino.
func PriceFor(serviceType string, explicit float64) float64 {
	if explicit > 0 {
		return explicit
	}
	if info, ok := services[serviceType]; ok {
		return info.Price
	}
	return 0
}

// ===============================
// Metodi di pagamento
// ===============================

const (
	PaymentCard     = "carta"
	PaymentCash     = "contanti"
	PaymentDiscount = "scontistica"
	PaymentPending  = "da-pagare"
)

func IsValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCard, PaymentCash, PaymentDiscount, PaymentPending:
		return true
	}
	return false
}

// CountsAsRevenue: solo carta e contanti entrano nel fatturato.
func CountsAsRevenue(m string) bool {
	return m == PaymentCard || m == PaymentCash
}
