package utils

import "astroportal/internal/models/db_models"

var horoscopeTypeLabels = map[db_models.HoroscopeType]string{
	db_models.HoroscopeDaily:    "Horoskop dzienny",
	db_models.HoroscopeWeekly:   "Horoskop tygodniowy",
	db_models.HoroscopeMonthly:  "Horoskop miesięczny",
	db_models.HoroscopeYearly:   "Horoskop roczny",
	db_models.HoroscopeLifetime: "Horoskop życiowy",
}

var orderStatusLabels = map[db_models.OrderStatus]string{
	db_models.OrderStatusPending:    "Oczekujące",
	db_models.OrderStatusProcessing: "W trakcie przygotowania",
	db_models.OrderStatusCompleted:  "Gotowe",
	db_models.OrderStatusCancelled:  "Anulowane",
}

// FormatHoroscopeType returns the Polish display label for a horoscope
// category. Unknown values pass through unchanged.
func FormatHoroscopeType(t db_models.HoroscopeType) string {
	if label, ok := horoscopeTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// FormatOrderStatus returns the Polish display label for an order
// status. Unknown values pass through unchanged.
func FormatOrderStatus(s db_models.OrderStatus) string {
	if label, ok := orderStatusLabels[s]; ok {
		return label
	}
	return string(s)
}
