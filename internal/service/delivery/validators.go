package delivery

import (
	"strings"
	"time"
)

const (
	// Окно выдачи: час начала включительно, час конца исключительно.
	withdrawalOpeningHour = 8
	withdrawalClosingHour = 18

	dailyWithdrawalQuota = 5

	pageLimit = 5
)

func isValidProduct(product string) bool {
	return strings.TrimSpace(product) != ""
}

// isWithinWithdrawalWindow проверяет час выдачи в локальном времени метки.
func isWithinWithdrawalWindow(t time.Time) bool {
	hour := t.Hour()
	return hour >= withdrawalOpeningHour && hour < withdrawalClosingHour
}

// dayBounds возвращает границы календарного дня [from, to) для метки t.
func dayBounds(t time.Time) (from, to time.Time) {
	year, month, day := t.Date()
	from = time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	to = from.AddDate(0, 0, 1)
	return from, to
}

func lastPage(total, limit int64) int64 {
	if total == 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
