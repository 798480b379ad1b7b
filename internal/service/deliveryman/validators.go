package deliveryman

import "strings"

const pageLimit = 5

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

// isValidEmail делает минимальную структурную проверку.
// Подтверждение адреса — забота почтового провайдера.
func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	if !strings.Contains(domain, ".") || strings.Contains(email[at+1:], "@") {
		return false
	}
	return true
}

func lastPage(total, limit int64) int64 {
	if total == 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
