package recipient

import "strings"

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

// Формат не навязываем (сервис не привязан к одной стране),
// требуем только цифры и дефисы.
func isValidZipCode(zip string) bool {
	zip = strings.TrimSpace(zip)
	if zip == "" {
		return false
	}
	for _, char := range zip {
		if (char < '0' || char > '9') && char != '-' {
			return false
		}
	}
	return true
}
