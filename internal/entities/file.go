package entities

import "time"

// File — запись о загруженном файле (аватар курьера или подпись получателя).
// Сам upload живёт вне этого сервиса, мы храним только метаданные.
type File struct {
	ID        int64
	Name      string
	Path      string
	URL       string
	CreatedAt time.Time
}
