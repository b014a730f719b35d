package models

// Pin - единственная хранимая сущность: одна запись галереи.
// PinID и CreatedAt сериализуются в текст на границе хранилища,
// поэтому запись готова к передаче без дополнительных преобразований.
type Pin struct {
	PinID       string   `json:"pin_id"`
	Title       string   `json:"title"`
	ImageURL    string   `json:"image_url"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
	CreatedAt   string   `json:"created_at"`
}
