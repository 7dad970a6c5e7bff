package domain

import (
	"strconv"
	"strings"
)

// PropertyStatus - статус объявления на backend.
type PropertyStatus string

const (
	StatusAvailable PropertyStatus = "AVAILABLE"
	StatusPending   PropertyStatus = "PENDING"
	StatusSold      PropertyStatus = "SOLD"
	StatusRented    PropertyStatus = "RENTED"
	StatusRejected  PropertyStatus = "REJECTED"
)

// PropertyImage - загруженный на backend файл. FilePath относительный, от корня backend-а.
type PropertyImage struct {
	FilePath string
}

// AgentRef - ссылка на назначенного агента.
type AgentRef struct {
	ID int64
}

// Property - копия объявления только для отрисовки. Владелец данных - backend.
type Property struct {
	ID            int64
	Title         string
	Address       string
	Price         float64
	Type          string
	Status        PropertyStatus
	ImageURL      string
	ImageURLs     []string
	Images        []PropertyImage
	OwnerEmail    string
	DriveLink     string
	Description   string
	Bedrooms      *int
	Bathrooms     *int
	AreaSqFt      *float64
	Facilities    []string
	HouseRules    string
	AssignedAgent *AgentRef
}

// ImageSource выбирает картинку для карточки:
// imageUrl -> первый из imageUrls -> baseURL + первый images[].filePath -> placeholder.
func (p Property) ImageSource(baseURL, placeholder string) string {
	if p.ImageURL != "" {
		return p.ImageURL
	}
	if len(p.ImageURLs) > 0 && p.ImageURLs[0] != "" {
		return p.ImageURLs[0]
	}
	if len(p.Images) > 0 && p.Images[0].FilePath != "" {
		return strings.TrimRight(baseURL, "/") + p.Images[0].FilePath
	}
	return placeholder
}

// DisplayStatus возвращает статус, по умолчанию AVAILABLE.
func (p Property) DisplayStatus() PropertyStatus {
	if p.Status == "" {
		return StatusAvailable
	}
	return p.Status
}

// StatusBadgeClass - css-классы бейджа статуса в таблице агента.
func StatusBadgeClass(status PropertyStatus) string {
	switch status {
	case StatusPending:
		return "bg-yellow-500/10 text-yellow-500"
	case StatusSold:
		return "bg-red-500/10 text-red-500"
	case StatusRented:
		return "bg-purple-500/10 text-purple-500"
	default:
		return "bg-primary/10 text-primary"
	}
}

// OrDefault возвращает value или fallback для пустой строки.
func OrDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// CountLabel - подпись "N properties" над таблицей, число без разделителей разрядов.
func CountLabel(n int) string {
	return strconv.Itoa(n) + " properties"
}
