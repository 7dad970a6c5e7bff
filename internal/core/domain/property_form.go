package domain

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

const MsgAgentRequired = "Please select an agent name before submitting."

// PropertyForm - сырые значения формы создания объявления, как их прислал браузер.
type PropertyForm struct {
	Title            string
	Address          string
	Price            string
	Type             string
	Status           string
	Description      string
	Bedrooms         string
	Bathrooms        string
	AreaSqFt         string
	ImageURL         string
	AdditionalImages string
	Facilities       []string
	HouseRules       string
	AssignedAgentID  string
}

// NewProperty - нормализованные данные для POST /api/properties.
// Отсутствующие числа и необязательные строки - nil, а не ноль или пустая строка.
type NewProperty struct {
	Title           string
	Address         string
	Price           *float64
	Type            string
	Status          string
	Description     *string
	Bedrooms        *int
	Bathrooms       *int
	AreaSqFt        *float64
	ImageURL        *string
	ImageURLs       []string
	Facilities      []string
	HouseRules      *string
	AssignedAgentID int64
}

// Normalize проверяет форму и приводит типы. Ошибка возвращается до любого сетевого вызова.
func (f PropertyForm) Normalize() (*NewProperty, error) {
	agentID := parseLeadingInt(f.AssignedAgentID)
	if strings.TrimSpace(f.AssignedAgentID) == "" || agentID == nil {
		return nil, NewValidationError(MsgAgentRequired)
	}

	facilities := make([]string, 0, len(f.Facilities))
	for _, facility := range f.Facilities {
		if facility != "" {
			facilities = append(facilities, facility)
		}
	}

	return &NewProperty{
		Title:           f.Title,
		Address:         f.Address,
		Price:           parseLeadingFloat(f.Price),
		Type:            f.Type,
		Status:          f.Status,
		Description:     optionalString(f.Description),
		Bedrooms:        parseLeadingInt(f.Bedrooms),
		Bathrooms:       parseLeadingInt(f.Bathrooms),
		AreaSqFt:        parseLeadingFloat(f.AreaSqFt),
		ImageURL:        optionalString(f.ImageURL),
		ImageURLs:       SplitImageList(f.AdditionalImages),
		Facilities:      facilities,
		HouseRules:      optionalString(f.HouseRules),
		AssignedAgentID: int64(*agentID),
	}, nil
}

// SplitImageList разбирает список url через запятую, пустые элементы отбрасываются.
func SplitImageList(raw string) []string {
	result := []string{}
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// parseLeadingInt ведет себя как parseInt(value, 10): берет ведущие цифры, иначе nil.
func parseLeadingInt(value string) *int {
	s := strings.TrimSpace(value)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return nil
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return nil
	}
	return &n
}

// parseLeadingFloat ведет себя как parseFloat: самый длинный числовой префикс, иначе nil.
// Префикс находится за один проход, ParseFloat вызывается один раз.
func parseLeadingFloat(value string) *float64 {
	prefix := leadingFloatPrefix(strings.TrimLeftFunc(value, unicode.IsSpace))
	if prefix == "" {
		return nil
	}
	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// leadingFloatPrefix: [+-] digits [. digits] [(e|E) [+-] digits]. Хотя бы одна цифра в мантиссе.
func leadingFloatPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	i = skipDigits(s, i)
	mantissaDigits := i - start

	if i < len(s) && s[i] == '.' {
		end := skipDigits(s, i+1)
		if mantissaDigits > 0 || end > i+1 {
			mantissaDigits += end - i - 1
			i = end
		}
	}
	if mantissaDigits == 0 {
		return ""
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if end := skipDigits(s, j); end > j {
			i = end
		}
	}
	return s[:i]
}

func skipDigits(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}
