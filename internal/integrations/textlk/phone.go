package textlk

import "strings"

// FormatPhoneNumber приводит ланкийский номер к международному формату шлюза:
// - пробелы и дефисы удаляются
// - ведущий '0' и ровно 9 цифр после него заменяются на код страны "94"
// - ведущий "+94" теряет '+'
// - все остальное передается без изменений
func FormatPhoneNumber(phoneNumber string) string {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(phoneNumber))

	switch {
	case strings.HasPrefix(cleaned, "0") && len(cleaned) == 10:
		return "94" + cleaned[1:]
	case strings.HasPrefix(cleaned, "+94"):
		return cleaned[1:]
	default:
		return cleaned
	}
}
