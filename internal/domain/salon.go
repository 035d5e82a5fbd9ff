package domain

import (
	"regexp"
	"strings"
)

// Salon неизменяемая конфигурация салона: прайс, сетка часов, мастера
// Создаётся один раз при старте и передаётся компонентам по указателю
type Salon struct {
	Services  map[string]int // service -> price
	WorkHours []string       // slot labels in display order
	Stylists  []string

	PhonePattern        *regexp.Regexp
	InternationalPrefix string
	LocalPrefix         string

	CodePrefix     string
	MaxNameLength  int
	MaxEmailLength int
}

// Capacity returns how many appointments fit into one slot when no stylist is requested
func (s *Salon) Capacity() int {
	if len(s.Stylists) == 0 {
		return 1
	}
	return len(s.Stylists)
}

// HasTime returns true if t is a slot label of the work-hour grid
func (s *Salon) HasTime(t string) bool {
	for _, h := range s.WorkHours {
		if h == t {
			return true
		}
	}
	return false
}

// HasStylist returns true if name is on the roster
func (s *Salon) HasStylist(name string) bool {
	for _, st := range s.Stylists {
		if st == name {
			return true
		}
	}
	return false
}

// Price looks up the catalog price of a service
func (s *Salon) Price(service string) (int, bool) {
	price, ok := s.Services[service]
	return price, ok
}

// StripPhone оставляет только цифры и ведущий '+'
func StripPhone(raw string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(raw) {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			continue
		}
		if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidPhone проверяет очищенный телефон по шаблону салона
func (s *Salon) ValidPhone(stripped string) bool {
	if s.PhonePattern == nil {
		return stripped != ""
	}
	return s.PhonePattern.MatchString(stripped)
}

// CanonicalPhone приводит телефон к локальному формату: "+359887123456" -> "0887123456"
func (s *Salon) CanonicalPhone(raw string) string {
	phone := StripPhone(raw)
	if s.InternationalPrefix != "" && strings.HasPrefix(phone, s.InternationalPrefix) {
		return s.LocalPrefix + strings.TrimPrefix(phone, s.InternationalPrefix)
	}
	return phone
}

// NormalizeName обрезает пробелы, убирает угловые скобки и ограничивает длину
func (s *Salon) NormalizeName(name string) string {
	name = strings.NewReplacer("<", "", ">", "").Replace(strings.TrimSpace(name))
	return truncate(strings.TrimSpace(name), s.MaxNameLength)
}

// NormalizeEmail приводит email к нижнему регистру и ограничивает длину
func (s *Salon) NormalizeEmail(email string) string {
	return truncate(strings.ToLower(strings.TrimSpace(email)), s.MaxEmailLength)
}

func truncate(v string, max int) string {
	if max <= 0 {
		return v
	}
	runes := []rune(v)
	if len(runes) <= max {
		return v
	}
	return string(runes[:max])
}
