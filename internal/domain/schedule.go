package domain

import (
	"fmt"

	"github.com/m04kA/MMC-AppointmentService/pkg/types"
)

// SessionRange именованный полуоткрытый интервал [Start, End) внутри дня
type SessionRange struct {
	Name  string
	Start types.TimeString
	End   types.TimeString
}

// Contains возвращает true, если слот попадает в интервал сессии
func (sr SessionRange) Contains(t types.TimeString) bool {
	return !t.IsBefore(sr.Start) && t.IsBefore(sr.End)
}

// Schedule упорядоченный набор непересекающихся сессий
// Интервалы не обязаны покрывать весь день: слоты вне всех сессий недоступны для брони
type Schedule struct {
	sessions []SessionRange
}

// NewSchedule создает расписание сессий, проверяя корректность интервалов
// Инвариант непересечения принадлежит конфигурации и проверяется один раз здесь,
// а не при каждом вызове Classify
func NewSchedule(sessions []SessionRange) (Schedule, error) {
	if len(sessions) == 0 {
		return Schedule{}, fmt.Errorf("schedule: at least one session is required")
	}

	for i, s := range sessions {
		if s.Name == "" {
			return Schedule{}, fmt.Errorf("schedule: session %d has empty name", i)
		}
		if err := s.Start.Validate(); err != nil {
			return Schedule{}, fmt.Errorf("schedule: session %q start: %w", s.Name, err)
		}
		if err := s.End.Validate(); err != nil {
			return Schedule{}, fmt.Errorf("schedule: session %q end: %w", s.Name, err)
		}
		if !s.Start.IsBefore(s.End) {
			return Schedule{}, fmt.Errorf("schedule: session %q start %s is not before end %s", s.Name, s.Start, s.End)
		}
	}

	for i := 0; i < len(sessions); i++ {
		for j := i + 1; j < len(sessions); j++ {
			if overlaps(sessions[i], sessions[j]) {
				return Schedule{}, fmt.Errorf("schedule: sessions %q and %q overlap", sessions[i].Name, sessions[j].Name)
			}
		}
	}

	return Schedule{sessions: sessions}, nil
}

func overlaps(a, b SessionRange) bool {
	return a.Start.IsBefore(b.End) && b.Start.IsBefore(a.End)
}

// Classify возвращает имя сессии, содержащей слот, либо false,
// если слот не попадает ни в одну сессию. Чистая функция без побочных эффектов
func (s Schedule) Classify(t types.TimeString) (string, bool) {
	for _, session := range s.sessions {
		if session.Contains(t) {
			return session.Name, true
		}
	}
	return "", false
}

// Sessions возвращает копию списка сессий в порядке конфигурации
func (s Schedule) Sessions() []SessionRange {
	out := make([]SessionRange, len(s.sessions))
	copy(out, s.sessions)
	return out
}
