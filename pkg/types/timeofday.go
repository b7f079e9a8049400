package types

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidTimeOfDay возвращается при некорректном формате времени суток
	ErrInvalidTimeOfDay = errors.New("types: invalid time of day, expected HH:MM")

	// ErrInvalidWeekday возвращается при некорректном названии дня недели
	ErrInvalidWeekday = errors.New("types: invalid weekday name")
)

// TimeOfDay время внутри суток (смещение от полуночи), без привязки к дате.
// Сериализуется в формате "HH:MM", например "16:30".
type TimeOfDay struct {
	offset time.Duration
}

// NewTimeOfDay создает TimeOfDay из часов и минут
func NewTimeOfDay(hours, minutes int) TimeOfDay {
	return TimeOfDay{offset: time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute}
}

// ParseTimeOfDay парсит строку формата "HH:MM"
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var hours, minutes int
	if _, err := fmt.Sscanf(s, "%d:%d", &hours, &minutes); err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	return NewTimeOfDay(hours, minutes), nil
}

// Duration возвращает смещение от полуночи
func (t TimeOfDay) Duration() time.Duration {
	return t.offset
}

// String возвращает время в формате "HH:MM"
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t.offset.Hours()), int(t.offset.Minutes())%60)
}

// UnmarshalText реализует encoding.TextUnmarshaler для декодирования из TOML
func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeOfDay(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Weekday день недели, сериализуется английским названием ("Monday")
type Weekday time.Weekday

// ParseWeekday парсит английское название дня недели
func ParseWeekday(s string) (Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if d.String() == s {
			return Weekday(d), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, s)
}

// Weekday возвращает стандартный time.Weekday
func (w Weekday) Weekday() time.Weekday {
	return time.Weekday(w)
}

// String возвращает английское название дня недели
func (w Weekday) String() string {
	return time.Weekday(w).String()
}

// UnmarshalText реализует encoding.TextUnmarshaler для декодирования из TOML
func (w *Weekday) UnmarshalText(text []byte) error {
	parsed, err := ParseWeekday(string(text))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
