package engine

import "time"

// Clock отделяет движок от системного времени. Кулдауны и офлайн-учет
// сравниваются с Now(), поэтому тесты подставляют свои часы.
type Clock interface {
	Now() time.Time
}

// SystemClock - часы по time.Now.
type SystemClock struct{}

// Now возвращает текущее системное время.
func (SystemClock) Now() time.Time { return time.Now() }
