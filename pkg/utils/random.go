package utils

import (
	"crypto/rand"
	"encoding/hex"
	mathrand "math/rand"
)

// GenerateID создает простой уникальный ID (замена UUID для снижения зависимостей)
func GenerateID() string {
	b := make([]byte, 8) // 16 символов hex
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// GenerateDeterministicID создает ID из переданного rng.
// При одинаковом сиде последовательность ID воспроизводима.
func GenerateDeterministicID(rng *mathrand.Rand, prefix string) string {
	b := make([]byte, 8)
	for i := range b {
		b[i] = byte(rng.Intn(256))
	}
	return prefix + hex.EncodeToString(b)
}

// StringToSeed превращает строку в сид для math/rand (FNV-1a).
func StringToSeed(s string) int64 {
	var h uint64 = 14695981039346656037
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= 1099511628211
	}
	return int64(h)
}

// WeightedIndex выбирает индекс пропорционально весам.
// Нулевые и отрицательные веса не выпадают никогда.
// При пустом или нулевом наборе возвращает 0.
func WeightedIndex(rng *mathrand.Rand, weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return 0
	}

	roll := rng.Intn(total)
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if roll < w {
			return i
		}
		roll -= w
	}
	return 0
}

// Choice возвращает случайный элемент среза. Паникует на пустом:
// вызывающие передают статические непустые каталоги.
func Choice[T any](rng *mathrand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}
