// Package distance содержит векторную арифметику для сравнения эмбеддингов голоса.
// Косинусная дистанция: 0 — векторы сонаправлены, 1 — ортогональны.
package distance

import "math"

// Dot возвращает скалярное произведение двух векторов.
// Векторы должны быть одинаковой длины (ответственность вызывающего).
func Dot(a, b []float32) float32 {
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// Norm возвращает L2-норму вектора.
func Norm(v []float32) float32 {
	return float32(math.Sqrt(float64(Dot(v, v))))
}

// Cosine возвращает косинусную дистанцию 1 - cos(a, b).
// Для нулевого вектора возвращает максимальную дистанцию 1.0:
// направление нулевого вектора не определено.
func Cosine(a, b []float32) float64 {
	na := Norm(a)
	nb := Norm(b)
	if na == 0 || nb == 0 {
		return 1.0
	}

	cos := float64(Dot(a, b)) / (float64(na) * float64(nb))

	// float32-арифметика может дать |cos| чуть больше единицы
	if cos > 1 {
		cos = 1
	}
	if cos < -1 {
		cos = -1
	}

	return 1 - cos
}
