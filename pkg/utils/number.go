package utils

// PercentOf retorna part/whole*100, ou 0 quando whole é zero
func PercentOf(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}

	return part / whole * 100
}

// PercentChange retorna a variação percentual de previous para current.
// Quando previous é zero o resultado é 0, e não infinito.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}

	return (current - previous) / previous * 100
}
