// internal/core/convert/engine.go
package convert

import (
	"fmt"
	"math"

	"unit-converter-bot/internal/core/units"
)

// Result - результат одного преобразования.
// Для линейных категорий заполнены оба коэффициента:
// ForwardFactor - сколько целевых единиц в одной исходной,
// InverseFactor - обратное соотношение.
// Для температуры коэффициенты не определены (пересчёт аффинный).
type Result struct {
	Value         float64
	ForwardFactor float64
	InverseFactor float64
	HasFactors    bool
}

// Convert выполняет преобразование значения между единицами одной категории.
// Валидация входа выполняется выше по стеку (диалоговый контроллер),
// поэтому ошибки здесь означают нарушение внутренней согласованности.
func Convert(category, fromUnit, toUnit string, value float64) (Result, error) {
	if units.IsTemperature(category) {
		converted, err := Temperature(value, fromUnit, toUnit)
		if err != nil {
			return Result{}, err
		}
		return Result{Value: converted}, nil
	}

	factorFrom, err := units.Factor(category, fromUnit)
	if err != nil {
		return Result{}, fmt.Errorf("исходная единица: %w", err)
	}
	factorTo, err := units.Factor(category, toUnit)
	if err != nil {
		return Result{}, fmt.Errorf("целевая единица: %w", err)
	}

	return Result{
		Value:         value / factorFrom * factorTo,
		ForwardFactor: factorTo / factorFrom,
		InverseFactor: factorFrom / factorTo,
		HasFactors:    true,
	}, nil
}

// FormatValue форматирует числовой результат для показа пользователю.
// Очень маленькие и очень большие значения выводятся в научной нотации,
// остальные - с четырьмя знаками после запятой. Ноль всегда фиксированный.
func FormatValue(v float64) string {
	abs := math.Abs(v)
	if abs != 0 && (abs < 0.0001 || abs > 1000000) {
		return fmt.Sprintf("%.4e", v)
	}
	return fmt.Sprintf("%.4f", v)
}
