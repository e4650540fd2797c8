// internal/core/convert/temperature.go
package convert

import (
	"errors"
	"fmt"
)

// ErrUnsupportedTemperatureUnit возвращается для неизвестной температурной шкалы.
// Исходное значение при ошибке никогда не возвращается как результат.
var ErrUnsupportedTemperatureUnit = errors.New("неподдерживаемая температурная шкала")

// Температурные шкалы
const (
	Celsius    = "°C"
	Fahrenheit = "°F"
	Kelvin     = "K"
	Rankine    = "°R"
)

// toCelsius приводит значение к шкале Цельсия.
// Физические определения: C = K - 273.15, F = C*9/5 + 32, R = F + 459.67
func toCelsius(value float64, from string) (float64, error) {
	switch from {
	case Celsius:
		return value, nil
	case Fahrenheit:
		return (value - 32) * 5 / 9, nil
	case Kelvin:
		return value - 273.15, nil
	case Rankine:
		return (value - 491.67) * 5 / 9, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedTemperatureUnit, from)
	}
}

// fromCelsius переводит значение из шкалы Цельсия в целевую
func fromCelsius(value float64, to string) (float64, error) {
	switch to {
	case Celsius:
		return value, nil
	case Fahrenheit:
		return value*9/5 + 32, nil
	case Kelvin:
		return value + 273.15, nil
	case Rankine:
		return (value + 273.15) * 9 / 5, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedTemperatureUnit, to)
	}
}

// Temperature переводит значение между четырьмя температурными шкалами.
// Все 12 упорядоченных пар выводятся через опорную шкалу Цельсия.
func Temperature(value float64, from, to string) (float64, error) {
	if from == to {
		// Тождественный перевод, но шкала должна быть известной
		if _, err := toCelsius(value, from); err != nil {
			return 0, err
		}
		return value, nil
	}

	celsius, err := toCelsius(value, from)
	if err != nil {
		return 0, err
	}
	return fromCelsius(celsius, to)
}
