package convert

import (
	"errors"
	"math"
	"testing"

	"unit-converter-bot/internal/core/units"
)

func TestConvertLinear(t *testing.T) {
	tests := []struct {
		name     string
		category string
		from     string
		to       string
		value    float64
		want     float64
	}{
		{"метры в километры", "Длина", "m", "km", 1500, 1.5},
		{"километры в метры", "Длина", "km", "m", 1.5, 1500},
		{"тождественный перевод", "Масса", "kg", "kg", 42, 42},
		{"часы в секунды", "Время", "h", "s", 2, 7200},
		{"литры в галлоны США", "Объём", "l", "gal (US)", 10, 2.64172052},
		{"отрицательное значение", "Длина", "m", "cm", -2.5, -250},
		{"ноль", "Энергия", "J", "kWh", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.category, tt.from, tt.to, tt.value)
			if err != nil {
				t.Fatalf("Convert: %v", err)
			}
			if !closeEnough(got.Value, tt.want) {
				t.Errorf("Convert(%g %s → %s) = %g, ожидалось %g", tt.value, tt.from, tt.to, got.Value, tt.want)
			}
			if !got.HasFactors {
				t.Error("линейный перевод должен возвращать коэффициенты")
			}
		})
	}
}

func TestConvertFactors(t *testing.T) {
	res, err := Convert("Длина", "m", "cm", 1)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if !closeEnough(res.ForwardFactor, 100) {
		t.Errorf("ForwardFactor = %g, ожидалось 100", res.ForwardFactor)
	}
	if !closeEnough(res.InverseFactor, 0.01) {
		t.Errorf("InverseFactor = %g, ожидалось 0.01", res.InverseFactor)
	}
}

// Перевод туда и обратно должен возвращать исходное значение
// с точностью до относительной погрешности 1e-9
func TestConvertRoundTrip(t *testing.T) {
	for _, category := range units.Categories() {
		if units.IsTemperature(category) {
			continue
		}

		symbols, err := units.Units(category)
		if err != nil {
			t.Fatalf("Units(%s): %v", category, err)
		}

		base := symbols[0]
		const value = 123.456
		for _, to := range symbols {
			forward, err := Convert(category, base, to, value)
			if err != nil {
				t.Fatalf("%s: %s → %s: %v", category, base, to, err)
			}
			back, err := Convert(category, to, base, forward.Value)
			if err != nil {
				t.Fatalf("%s: %s → %s: %v", category, to, base, err)
			}
			if math.Abs(back.Value-value)/value > 1e-9 {
				t.Errorf("%s: %s ↔ %s: %g после возврата вместо %g", category, base, to, back.Value, value)
			}
		}
	}
}

func TestConvertTemperature(t *testing.T) {
	tests := []struct {
		name  string
		from  string
		to    string
		value float64
		want  float64
	}{
		{"точка замерзания C→F", "°C", "°F", 0, 32},
		{"точка кипения F→C", "°F", "°C", 212, 100},
		{"абсолютный ноль K→C", "K", "°C", 0, -273.15},
		{"C→K", "°C", "K", 0, 273.15},
		{"ноль Цельсия в Ранкины", "°C", "°R", 0, 491.67},
		{"тождественный перевод", "K", "K", 300, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(units.TemperatureCategory, tt.from, tt.to, tt.value)
			if err != nil {
				t.Fatalf("Convert: %v", err)
			}
			if !closeEnough(got.Value, tt.want) {
				t.Errorf("%g %s → %s = %g, ожидалось %g", tt.value, tt.from, tt.to, got.Value, tt.want)
			}
			if got.HasFactors {
				t.Error("температурный перевод не должен сообщать коэффициенты")
			}
		})
	}
}

func TestTemperatureUnknownScale(t *testing.T) {
	if _, err := Temperature(10, "°C", "°X"); !errors.Is(err, ErrUnsupportedTemperatureUnit) {
		t.Errorf("неизвестная шкала: ошибка %v, ожидалась ErrUnsupportedTemperatureUnit", err)
	}
	if _, err := Temperature(10, "°X", "°C"); !errors.Is(err, ErrUnsupportedTemperatureUnit) {
		t.Errorf("неизвестная исходная шкала: ошибка %v, ожидалась ErrUnsupportedTemperatureUnit", err)
	}
	// Тождественный перевод тоже проверяет шкалу
	if _, err := Temperature(10, "°X", "°X"); !errors.Is(err, ErrUnsupportedTemperatureUnit) {
		t.Errorf("тождественный перевод неизвестной шкалы должен вернуть ошибку, получено %v", err)
	}
}

func TestConvertErrors(t *testing.T) {
	if _, err := Convert("Валюта", "USD", "EUR", 1); !errors.Is(err, units.ErrUnknownCategory) {
		t.Errorf("неизвестная категория: %v", err)
	}
	if _, err := Convert("Длина", "m", "parsec", 1); !errors.Is(err, units.ErrUnknownUnit) {
		t.Errorf("неизвестная целевая единица: %v", err)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{12.3456789, "12.3457"},
		{0, "0.0000"},
		{0.00005, "5.0000e-05"},
		{0.0001, "0.0001"},
		{1500000, "1.5000e+06"},
		{1000000, "1000000.0000"},
		{-0.00005, "-5.0000e-05"},
		{-3.5, "-3.5000"},
	}

	for _, tt := range tests {
		if got := FormatValue(tt.value); got != tt.want {
			t.Errorf("FormatValue(%g) = %q, ожидалось %q", tt.value, got, tt.want)
		}
	}
}

func closeEnough(got, want float64) bool {
	if want == 0 {
		return math.Abs(got) < 1e-9
	}
	return math.Abs(got-want)/math.Abs(want) < 1e-9
}
