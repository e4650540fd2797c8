package units

import (
	"errors"
	"testing"
)

func TestCategoriesOrder(t *testing.T) {
	want := []string{
		"Момент силы", "Площадь", "Объём", "Давление", "Длина",
		"Масса", "Сила", "Время", "Температура", "Скорость", "Энергия",
	}

	got := Categories()
	if len(got) != len(want) {
		t.Fatalf("Categories() вернула %d категорий, ожидалось %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i] != name {
			t.Errorf("Categories()[%d] = %q, ожидалось %q", i, got[i], name)
		}
	}
}

func TestFactor(t *testing.T) {
	tests := []struct {
		name     string
		category string
		symbol   string
		want     float64
		wantErr  error
	}{
		{"базовая единица длины", "Длина", "m", 1, nil},
		{"километры", "Длина", "km", 0.001, nil},
		{"минуты", "Время", "min", 1.0 / 60, nil},
		{"фунты", "Масса", "lb", 2.20462262, nil},
		{"неизвестная категория", "Валюта", "RUB", 0, ErrUnknownCategory},
		{"неизвестная единица", "Длина", "parsec", 0, ErrUnknownUnit},
		{"температура без множителя", "Температура", "°C", 0, ErrNonLinearUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Factor(tt.category, tt.symbol)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Factor(%q, %q): ошибка %v, ожидалась %v", tt.category, tt.symbol, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Factor(%q, %q): неожиданная ошибка %v", tt.category, tt.symbol, err)
			}
			if got != tt.want {
				t.Errorf("Factor(%q, %q) = %v, ожидалось %v", tt.category, tt.symbol, got, tt.want)
			}
		})
	}
}

func TestHasUnit(t *testing.T) {
	if !HasUnit("Давление", "mmHg") {
		t.Error("HasUnit(Давление, mmHg) = false, единица существует")
	}
	if HasUnit("Давление", "psi2") {
		t.Error("HasUnit(Давление, psi2) = true, единицы не существует")
	}
	if HasUnit("Нет такой", "m") {
		t.Error("HasUnit по несуществующей категории должен вернуть false")
	}
}

func TestIsTemperature(t *testing.T) {
	if !IsTemperature(TemperatureCategory) {
		t.Errorf("IsTemperature(%q) = false", TemperatureCategory)
	}
	if IsTemperature("Длина") {
		t.Error("IsTemperature(Длина) = true")
	}
}

func TestUnitsFixedOrder(t *testing.T) {
	got, err := Units("Скорость")
	if err != nil {
		t.Fatalf("Units(Скорость): %v", err)
	}

	want := []string{"m/s", "km/h", "mph", "knot", "ft/s", "c"}
	if len(got) != len(want) {
		t.Fatalf("Units(Скорость) вернула %d единиц, ожидалось %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Units(Скорость)[%d] = %q, ожидалось %q", i, got[i], want[i])
		}
	}

	if _, err := Units("Валюта"); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("Units по несуществующей категории: ошибка %v, ожидалась ErrUnknownCategory", err)
	}
}
