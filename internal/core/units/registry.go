// internal/core/units/registry.go
package units

import (
	"errors"
	"fmt"
)

// Ошибки реестра величин
var (
	ErrUnknownCategory = errors.New("неизвестная категория величин")
	ErrUnknownUnit     = errors.New("неизвестная единица измерения")
	// ErrNonLinearUnit возвращается для температуры: у неё нет линейного
	// множителя, пересчёт выполняется отдельным конвертером
	ErrNonLinearUnit = errors.New("единица не имеет линейного множителя")
)

// TemperatureCategory - единственная категория с нелинейным пересчётом
const TemperatureCategory = "Температура"

// Unit - единица измерения внутри категории.
// Factor задан относительно базовой единицы категории (Factor == 1).
type Unit struct {
	Symbol string
	Factor float64
}

// Category - именованная группа взаимно переводимых единиц
type Category struct {
	Name      string
	Units     []Unit
	NonLinear bool // температура: пересчёт по формулам, а не множителем
}

// Порядок категорий и единиц фиксирован: он определяет раскладку клавиатур
var categories = []Category{
	{
		Name: "Момент силы",
		Units: []Unit{
			{"N·m", 1}, {"kN·m", 0.001}, {"kgf·m", 0.101971621},
			{"lbf·ft", 0.737562149}, {"lbf·in", 8.85074579},
			{"ozf·in", 141.611933}, {"dyn·cm", 10000000},
		},
	},
	{
		Name: "Площадь",
		Units: []Unit{
			{"m²", 1}, {"cm²", 10000}, {"mm²", 1000000},
			{"ft²", 10.7639104}, {"in²", 1550.0031},
			{"hectare", 0.0001}, {"acre", 0.000247105},
			{"yard²", 1.19599005}, {"mile²", 3.86102e-7},
		},
	},
	{
		Name: "Объём",
		Units: []Unit{
			{"m³", 1}, {"l", 1000}, {"cm³", 1000000},
			{"mm³", 1000000000}, {"ft³", 35.3146667},
			{"in³", 61023.7441}, {"gal (US)", 264.172052},
			{"gal (UK)", 219.969248}, {"barrel", 6.28981},
			{"pint (US)", 2113.37642}, {"pint (UK)", 1759.75399},
		},
	},
	{
		Name: "Давление",
		Units: []Unit{
			{"Pa", 1}, {"kPa", 0.001}, {"MPa", 0.000001},
			{"GPa", 0.000000001}, {"kgf/cm²", 0.0000101972},
			{"kgf/m²", 0.101971621}, {"psi", 0.000145038},
			{"ksi", 0.000000145038}, {"bar", 0.00001},
			{"atm", 0.00000986923}, {"Torr", 0.00750062},
			{"mmHg", 0.00750062}, {"mH2O", 0.000101972},
		},
	},
	{
		Name: "Длина",
		Units: []Unit{
			{"m", 1}, {"km", 0.001}, {"cm", 100},
			{"mm", 1000}, {"μm", 1000000}, {"nm", 1000000000},
			{"ft", 3.2808399}, {"in", 39.3700787},
			{"yd", 1.0936133}, {"mile", 0.000621371},
			{"nautical mile", 0.000539957}, {"light-year", 1.057e-16},
		},
	},
	{
		Name: "Масса",
		Units: []Unit{
			{"kg", 1}, {"g", 1000}, {"mg", 1000000},
			{"ton", 0.001}, {"lb", 2.20462262},
			{"oz", 35.2739619}, {"carat", 5000},
			{"tonne", 0.001}, {"slug", 0.0685218},
			{"stone", 0.157473},
		},
	},
	{
		Name: "Сила",
		Units: []Unit{
			{"N", 1}, {"kN", 0.001}, {"kgf", 0.101971621},
			{"lbf", 0.224808943}, {"dyne", 100000},
			{"kip", 0.000224809}, {"poundal", 7.23301},
		},
	},
	{
		Name: "Время",
		Units: []Unit{
			{"s", 1}, {"ms", 1000}, {"μs", 1000000},
			{"min", 1.0 / 60}, {"h", 1.0 / 3600}, {"day", 1.0 / 86400},
			{"week", 1.0 / 604800}, {"month", 1 / 2.628e6},
			{"year", 1 / 3.154e7},
		},
	},
	{
		Name:      TemperatureCategory,
		NonLinear: true,
		Units: []Unit{
			{"°C", 0}, {"°F", 0}, {"K", 0}, {"°R", 0},
		},
	},
	{
		Name: "Скорость",
		Units: []Unit{
			{"m/s", 1}, {"km/h", 3.6}, {"mph", 2.23694},
			{"knot", 1.94384}, {"ft/s", 3.28084},
			{"c", 3.3356e-9},
		},
	},
	{
		Name: "Энергия",
		Units: []Unit{
			{"J", 1}, {"kJ", 0.001}, {"cal", 0.239006},
			{"kcal", 0.000239006}, {"Wh", 0.000277778},
			{"kWh", 2.7778e-7}, {"eV", 6.242e18},
			{"BTU", 0.000947817}, {"ft·lbf", 0.737562},
		},
	},
}

// индекс для поиска без перебора, заполняется в init
var byName = make(map[string]*Category, len(categories))

func init() {
	for i := range categories {
		byName[categories[i].Name] = &categories[i]
	}
}

// Categories возвращает имена всех категорий в фиксированном порядке
func Categories() []string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	return names
}

// HasCategory проверяет существование категории
func HasCategory(name string) bool {
	_, ok := byName[name]
	return ok
}

// IsTemperature проверяет, является ли категория температурной
func IsTemperature(name string) bool {
	c, ok := byName[name]
	return ok && c.NonLinear
}

// Units возвращает символы единиц категории в фиксированном порядке
func Units(category string) ([]string, error) {
	c, ok := byName[category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	symbols := make([]string, len(c.Units))
	for i, u := range c.Units {
		symbols[i] = u.Symbol
	}
	return symbols, nil
}

// HasUnit проверяет, что единица принадлежит категории
func HasUnit(category, symbol string) bool {
	c, ok := byName[category]
	if !ok {
		return false
	}
	for _, u := range c.Units {
		if u.Symbol == symbol {
			return true
		}
	}
	return false
}

// Factor возвращает линейный множитель единицы относительно базовой.
// Для температуры множителя нет: вызывающий обязан использовать
// температурный конвертер.
func Factor(category, symbol string) (float64, error) {
	c, ok := byName[category]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	if c.NonLinear {
		return 0, fmt.Errorf("%w: %s/%s", ErrNonLinearUnit, category, symbol)
	}
	for _, u := range c.Units {
		if u.Symbol == symbol {
			return u.Factor, nil
		}
	}
	return 0, fmt.Errorf("%w: %s/%s", ErrUnknownUnit, category, symbol)
}
