package dialog

import (
	"errors"
	"testing"
)

func TestEncodeDecodeConvertAgain(t *testing.T) {
	data := EncodeConvertAgain("Длина", "m", 1500)
	if data != "convert_again_Длина_m_1500" {
		t.Fatalf("EncodeConvertAgain = %q", data)
	}

	ev, err := DecodeCallback(data)
	if err != nil {
		t.Fatalf("DecodeCallback: %v", err)
	}
	if ev.Kind != EventConvertAgain {
		t.Errorf("Kind = %v, ожидалось EventConvertAgain", ev.Kind)
	}
	if ev.Category != "Длина" || ev.FromUnit != "m" || ev.Value != 1500 {
		t.Errorf("поля события: %+v", ev)
	}
}

func TestEncodeDecodeSaveFavorite(t *testing.T) {
	data := EncodeSaveFavorite("Масса", "kg", "lb")

	ev, err := DecodeCallback(data)
	if err != nil {
		t.Fatalf("DecodeCallback: %v", err)
	}
	if ev.Kind != EventSaveFavorite {
		t.Errorf("Kind = %v, ожидалось EventSaveFavorite", ev.Kind)
	}
	if ev.Category != "Масса" || ev.FromUnit != "kg" || ev.ToUnit != "lb" {
		t.Errorf("поля события: %+v", ev)
	}
}

// Ограниченное разбиение: подчёркивания в последнем поле остаются как есть
func TestDecodeBoundedSplit(t *testing.T) {
	ev, err := DecodeCallback("save_favorite_Давление_Pa_kgf/cm²")
	if err != nil {
		t.Fatalf("DecodeCallback: %v", err)
	}
	if ev.ToUnit != "kgf/cm²" {
		t.Errorf("ToUnit = %q", ev.ToUnit)
	}

	// Дробное значение содержит точку, но не подчёркивание
	ev, err = DecodeCallback("convert_again_Скорость_m/s_2.99e+08")
	if err != nil {
		t.Fatalf("DecodeCallback: %v", err)
	}
	if ev.Value != 2.99e+08 {
		t.Errorf("Value = %g", ev.Value)
	}
}

func TestDecodeServiceCallbacks(t *testing.T) {
	ev, err := DecodeCallback(CallbackCancel)
	if err != nil {
		t.Fatalf("DecodeCallback(cancel): %v", err)
	}
	if ev.Kind != EventDismissResult {
		t.Errorf("cancel: Kind = %v", ev.Kind)
	}

	ev, err = DecodeCallback(CallbackResetSettings)
	if err != nil {
		t.Fatalf("DecodeCallback(reset_settings): %v", err)
	}
	if ev.Kind != EventResetSettings {
		t.Errorf("reset_settings: Kind = %v", ev.Kind)
	}
}

func TestDecodeUnknown(t *testing.T) {
	tests := []string{
		"",
		"garbage",
		"convert_again_Длина_m",        // не хватает значения
		"convert_again_Длина_m_abc",    // значение не число
		"save_favorite_Масса_kg",       // не хватает целевой единицы
		"cancel_extra",
	}

	for _, data := range tests {
		if _, err := DecodeCallback(data); !errors.Is(err, ErrUnknownCallback) {
			t.Errorf("DecodeCallback(%q): ошибка %v, ожидалась ErrUnknownCallback", data, err)
		}
	}
}
