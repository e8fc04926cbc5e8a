package models

// Preferences хранит настройки оформления, выбранные в шапке и сайдбаре:
// язык интерфейса, тему и состояние свёрнутого меню.
type Preferences struct {
	Locale    string `json:"locale"`    // Язык интерфейса: uz, ru или en
	Theme     string `json:"theme"`     // Тема оформления: dark или light
	Collapsed bool   `json:"collapsed"` // Свёрнут ли сайдбар
}

// DefaultPreferences возвращает настройки новой сессии:
// тёмная тема и узбекский язык, как в исходной вёрстке.
func DefaultPreferences() Preferences {
	return Preferences{Locale: "uz", Theme: "dark"}
}

// DummyPreferences используется для приёма частичного обновления настроек.
// Непереданные поля остаются прежними.
type DummyPreferences struct {
	Locale    *string `json:"locale,omitempty" validate:"omitempty,oneof=uz ru en"`   // Язык интерфейса
	Theme     *string `json:"theme,omitempty" validate:"omitempty,oneof=dark light"` // Тема оформления
	Collapsed *bool   `json:"collapsed,omitempty"`                                   // Свёрнут ли сайдбар
}

// Apply накладывает переданные поля на существующие настройки.
func (d DummyPreferences) Apply(p Preferences) Preferences {
	if d.Locale != nil {
		p.Locale = *d.Locale
	}
	if d.Theme != nil {
		p.Theme = *d.Theme
	}
	if d.Collapsed != nil {
		p.Collapsed = *d.Collapsed
	}
	return p
}
