package entity

// AppSettings preferencias de la sesión. Configuración pura: no hay
// invariantes más allá de los valores enumerados que valida la capa HTTP.
type AppSettings struct {
	Currency    string `json:"currency"`
	Language    string `json:"language"`
	DarkMode    bool   `json:"darkMode"`
	LowDataMode bool   `json:"lowDataMode"`
	OfflineMode bool   `json:"offlineMode"`
}

// DefaultSettings valores iniciales de una sesión nueva.
func DefaultSettings() AppSettings {
	return AppSettings{
		Currency: "INR",
		Language: "English",
		DarkMode: true,
	}
}
