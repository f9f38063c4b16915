package theme

// IconCode is an OpenWeatherMap condition icon identifier
type IconCode string

// Icon codes, day ("d") and night ("n") forms
const (
	ClearSkyDay          IconCode = "01d"
	ClearSkyNight        IconCode = "01n"
	FewCloudsDay         IconCode = "02d"
	FewCloudsNight       IconCode = "02n"
	ScatteredCloudsDay   IconCode = "03d"
	ScatteredCloudsNight IconCode = "03n"
	BrokenCloudsDay      IconCode = "04d"
	BrokenCloudsNight    IconCode = "04n"
	ShowerRainDay        IconCode = "09d"
	ShowerRainNight      IconCode = "09n"
	RainDay              IconCode = "10d"
	RainNight            IconCode = "10n"
	ThunderstormDay      IconCode = "11d"
	ThunderstormNight    IconCode = "11n"
	SnowDay              IconCode = "13d"
	SnowNight            IconCode = "13n"
	MistDay              IconCode = "50d"
	MistNight            IconCode = "50n"
)

// Icon is a Font Awesome glyph with an optional tint
type Icon struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// FallbackIcon is used for unknown condition codes
var FallbackIcon = Icon{Name: "fa-cloud"}

// IconFor maps a condition code to its icon. Unknown codes map to FallbackIcon.
func IconFor(code string) Icon {
	switch IconCode(code) {
	case ClearSkyDay:
		return Icon{Name: "fa-sun", Color: "#fbbf24"}
	case ClearSkyNight:
		return Icon{Name: "fa-moon", Color: "#cbd5e1"}
	case FewCloudsDay:
		return Icon{Name: "fa-cloud-sun", Color: "#fbbf24"}
	case FewCloudsNight:
		return Icon{Name: "fa-cloud-moon", Color: "#cbd5e1"}
	case ScatteredCloudsDay, ScatteredCloudsNight:
		return Icon{Name: "fa-cloud", Color: "#94a3b8"}
	case BrokenCloudsDay, BrokenCloudsNight:
		return Icon{Name: "fa-cloud", Color: "#64748b"}
	case ShowerRainDay, ShowerRainNight:
		return Icon{Name: "fa-cloud-rain", Color: "#60a5fa"}
	case RainDay:
		return Icon{Name: "fa-cloud-sun-rain", Color: "#60a5fa"}
	case RainNight:
		return Icon{Name: "fa-cloud-moon-rain", Color: "#60a5fa"}
	case ThunderstormDay, ThunderstormNight:
		return Icon{Name: "fa-cloud-bolt", Color: "#eab308"}
	case SnowDay, SnowNight:
		return Icon{Name: "fa-snowflake", Color: "#cbd5e1"}
	case MistDay, MistNight:
		return Icon{Name: "fa-smog", Color: "#94a3b8"}
	default:
		return FallbackIcon
	}
}
