package theme

// Category is the coarse OpenWeatherMap condition ("weather.main")
type Category string

const (
	Clear        Category = "Clear"
	Clouds       Category = "Clouds"
	Rain         Category = "Rain"
	Drizzle      Category = "Drizzle"
	Thunderstorm Category = "Thunderstorm"
	Snow         Category = "Snow"
	Mist         Category = "Mist"
	Smoke        Category = "Smoke"
	Haze         Category = "Haze"
	Fog          Category = "Fog"
)

// Gradient is a CSS background value
type Gradient string

const (
	clearLight        Gradient = "linear-gradient(135deg, #667eea 0%, #764ba2 100%)"
	clearDark         Gradient = "linear-gradient(135deg, #1e3c72 0%, #2a5298 100%)"
	cloudsLight       Gradient = "linear-gradient(135deg, #606c88 0%, #3f4c6b 100%)"
	cloudsDark        Gradient = "linear-gradient(135deg, #2c3e50 0%, #34495e 100%)"
	rainLight         Gradient = "linear-gradient(135deg, #00d2ff 0%, #3a7bd5 100%)"
	rainDark          Gradient = "linear-gradient(135deg, #0f2027 0%, #203a43 50%, #2c5364 100%)"
	drizzleLight      Gradient = "linear-gradient(135deg, #89f7fe 0%, #66a6ff 100%)"
	thunderstormLight Gradient = "linear-gradient(135deg, #2c3e50 0%, #4ca1af 100%)"
	thunderstormDark  Gradient = "linear-gradient(135deg, #141e30 0%, #243b55 100%)"
	snowLight         Gradient = "linear-gradient(135deg, #e0eafc 0%, #cfdef3 100%)"
	snowDark          Gradient = "linear-gradient(135deg, #2c3e50 0%, #3f5163 100%)"
	obscuredLight     Gradient = "linear-gradient(135deg, #bdc3c7 0%, #2c3e50 100%)"
	obscuredDark      Gradient = "linear-gradient(135deg, #232526 0%, #414345 100%)"
)

// GradientFor returns the background for a condition category in light or dark
// mode. Unknown categories use the Clear gradient for the requested mode.
func GradientFor(main string, dark bool) Gradient {
	light, night := gradientPair(Category(main))
	if dark {
		return night
	}
	return light
}

func gradientPair(c Category) (light, dark Gradient) {
	switch c {
	case Clear:
		return clearLight, clearDark
	case Clouds:
		return cloudsLight, cloudsDark
	case Rain:
		return rainLight, rainDark
	case Drizzle:
		// dark drizzle shares the rain palette
		return drizzleLight, rainDark
	case Thunderstorm:
		return thunderstormLight, thunderstormDark
	case Snow:
		return snowLight, snowDark
	case Mist, Smoke, Haze, Fog:
		return obscuredLight, obscuredDark
	default:
		return clearLight, clearDark
	}
}
