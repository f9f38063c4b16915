package types

// Theme is the light/dark display preference
type Theme int

const (
	Light Theme = iota
	Dark
)

// ParseTheme treats only "dark" as dark; an absent value means light
func ParseTheme(s string) Theme {
	if s == "dark" {
		return Dark
	}
	return Light
}

func (t Theme) String() string {
	if t == Dark {
		return "dark"
	}
	return "light"
}

func (t Theme) IsDark() bool {
	return t == Dark
}

func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func (t Theme) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Theme) UnmarshalText(text []byte) error {
	*t = ParseTheme(string(text))
	return nil
}
