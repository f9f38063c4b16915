package theme

import "testing"

func TestIconFor(t *testing.T) {
	tests := []struct {
		code     string
		expected string
	}{
		{"01d", "fa-sun"},
		{"01n", "fa-moon"},
		{"02d", "fa-cloud-sun"},
		{"02n", "fa-cloud-moon"},
		{"04n", "fa-cloud"},
		{"09d", "fa-cloud-rain"},
		{"10d", "fa-cloud-sun-rain"},
		{"10n", "fa-cloud-moon-rain"},
		{"11d", "fa-cloud-bolt"},
		{"13n", "fa-snowflake"},
		{"50d", "fa-smog"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := IconFor(tt.code); got.Name != tt.expected {
				t.Errorf("IconFor(%q).Name = %q, want %q", tt.code, got.Name, tt.expected)
			}
		})
	}
}

func TestIconFor_DayNightDistinct(t *testing.T) {
	if IconFor("01d") == IconFor("01n") {
		t.Error("IconFor(01d) and IconFor(01n) should differ")
	}
}

func TestIconFor_Fallback(t *testing.T) {
	for _, code := range []string{"99x", "", "01"} {
		if got := IconFor(code); got != FallbackIcon {
			t.Errorf("IconFor(%q) = %+v, want fallback %+v", code, got, FallbackIcon)
		}
	}
}

func TestGradientFor(t *testing.T) {
	categories := []Category{Clear, Clouds, Rain, Drizzle, Thunderstorm, Snow, Mist, Smoke, Haze, Fog}

	for _, c := range categories {
		t.Run(string(c), func(t *testing.T) {
			light := GradientFor(string(c), false)
			dark := GradientFor(string(c), true)
			if light == "" || dark == "" {
				t.Fatalf("empty gradient for %s", c)
			}
			if light == dark {
				t.Errorf("light and dark gradients for %s are identical", c)
			}
			if GradientFor(string(c), false) != light {
				t.Errorf("GradientFor(%s) is not deterministic", c)
			}
		})
	}
}

func TestGradientFor_Rain(t *testing.T) {
	if GradientFor("Rain", false) == GradientFor("Rain", true) {
		t.Error("Rain light and dark gradients should differ")
	}
}

func TestGradientFor_UnknownFallsBackToClear(t *testing.T) {
	if got, want := GradientFor("UnknownCategory", false), GradientFor("Clear", false); got != want {
		t.Errorf("light fallback = %q, want %q", got, want)
	}
	if got, want := GradientFor("UnknownCategory", true), GradientFor("Clear", true); got != want {
		t.Errorf("dark fallback = %q, want %q", got, want)
	}
}

func TestGradientFor_ObscuredShareGradient(t *testing.T) {
	for _, c := range []string{"Smoke", "Haze", "Fog"} {
		if GradientFor(c, true) != GradientFor("Mist", true) {
			t.Errorf("%s dark gradient should match Mist", c)
		}
	}
}
