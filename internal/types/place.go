package types

import "fmt"

// PlaceLabel is the display name of a location, e.g. "London, GB"
type PlaceLabel string

func NewPlaceLabel(name, countryCode string) PlaceLabel {
	if countryCode == "" {
		return PlaceLabel(name)
	}
	return PlaceLabel(fmt.Sprintf("%s, %s", name, countryCode))
}

func (p PlaceLabel) String() string {
	return string(p)
}
