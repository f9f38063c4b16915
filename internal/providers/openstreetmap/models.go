package openstreetmap

type Address struct {
	City        string `json:"city"`
	Town        string `json:"town"`
	Village     string `json:"village"`
	County      string `json:"county"`
	State       string `json:"state"`
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
}

type LookupAPIResponse struct {
	PlaceId     int     `json:"place_id"`
	Lat         string  `json:"lat"`
	Lon         string  `json:"lon"`
	Name        string  `json:"name"`
	DisplayName string  `json:"display_name"`
	Address     Address `json:"address"`
	Error       string  `json:"error,omitempty"`
}

// Locality returns the most specific settlement name in the address,
// falling back to the place name
func (r *LookupAPIResponse) Locality() string {
	switch {
	case r.Address.City != "":
		return r.Address.City
	case r.Address.Town != "":
		return r.Address.Town
	case r.Address.Village != "":
		return r.Address.Village
	case r.Name != "":
		return r.Name
	case r.Address.County != "":
		return r.Address.County
	default:
		return r.Address.State
	}
}
