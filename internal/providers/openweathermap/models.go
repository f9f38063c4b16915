package openweathermap

// GeocodeResult is one match from the direct geocoding endpoint
type GeocodeResult struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
	State   string  `json:"state,omitempty"`
}

type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type MainReadings struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  int     `json:"pressure"`
	Humidity  int     `json:"humidity"`
}

type Wind struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg"`
	Gust  float64 `json:"gust,omitempty"`
}

// CurrentAPIResponse is the /weather payload
type CurrentAPIResponse struct {
	Coord struct {
		Lon float64 `json:"lon"`
		Lat float64 `json:"lat"`
	} `json:"coord"`
	Weather    []Condition  `json:"weather"`
	Main       MainReadings `json:"main"`
	Visibility float64      `json:"visibility"`
	Wind       Wind         `json:"wind"`
	Dt         int64        `json:"dt"`
	Sys        struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Timezone int    `json:"timezone"` // offset from UTC in seconds
	Name     string `json:"name"`
}

// ForecastItem is one 3-hour step of the /forecast payload
type ForecastItem struct {
	Dt      int64        `json:"dt"`
	Main    MainReadings `json:"main"`
	Weather []Condition  `json:"weather"`
	Wind    Wind         `json:"wind"`
	Pop     float64      `json:"pop"`
	DtTxt   string       `json:"dt_txt"`
}

// ForecastAPIResponse is the /forecast payload
type ForecastAPIResponse struct {
	Cnt  int            `json:"cnt"`
	List []ForecastItem `json:"list"`
	City struct {
		Name     string `json:"name"`
		Country  string `json:"country"`
		Timezone int    `json:"timezone"`
		Sunrise  int64  `json:"sunrise"`
		Sunset   int64  `json:"sunset"`
	} `json:"city"`
}

// PrimaryCondition returns the first reported condition, or the zero value
func PrimaryCondition(conditions []Condition) Condition {
	if len(conditions) == 0 {
		return Condition{}
	}
	return conditions[0]
}
