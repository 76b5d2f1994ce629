package owm

// Area is a service area of the API. Every area has its own base URL and its
// own transport.
type Area int

const (
	AreaWeather Area = iota
	AreaPollution
	AreaHistory
	AreaMisc
)

var allAreas = []Area{AreaWeather, AreaPollution, AreaHistory, AreaMisc}

func (a Area) String() string {
	switch a {
	case AreaWeather:
		return "weather"
	case AreaPollution:
		return "pollution"
	case AreaHistory:
		return "history"
	case AreaMisc:
		return "misc"
	default:
		return "unknown"
	}
}

// Tier is the subscription level. It decides the weather base URL and the
// endpoints and limits available.
type Tier int

const (
	TierFree Tier = iota
	TierPro
)

func (t Tier) String() string {
	if t == TierPro {
		return "pro"
	}
	return "free"
}

const (
	freeWeatherBaseURL = "https://api.openweathermap.org/data/2.5"
	proWeatherBaseURL  = "https://pro.openweathermap.org/data/2.5"
	historyBaseURL     = "https://history.openweathermap.org/data/2.5"
	miscBaseURL        = "https://api.openweathermap.org/data/2.5"
	pollutionBaseURL   = "https://api.openweathermap.org/pollution/v1"
)

func defaultBaseURL(tier Tier, area Area) string {
	switch area {
	case AreaWeather:
		if tier == TierPro {
			return proWeatherBaseURL
		}
		return freeWeatherBaseURL
	case AreaHistory:
		return historyBaseURL
	case AreaPollution:
		return pollutionBaseURL
	default:
		return miscBaseURL
	}
}
