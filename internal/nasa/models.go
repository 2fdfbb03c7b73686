package nasa

// NearEarthObject is one close-approach record from the NEO feed, flattened
// for display.
type NearEarthObject struct {
	Name              string
	CloseApproachDate string
	EstDiameterMaxM   float64
	VelocityKmh       string
	MissDistanceKm    string
	Hazardous         bool
}

// SmallBody is the result of a small-body database lookup.
type SmallBody struct {
	FullName        string
	SpkID           string
	Designation     string
	DiscoveryDate   string
	SemiMajorAxisAU string
	Eccentricity    string
	InclinationDeg  string
	DiameterKm      string
}

// neoFeedResponse mirrors the NEO feed JSON payload; only the fields the CLI
// renders are decoded.
type neoFeedResponse struct {
	NearEarthObjects map[string][]neoObject `json:"near_earth_objects"`
}

type neoObject struct {
	Name              string `json:"name"`
	Hazardous         bool   `json:"is_potentially_hazardous_asteroid"`
	EstimatedDiameter struct {
		Meters struct {
			EstimatedDiameterMax float64 `json:"estimated_diameter_max"`
		} `json:"meters"`
	} `json:"estimated_diameter"`
	CloseApproachData []struct {
		CloseApproachDate string `json:"close_approach_date"`
		RelativeVelocity  struct {
			KilometersPerHour string `json:"kilometers_per_hour"`
		} `json:"relative_velocity"`
		MissDistance struct {
			Kilometers string `json:"kilometers"`
		} `json:"miss_distance"`
	} `json:"close_approach_data"`
}

// sbdbResponse mirrors the SBDB lookup JSON payload. Orbital elements and
// physical parameters arrive as name/value lists.
type sbdbResponse struct {
	Object struct {
		FullName string `json:"fullname"`
		SpkID    string `json:"spkid"`
		Des      string `json:"des"`
		Disc     string `json:"disc"`
	} `json:"object"`
	Orbit struct {
		Elements []sbdbNameValue `json:"elements"`
	} `json:"orbit"`
	PhysPar []sbdbNameValue `json:"phys_par"`
}

type sbdbNameValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func lookupValue(items []sbdbNameValue, name, fallback string) string {
	for _, it := range items {
		if it.Name == name && it.Value != "" {
			return it.Value
		}
	}
	return fallback
}
