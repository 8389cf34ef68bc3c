package types

// LocationInfo contains human-readable location metadata
type LocationInfo struct {
	Name        string
	Province    string
	Country     string
	CountryCode string
}

// Place represents a resolved geographic location: coordinates plus
// the metadata the UI needs to label it and preselect a clock policy
type Place struct {
	Coordinates Coords
	Location    LocationInfo
	Timezone    string  // IANA zone name, e.g. "America/Argentina/Buenos_Aires"
	UTCOffset   float64 // offset from UTC in hours currently observed by the zone
}
