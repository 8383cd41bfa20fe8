// Package geo holds the fixed service-area geometry for the Louisville Metro
// directory. All geography assumptions downstream (geocoding acceptance, map
// bounds) hang off these constants.
package geo

// Louisville Metro approximate bounding box (Jefferson County + surrounding).
const (
	MinLon = -85.966
	MaxLon = -85.414
	MinLat = 37.991
	MaxLat = 38.362
)

// Region center, used as the proximity bias for forward geocoding so the
// provider prefers local matches.
const (
	CenterLon = -85.7585
	CenterLat = 38.2527
)

// IsWithinRegion reports whether the coordinate lies inside the metro
// bounding box. Edges are inclusive.
func IsWithinRegion(lon, lat float64) bool {
	return lon >= MinLon && lon <= MaxLon && lat >= MinLat && lat <= MaxLat
}
