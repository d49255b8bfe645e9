package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/nearfix/internal/pkg/constants"
	"github.com/piresc/nearfix/internal/pkg/models"
)

// kmPerDegree is the arc length of one degree on the haversine sphere
const kmPerDegree = constants.EarthRadiusKm * math.Pi / 180.0

// CalculateDistance calculates the distance between two points in kilometers using the Haversine formula
func CalculateDistance(point1, point2 models.Coordinate) float64 {
	// Convert latitude and longitude from degrees to radians
	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	// rounding can push a a hair above 1 for antipodal points
	a = math.Min(1, math.Max(0, a))
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return constants.EarthRadiusKm * c
}

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Coordinate, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// GetNeighbors returns the neighboring geohashes of a given geohash
func GetNeighbors(hash string) []string {
	return geohash.Neighbors(hash)
}

// CellSizeKm returns the smaller side, in km, of a geohash cell of the given precision at latitude lat
func CellSizeKm(precision uint, lat float64) float64 {
	bits := 5 * precision
	lngBits := (bits + 1) / 2
	latBits := bits / 2
	latKm := 180.0 / math.Pow(2, float64(latBits)) * kmPerDegree
	lngKm := 360.0 / math.Pow(2, float64(lngBits)) * kmPerDegree * math.Cos(lat*math.Pi/180.0)
	return math.Min(latKm, lngKm)
}

// PrecisionForRadius returns the finest geohash precision whose cell at lat is at least radiusKm wide.
// It returns 0 when even a single-character cell is too small, meaning no prefix can bound the search.
func PrecisionForRadius(radiusKm, lat float64) uint {
	if radiusKm <= 0 {
		return 0
	}
	var precision uint
	for p := uint(1); p <= constants.HelperGeohashPrecision; p++ {
		if CellSizeKm(p, lat) < radiusKm {
			break
		}
		precision = p
	}
	return precision
}

// SearchCells returns the geohash cell containing center plus its eight neighbours,
// at a precision coarse enough that every point within radiusKm falls inside one of them.
// A nil result means the radius is too large to prefilter by prefix.
func SearchCells(center models.Coordinate, radiusKm float64) (cells []string, precision uint) {
	// cells narrow toward the poles, so size them at the most poleward point in range
	lat := math.Min(90, math.Abs(center.Latitude)+radiusKm/kmPerDegree)
	precision = PrecisionForRadius(radiusKm, lat)
	if precision == 0 {
		return nil, 0
	}
	hash := EncodeLocation(center, precision)
	cells = append([]string{hash}, GetNeighbors(hash)...)
	return cells, precision
}
