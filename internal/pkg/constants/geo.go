package constants

// EarthRadiusKm is the sphere radius used for haversine distance
const EarthRadiusKm = 6371.0

// HelperGeohashPrecision is the precision stored on helper rows
const HelperGeohashPrecision = 12
