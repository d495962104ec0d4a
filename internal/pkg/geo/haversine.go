package geo

import "math"

const earthRadiusKm = 6371

// Distance returns the great-circle distance in kilometers between two
// points given in decimal degrees.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// BoundingBox returns a rectangular lat/lng window that fully contains
// the circle of radiusKm around the center. 1 degree of latitude is
// about 111 km; longitude degrees shrink by cos(latitude).
func BoundingBox(lat, lng, radiusKm float64) (minLat, maxLat, minLng, maxLng float64) {
	latDelta := radiusKm / 111
	lngDelta := radiusKm / (111 * math.Cos(toRad(lat)))
	return lat - latDelta, lat + latDelta, lng - lngDelta, lng + lngDelta
}

func toRad(deg float64) float64 {
	return deg * (math.Pi / 180)
}
