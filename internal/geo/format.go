package geo

import "fmt"

// Format selects the coordinate output style.
type Format int

const (
	// FormatDecimalDegrees renders "lat, lon" with five decimals.
	FormatDecimalDegrees Format = iota
	// FormatDMS renders degrees, minutes and decimal seconds with
	// hemisphere suffixes.
	FormatDMS
)

func (e *Engine) FormatCoordinate(p Point, f Format) string {
	ll := e.ProjectPoint(p, WGS84)
	lon, lat := ll.X, ll.Y
	switch f {
	case FormatDMS:
		return dms(lat, "N", "S") + " " + dms(lon, "E", "W")
	default:
		return fmt.Sprintf("%.5f, %.5f", lat, lon)
	}
}

func dms(deg float64, pos, neg string) string {
	hemi := pos
	if deg < 0 {
		hemi = neg
		deg = -deg
	}
	d := int(deg)
	mf := (deg - float64(d)) * 60
	m := int(mf)
	s := (mf - float64(m)) * 60
	return fmt.Sprintf("%d°%02d'%05.2f\"%s", d, m, s, hemi)
}
