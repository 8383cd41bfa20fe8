package domain

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/ewkb"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

const srid = 4326

// Point is a WGS84 longitude/latitude pair stored as an EWKB geometry column.
// Index 0 is longitude, index 1 is latitude.
type Point orb.Point

// NewPoint builds a point from a longitude/latitude pair.
func NewPoint(lon, lat float64) *Point {
	p := Point{lon, lat}
	return &p
}

func (p Point) Lon() float64 { return p[0] }
func (p Point) Lat() float64 { return p[1] }

// Scan decodes EWKB (raw bytes or PostGIS hex text) into the point.
func (p *Point) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	var op orb.Point
	sc := ewkb.Scanner(&op)
	if err := sc.Scan(value); err != nil {
		return err
	}
	*p = Point(op)
	return nil
}

// Value encodes the point as EWKB with SRID 4326.
func (p Point) Value() (driver.Value, error) {
	return ewkb.Value(orb.Point(p), srid).Value()
}

func (Point) GormDataType() string { return "geometry" }

// GormDBDataType keeps the column a real PostGIS geometry on postgres while
// sqlite (tests) stores the EWKB bytes opaquely.
func (Point) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "geometry(Point,4326)"
	}
	return "blob"
}

// MarshalJSON renders {"longitude": ..., "latitude": ...} for API responses.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]float64{
		"longitude": p.Lon(),
		"latitude":  p.Lat(),
	})
}
