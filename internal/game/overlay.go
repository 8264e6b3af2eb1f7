package game

import (
	"errors"
	"os"

	"github.com/ncruces/zenity"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/project"

	"github.com/iburimskiy/geo-buffer-swarm/internal/logger"
)

// overlay holds user-loaded GeoJSON features, already projected into map
// space for drawing.
type overlay struct {
	name       string
	geometries []orb.Geometry
}

// openOverlayDialog asks the user for a GeoJSON file and loads it. A
// canceled dialog is not an error.
func (g *Game) openOverlayDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open GeoJSON Overlay"),
		zenity.FileFilters{{
			Name:     "GeoJSON",
			Patterns: []string{"*.geojson", "*.json"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return g.loadOverlay(filename)
}

func (g *Game) loadOverlay(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return err
	}

	ov := &overlay{name: path}
	for _, f := range fc.Features {
		if f.Geometry == nil {
			continue
		}
		ov.geometries = append(ov.geometries, project.Geometry(orb.Clone(f.Geometry), project.WGS84.ToMercator))
	}
	g.overlay = ov
	logger.L().Info("overlay_loaded", "file", path, "features", len(ov.geometries))
	return nil
}
