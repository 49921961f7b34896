package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// LoadObstaclesFromFile reads triangular obstacles from a GeoJSON feature collection.
// Polygon and MultiPolygon outer rings are used; rings with more than three vertices
// are fan-triangulated, which is exact for convex rings.
func LoadObstaclesFromFile(path string) ([]Triangle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read obstacle file: %w", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse obstacle GeoJSON: %w", err)
	}

	var obstacles []Triangle
	for _, feature := range fc.Features {
		obstacles = append(obstacles, parseGeometry(feature.Geometry)...)
	}

	log.Printf("   ✅ Loaded %d obstacles from %s\n", len(obstacles), filepath.Base(path))
	return obstacles, nil
}

// parseGeometry converts GeoJSON geometry to triangles
func parseGeometry(geometry orb.Geometry) []Triangle {
	var triangles []Triangle

	switch g := geometry.(type) {
	case orb.Polygon:
		// First ring is the outer boundary
		if len(g) > 0 {
			triangles = append(triangles, triangulateRing(g[0])...)
		}
	case orb.MultiPolygon:
		for _, polygon := range g {
			if len(polygon) > 0 {
				triangles = append(triangles, triangulateRing(polygon[0])...)
			}
		}
	default:
		if geometry != nil {
			log.Printf("⚠️  Skipping unsupported geometry %s\n", geometry.GeoJSONType())
		}
	}

	return triangles
}

// triangulateRing fans a ring out from its first vertex
func triangulateRing(ring orb.Ring) []Triangle {
	points := make([]Point, 0, len(ring))
	for _, p := range ring {
		points = append(points, Point{X: p[0], Y: p[1]})
	}
	if len(points) > 1 && points[0] == points[len(points)-1] {
		points = points[:len(points)-1]
	}
	if len(points) < 3 {
		log.Printf("⚠️  Skipping ring with %d vertices\n", len(points))
		return nil
	}
	if len(points) > 3 && !ring.Closed() {
		log.Printf("⚠️  Ring with %d vertices is not closed, closing it\n", len(points))
	}

	triangles := make([]Triangle, 0, len(points)-2)
	for i := 1; i+1 < len(points); i++ {
		t, err := NewTriangle(points[0], points[i], points[i+1])
		if err != nil {
			log.Printf("⚠️  Skipping triangle: %v\n", err)
			continue
		}
		triangles = append(triangles, t)
	}
	return triangles
}

// trianglePolygon converts an obstacle to a closed orb polygon
func trianglePolygon(t Triangle) orb.Polygon {
	ring := make(orb.Ring, 0, 4)
	for _, v := range t.Vertices {
		ring = append(ring, orb.Point{v.X, v.Y})
	}
	ring = append(ring, ring[0])
	return orb.Polygon{ring}
}

// ResultFeatureCollection packs the obstacles and the planned paths as GeoJSON features
func ResultFeatureCollection(env *Environment, result *Result) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for i, obstacle := range env.Obstacles {
		f := geojson.NewFeature(trianglePolygon(obstacle))
		f.Properties["kind"] = "obstacle"
		f.Properties["index"] = i
		fc.Append(f)
	}

	if result != nil {
		raw := geojson.NewFeature(toLineString(result.RawPath))
		raw.Properties["kind"] = "roadmap-path"
		raw.Properties["hops"] = result.Hops
		fc.Append(raw)

		path := geojson.NewFeature(toLineString(result.Path))
		path.Properties["kind"] = "path"
		path.Properties["length"] = result.Length
		fc.Append(path)
	}

	return fc
}

// SaveResultGeoJSON writes the obstacles and paths to a GeoJSON file
func SaveResultGeoJSON(env *Environment, result *Result, filename string) error {
	log.Printf("💾 Saving GeoJSON to %s...\n", filename)

	data, err := ResultFeatureCollection(env, result).MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal GeoJSON: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	log.Printf("   ✅ GeoJSON saved (%d bytes)\n", len(data))
	return nil
}
