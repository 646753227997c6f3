package models

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taigrr/scanline/pkg/math3d"
)

// LoadOBJ loads a Wavefront OBJ file. See ParseOBJ.
func LoadOBJ(path string, base Color) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()

	mesh, err := ParseOBJ(f, base)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	mesh.Name = filepath.Base(path)
	return mesh, nil
}

// ParseOBJ reads v, vt and f records. Faces with more than three corners
// are fanned from their first corner. The common "v x y z r g b" vertex
// color extension is honored; other records are ignored.
func ParseOBJ(r io.Reader, base Color) (*Mesh, error) {
	var (
		positions []math3d.Vec3
		colors    []Color
		uvs       []math3d.Vec2
		tris      []Triangle
	)

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			nums, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", line, err)
			}
			positions = append(positions, math3d.V3(nums[0], nums[1], nums[2]))
			c := base
			if len(nums) >= 6 {
				c = Color{clampChannel(nums[3] * 255), clampChannel(nums[4] * 255), clampChannel(nums[5] * 255)}
			}
			colors = append(colors, c)

		case "vt":
			nums, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("line %d: texcoord: %w", line, err)
			}
			uvs = append(uvs, math3d.V2(nums[0], nums[1]))

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 corners", line)
			}
			corners := make([]Vertex, 0, len(fields)-1)
			for _, ref := range fields[1:] {
				v, err := objCorner(ref, positions, colors, uvs)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				corners = append(corners, v)
			}
			for i := 1; i+1 < len(corners); i++ {
				tris = append(tris, Tri(corners[0], corners[i], corners[i+1]))
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return NewMesh("obj", tris), nil
}

// parseFloats parses every field, requiring at least want of them.
func parseFloats(fields []string, want int) ([]float64, error) {
	if len(fields) < want {
		return nil, fmt.Errorf("want %d numbers, got %d", want, len(fields))
	}
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// objCorner resolves a "v", "v/vt", "v//vn" or "v/vt/vn" reference.
func objCorner(ref string, positions []math3d.Vec3, colors []Color, uvs []math3d.Vec2) (Vertex, error) {
	parts := strings.Split(ref, "/")

	pi, err := objIndex(parts[0], len(positions))
	if err != nil {
		return Vertex{}, fmt.Errorf("position %q: %w", ref, err)
	}
	v := Vertex{Position: positions[pi], Color: colors[pi]}

	if len(parts) > 1 && parts[1] != "" {
		ti, err := objIndex(parts[1], len(uvs))
		if err != nil {
			return Vertex{}, fmt.Errorf("texcoord %q: %w", ref, err)
		}
		v.UV = uvs[ti]
		v.HasUV = true
	}
	return v, nil
}

// objIndex converts a 1-based (or negative, relative) OBJ index.
func objIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if i < 0 {
		i += n
	} else {
		i--
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("index out of range (%d elements)", n)
	}
	return i, nil
}
