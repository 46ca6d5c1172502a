package noise

import (
	"fmt"
	"math/rand"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Backend names a noise implementation selectable from config.
type Backend string

const (
	BackendLattice Backend = "lattice" // Eight-direction gradient Grid (default)
	BackendPerlin  Backend = "perlin"  // Classic Perlin via aquilax/go-perlin
	BackendSimplex Backend = "simplex" // OpenSimplex via ojrac/opensimplex-go
)

// ParseBackend maps a config string to a Backend. Empty selects the lattice.
func ParseBackend(s string) (Backend, error) {
	switch Backend(s) {
	case "", BackendLattice:
		return BackendLattice, nil
	case BackendPerlin:
		return BackendPerlin, nil
	case BackendSimplex:
		return BackendSimplex, nil
	default:
		return "", fmt.Errorf("noise: unknown backend %q", s)
	}
}

// NewSource builds a seeded source. rows and cols bound the lattice backend;
// the library backends are unbounded and ignore them.
func NewSource(b Backend, rows, cols int, seed int64) (Source, error) {
	switch b {
	case "", BackendLattice:
		g, err := GenerateGradientGrid(rows, cols, rand.New(rand.NewSource(seed)))
		if err != nil {
			return nil, err
		}
		return g, nil
	case BackendPerlin:
		return perlinSource{p: perlin.NewPerlin(2, 2, 3, seed)}, nil
	case BackendSimplex:
		return simplexSource{n: opensimplex.New(seed)}, nil
	default:
		return nil, fmt.Errorf("noise: unknown backend %q", b)
	}
}

type perlinSource struct {
	p *perlin.Perlin
}

func (s perlinSource) Sample(x, y float64) (float64, error) {
	return s.p.Noise2D(x, y), nil
}

type simplexSource struct {
	n opensimplex.Noise
}

func (s simplexSource) Sample(x, y float64) (float64, error) {
	return s.n.Eval2(x, y), nil
}
