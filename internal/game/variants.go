package game

import "github.com/vovakirdan/worldofbits/internal/registry"

// DefaultVariant is the variant used when none is selected.
const DefaultVariant = "classic"

func init() {
	registry.Register("classic", func() registry.Variant {
		return registry.Variant{
			Name:               "classic",
			Title:              "Wide reach, values 2 to 8",
			NeighborhoodRadius: 8,
			ValueExponentRange: 3,
		}
	})
	registry.Register("cozy", func() registry.Variant {
		return registry.Variant{
			Name:               "cozy",
			Title:              "Short reach, only 2s and 4s",
			NeighborhoodRadius: 4,
			ValueExponentRange: 2,
		}
	})
	registry.Register("roomy", func() registry.Variant {
		return registry.Variant{
			Name:               "roomy",
			Title:              "Reach includes the edge, values up to 16",
			NeighborhoodRadius: 6,
			InclusiveBoundary:  true,
			ValueExponentRange: 4,
		}
	})
	registry.Register("generous", func() registry.Variant {
		return registry.Variant{
			Name:               "generous",
			Title:              "Wide reach, values up to 1024",
			NeighborhoodRadius: 8,
			InclusiveBoundary:  true,
			ValueExponentRange: 10,
		}
	})
}
