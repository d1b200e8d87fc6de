package tile

// RoadMaterial is the surface carried by one quarter of a road tile.
type RoadMaterial uint8

const (
	RoadNone RoadMaterial = iota
	RoadGravel
)

// String returns the string representation of a road material.
func (m RoadMaterial) String() string {
	switch m {
	case RoadNone:
		return "None"
	case RoadGravel:
		return "Gravel"
	default:
		return "Unknown"
	}
}

// ParseRoadMaterial converts a material name back into a RoadMaterial.
func ParseRoadMaterial(s string) (RoadMaterial, bool) {
	switch s {
	case "None":
		return RoadNone, true
	case "Gravel":
		return RoadGravel, true
	}
	return 0, false
}

// Quarters holds one road material per compass direction, indexed by
// Direction4.
type Quarters [4]RoadMaterial

// Empty reports whether no quarter carries material.
func (q Quarters) Empty() bool {
	return q == Quarters{}
}

// Get returns the material of the quarter facing d.
func (q Quarters) Get(d Direction4) RoadMaterial {
	return q[d.Index()]
}

// With returns a copy of q with the quarter facing d set to m.
func (q Quarters) With(d Direction4, m RoadMaterial) Quarters {
	q[d.Index()] = m
	return q
}

// Merge fills the empty quarters of q from other. Quarters that already
// carry material are kept: the first write wins.
func (q Quarters) Merge(other Quarters) Quarters {
	for i := range q {
		if q[i] == RoadNone {
			q[i] = other[i]
		}
	}
	return q
}

// CoverKind tags the variant held by a Cover.
type CoverKind uint8

const (
	CoverNone CoverKind = iota
	CoverTree
	CoverTestBuilding
	CoverRoad
)

// String returns the string representation of a cover kind.
func (k CoverKind) String() string {
	switch k {
	case CoverNone:
		return "None"
	case CoverTree:
		return "Tree"
	case CoverTestBuilding:
		return "TestBuilding"
	case CoverRoad:
		return "Road"
	default:
		return "Unknown"
	}
}

// Cover is whatever occupies a tile on top of its ground. It is a closed
// union: Kind selects the variant and Quarters is only meaningful for roads.
// The zero value is the empty cover.
type Cover struct {
	Kind     CoverKind
	Quarters Quarters
}

// Predefined covers.
var (
	NoCover      = Cover{Kind: CoverNone}
	Tree         = Cover{Kind: CoverTree}
	TestBuilding = Cover{Kind: CoverTestBuilding}
)

// Road returns a road cover with the given quarters.
func Road(q Quarters) Cover {
	return Cover{Kind: CoverRoad, Quarters: q}
}

// IsNone reports whether the cover is empty.
func (c Cover) IsNone() bool {
	return c.Kind == CoverNone
}

// IsRoad reports whether the cover is a road, regardless of its quarters.
func (c Cover) IsRoad() bool {
	return c.Kind == CoverRoad
}

// CanGoOnGround reports whether the cover may occupy a tile with the given
// ground. Road legality does not depend on which quarters are filled.
func (c Cover) CanGoOnGround(g Ground) bool {
	switch c.Kind {
	case CoverNone:
		return true
	case CoverTree:
		return g.IsLand() && g.IsFertile()
	case CoverTestBuilding:
		return g.IsLand()
	case CoverRoad:
		return g.IsLand()
	default:
		return false
	}
}

// String returns the string representation of a cover.
func (c Cover) String() string {
	if c.Kind != CoverRoad {
		return c.Kind.String()
	}
	s := "Road["
	for i, m := range c.Quarters {
		if i > 0 {
			s += " "
		}
		s += Dir4(i).String()[:1] + ":" + m.String()
	}
	return s + "]"
}

// ParseCover converts a non-road cover name into a Cover. Roads are built
// through road tools and are not parsed.
func ParseCover(s string) (Cover, bool) {
	switch s {
	case "None":
		return NoCover, true
	case "Tree":
		return Tree, true
	case "TestBuilding":
		return TestBuilding, true
	}
	return Cover{}, false
}
