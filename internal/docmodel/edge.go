package docmodel

// EdgeKind classifies the relationship an Edge represents.
type EdgeKind int

const (
	EdgeFollows EdgeKind = iota
	EdgeContains
)

func (k EdgeKind) String() string {
	switch k {
	case EdgeFollows:
		return "follows"
	case EdgeContains:
		return "contains"
	}
	return "unknown"
}

// Edge is a directed relationship between two blocks' positions.
type Edge struct {
	SourceIdx int
	TargetIdx int
	Kind      EdgeKind
}

// Follows builds a sequential edge from src to dst.
func Follows(src, dst int) Edge {
	return Edge{SourceIdx: src, TargetIdx: dst, Kind: EdgeFollows}
}

// Contains builds a containment edge from src to dst.
func Contains(src, dst int) Edge {
	return Edge{SourceIdx: src, TargetIdx: dst, Kind: EdgeContains}
}
