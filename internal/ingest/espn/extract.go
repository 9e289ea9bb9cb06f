package espn

// AliasSet is a group of stat names that mean the same thing.
type AliasSet map[string]struct{}

func NewAliasSet(names ...string) AliasSet {
	s := make(AliasSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func (s AliasSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

var (
	RushingYardsAliases = NewAliasSet("rushingYards", "rushingYardsNet", "teamRushingYards")
	PassingYardsAliases = NewAliasSet("netPassingYards", "passingYards", "teamPassingYards")
)

// ExtractFirst walks root depth first and returns the value of the first
// object whose "name" is in aliases and whose "value" is a number. An object
// is checked before its members; members and array elements are visited in
// document order.
func ExtractFirst(root *Node, aliases AliasSet) (float64, bool) {
	var (
		found float64
		ok    bool
		visit func(n *Node) bool
	)
	visit = func(n *Node) bool {
		if n == nil {
			return false
		}
		switch n.Kind {
		case ObjectNode:
			if name := n.Get("name"); name != nil && name.Kind == StringNode && aliases.Has(name.String) {
				if v, isNum := n.Get("value").Num(); isNum {
					found, ok = v, true
					return true
				}
			}
			for _, m := range n.Members {
				if visit(m.Value) {
					return true
				}
			}
		case ArrayNode:
			for _, item := range n.Items {
				if visit(item) {
					return true
				}
			}
		}
		return false
	}
	visit(root)
	return found, ok
}
