package palabras

// Section is the part of a page that belongs to one language.
type Section struct {
	Language string
	Level    int
	Nodes    []Node
}

// LocateSection finds the heading titled language and returns the nodes
// that follow it, up to the next heading of equal or higher level or the
// end of the document. The title must match exactly.
// Returns ESECTION if no such heading exists.
func LocateSection(root Node, language string) (*Section, error) {
	siblings, idx, ok := findHeading(root, language)
	if !ok {
		return nil, Errorf(ESECTION, "no %s section on page", language)
	}

	level := siblings[idx].HeadingLevel()
	return &Section{
		Language: language,
		Level:    level,
		Nodes:    siblingsUntil(flattenHeadings(siblings[idx+1:]), level),
	}, nil
}

// findHeading searches depth-first, in document order, for a heading
// titled text. It returns the heading's siblings and its index among them.
func findHeading(n Node, text string) ([]Node, int, bool) {
	children := n.Children()
	for i, child := range children {
		if child.HeadingLevel() > 0 {
			if child.HeadingText() == text {
				return children, i, true
			}
			continue
		}
		if siblings, idx, ok := findHeading(child, text); ok {
			return siblings, idx, true
		}
	}
	return nil, 0, false
}

// siblingsUntil returns nodes up to the first heading at level or above.
func siblingsUntil(nodes []Node, level int) []Node {
	for i, n := range nodes {
		if l := n.HeadingLevel(); l > 0 && l <= level {
			return nodes[:i]
		}
	}
	return nodes
}

// flattenHeadings replaces every non-heading node that has a heading among
// its descendants with its children, recursively. An unclosed list makes
// the parser nest all following headings inside it; flattening lifts them
// back to the level where they close and open sections and segments.
func flattenHeadings(nodes []Node) []Node {
	flat := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if n.HeadingLevel() == 0 && containsHeading(n) {
			flat = append(flat, flattenHeadings(n.Children())...)
			continue
		}
		flat = append(flat, n)
	}
	return flat
}

func containsHeading(n Node) bool {
	for _, child := range n.Children() {
		if child.HeadingLevel() > 0 || containsHeading(child) {
			return true
		}
	}
	return false
}
