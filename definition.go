package palabras

import "strings"

// ParseDefinitions parses the senses of a segment from its first ordered
// list. Only top-level list items become definitions; nested lists with
// examples and quotations are ignored. Items without a gloss are dropped.
// Returns EDEFINITION if the segment has no list or no usable item.
func ParseDefinitions(seg Segment) ([]Definition, error) {
	list := firstOrderedList(seg.Nodes)
	if list == nil {
		return nil, Errorf(EDEFINITION, "no definition list under %s heading", seg.Heading)
	}

	var defs []Definition
	for _, item := range list.Children() {
		if item.Tag() != "li" {
			continue
		}
		if def, ok := ParseDefinitionItem(itemText(item)); ok {
			defs = append(defs, def)
		}
	}

	if len(defs) == 0 {
		return nil, Errorf(EDEFINITION, "no usable definitions under %s heading", seg.Heading)
	}
	return defs, nil
}

func firstOrderedList(nodes []Node) Node {
	for _, n := range nodes {
		if n.Tag() == "ol" {
			return n
		}
	}
	return nil
}

// itemText returns the text of a list item without its nested lists
// and headings.
func itemText(item Node) string {
	var b strings.Builder
	for _, child := range item.Children() {
		if child.HeadingLevel() > 0 {
			continue
		}
		switch child.Tag() {
		case "ul", "ol", "dl", "style", "script":
			continue
		}
		b.WriteString(child.Text())
	}
	return b.String()
}

// ParseDefinitionItem splits the text of one list item into usage labels
// and gloss. Leading parentheticals, such as "(reflexive, intransitive)",
// hold the labels; the remaining text is the gloss. Reports false if the
// gloss is empty, in which case the item is not a usable sense.
func ParseDefinitionItem(text string) (Definition, bool) {
	text = normalizeSpace(text)
	labels := []string{}

	for strings.HasPrefix(text, "(") {
		end := closingParen(text, 0)
		if end < 0 {
			break
		}
		for _, label := range splitTopLevel(text[1:end]) {
			if label = strings.TrimSpace(label); label != "" {
				labels = append(labels, label)
			}
		}
		text = strings.TrimSpace(text[end+1:])
	}

	if text == "" {
		return Definition{}, false
	}
	return Definition{Labels: labels, Gloss: text}, true
}
