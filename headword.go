package palabras

import "strings"

// ParseHeadword parses the headword line of a segment: the first paragraph
// before the definition list that contains bold text. The first bold run
// is the lemma; the rest of the line is parsed by ParseHeadwordLine.
// Returns EHEADWORD if the segment has no such line.
func ParseHeadword(seg Segment) (Headword, error) {
	line, bold := headwordLine(seg.Nodes)
	if line == nil {
		return Headword{}, Errorf(EHEADWORD, "no headword line under %s heading", seg.Heading)
	}

	lemma := normalizeSpace(bold.Text())
	if lemma == "" {
		return Headword{}, Errorf(EHEADWORD, "empty headword under %s heading", seg.Heading)
	}

	text := normalizeSpace(line.Text())
	rest := ""
	if i := strings.Index(text, lemma); i >= 0 {
		rest = text[i+len(lemma):]
	}

	return ParseHeadwordLine(lemma, rest), nil
}

// headwordLine returns the headword paragraph and its first bold node.
// Paragraphs after the first ordered list are not considered.
func headwordLine(nodes []Node) (line, bold Node) {
	for _, n := range nodes {
		switch n.Tag() {
		case "ol":
			return nil, nil
		case "p":
			if b := firstBold(n); b != nil {
				return n, b
			}
		}
	}
	return nil, nil
}

func firstBold(n Node) Node {
	for _, child := range n.Children() {
		if tag := child.Tag(); tag == "strong" || tag == "b" {
			return child
		}
		if b := firstBold(child); b != nil {
			return b
		}
	}
	return nil
}

// ParseHeadwordLine builds a Headword from a lemma and the text that
// follows it on the headword line, e.g. "m (plural seres)".
//
// The first gender marker (m, f, or both) sets the gender. Each
// comma-separated clause of the parenthetical is read as "<label> <form>",
// where the form is the trailing word run (as many words as the lemma has)
// and the label everything before it. For reflexive lemmas ("darse cuenta")
// a clitic pronoun before that run belongs to the form ("me doy cuenta").
// Clauses that do not have that shape are ignored.
func ParseHeadwordLine(lemma, rest string) Headword {
	hw := Headword{Lemma: lemma}

	rest = normalizeSpace(rest)
	outside, inside := rest, ""
	if open := strings.IndexByte(rest, '('); open >= 0 {
		outside = rest[:open]
		if end := closingParen(rest, open); end >= 0 {
			inside = rest[open+1 : end]
		} else {
			inside = rest[open+1:]
		}
	}

	hw.Gender = parseGender(outside + " " + inside)

	lemmaWords := strings.Fields(lemma)
	reflexive := len(lemmaWords) > 0 && strings.HasSuffix(lemmaWords[0], "rse")
	for _, clause := range splitTopLevel(inside) {
		if label, form, ok := parseFormClause(clause, len(lemmaWords), reflexive); ok {
			hw.Forms.Add(label, form)
		}
	}

	return hw
}

// parseGender returns the gender of the first marker token in s.
// "m" and "f" together ("m, f", "m or f", "mf") leave the gender unspecified.
func parseGender(s string) Gender {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '(' || r == ')'
	})

	for i, tok := range tokens {
		switch tok {
		case "mf":
			return GenderUnspecified
		case "m", "f":
			next := ""
			for _, t := range tokens[i+1:] {
				if t != "or" {
					next = t
					break
				}
			}
			if (tok == "m" && next == "f") || (tok == "f" && next == "m") {
				return GenderUnspecified
			}
			if tok == "m" {
				return GenderMasculine
			}
			return GenderFeminine
		}
	}
	return GenderUnspecified
}

// reflexiveClitics are the pronouns that lead the forms of reflexive verbs.
var reflexiveClitics = map[string]bool{
	"me": true, "te": true, "se": true, "nos": true, "os": true,
}

// parseFormClause splits a clause such as "first-person singular present soy"
// into its label and trailing form of formWords words.
func parseFormClause(clause string, formWords int, reflexive bool) (label, form string, ok bool) {
	tokens := strings.Fields(stripParentheticals(clause))

	// "plural seres or seris" keeps the first alternative.
	for i, tok := range tokens {
		if tok == "or" && i > formWords {
			tokens = tokens[:i]
			break
		}
	}

	if formWords < 1 {
		formWords = 1
	}
	if len(tokens) <= formWords || tokens[0] == "no" {
		return "", "", false
	}

	if reflexive && len(tokens) > formWords+1 && reflexiveClitics[tokens[len(tokens)-formWords-1]] {
		formWords++
	}

	labelTokens := tokens[:len(tokens)-formWords]
	if last := labelTokens[len(labelTokens)-1]; last == "and" || last == "or" {
		return "", "", false
	}

	return strings.Join(labelTokens, " "), strings.Join(tokens[len(tokens)-formWords:], " "), true
}
