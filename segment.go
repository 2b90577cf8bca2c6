package palabras

import "strings"

// Segment is the markup span under one part-of-speech heading.
type Segment struct {
	Heading      string
	PartOfSpeech PartOfSpeech
	Level        int
	Nodes        []Node
}

// partOfSpeechHeadings lists the heading titles that start a segment.
var partOfSpeechHeadings = map[string]PartOfSpeech{
	"Verb":                 PartOfSpeechVerb,
	"Noun":                 PartOfSpeechNoun,
	"Adjective":            PartOfSpeechAdjective,
	"Adverb":               PartOfSpeechAdverb,
	"Pronoun":              PartOfSpeechPronoun,
	"Proper noun":          PartOfSpeechOther,
	"Article":              PartOfSpeechOther,
	"Determiner":           PartOfSpeechOther,
	"Preposition":          PartOfSpeechOther,
	"Prepositional phrase": PartOfSpeechOther,
	"Conjunction":          PartOfSpeechOther,
	"Interjection":         PartOfSpeechOther,
	"Numeral":              PartOfSpeechOther,
	"Participle":           PartOfSpeechOther,
	"Contraction":          PartOfSpeechOther,
	"Prefix":               PartOfSpeechOther,
	"Suffix":               PartOfSpeechOther,
	"Phrase":               PartOfSpeechOther,
	"Proverb":              PartOfSpeechOther,
	"Letter":               PartOfSpeechOther,
	"Particle":             PartOfSpeechOther,
}

// PartOfSpeechForHeading maps a heading title to its part of speech.
// Reports false for headings that do not introduce a part-of-speech block,
// such as "Etymology" or "Pronunciation".
func PartOfSpeechForHeading(title string) (PartOfSpeech, bool) {
	pos, ok := partOfSpeechHeadings[strings.TrimSpace(title)]
	return pos, ok
}

// openHeading is an entry of the heading stack used by SegmentSection.
// segment is the index of the segment the heading started, or -1.
type openHeading struct {
	level   int
	segment int
}

// SegmentSection splits a language section into part-of-speech segments
// in document order. A segment extends to the next heading of equal or
// higher level; deeper headings and their content stay in the segment.
// Headings nested inside other nodes, as left by unclosed list markup,
// are treated as if they were siblings.
// Returns an empty slice if the section has no recognized heading.
func SegmentSection(section *Section) []Segment {
	var segments []Segment
	var stack []openHeading

	for _, n := range flattenHeadings(section.Nodes) {
		if level := n.HeadingLevel(); level > 0 {
			for len(stack) > 0 && stack[len(stack)-1].level >= level {
				stack = stack[:len(stack)-1]
			}

			open := openHeading{level: level, segment: -1}
			if pos, ok := PartOfSpeechForHeading(n.HeadingText()); ok {
				segments = append(segments, Segment{
					Heading:      strings.TrimSpace(n.HeadingText()),
					PartOfSpeech: pos,
					Level:        level,
				})
				open.segment = len(segments) - 1
			}
			stack = append(stack, open)

			if open.segment >= 0 {
				continue
			}
		}

		if i := innermostSegment(stack); i >= 0 {
			segments[i].Nodes = append(segments[i].Nodes, n)
		}
	}

	return segments
}

func innermostSegment(stack []openHeading) int {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].segment >= 0 {
			return stack[i].segment
		}
	}
	return -1
}
