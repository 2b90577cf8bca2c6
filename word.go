package palabras

import "encoding/json"

// PartOfSpeech is the grammatical category of a Block.
type PartOfSpeech string

// Supported parts of speech. Recognized headings without a dedicated
// variant map to PartOfSpeechOther.
const (
	PartOfSpeechVerb      PartOfSpeech = "verb"
	PartOfSpeechNoun      PartOfSpeech = "noun"
	PartOfSpeechAdjective PartOfSpeech = "adjective"
	PartOfSpeechAdverb    PartOfSpeech = "adverb"
	PartOfSpeechPronoun   PartOfSpeech = "pronoun"
	PartOfSpeechOther     PartOfSpeech = "other"
)

// Gender is the grammatical gender printed on a headword line.
type Gender string

// Gender values. The zero value is GenderUnspecified.
const (
	GenderUnspecified Gender = ""
	GenderMasculine   Gender = "m"
	GenderFeminine    Gender = "f"
)

// WordResult is the structured outcome of a successful lookup.
// A WordResult always holds at least one Block; a word without usable
// blocks is reported as an ENOTFOUND error instead.
type WordResult struct {
	Word    string           `json:"word"`
	Blocks  []Block          `json:"blocks"`
	Skipped []SkippedSegment `json:"skipped,omitempty"`
}

// Definitions returns the definitions of all blocks in document order.
func (r *WordResult) Definitions() []Definition {
	var defs []Definition
	for _, b := range r.Blocks {
		defs = append(defs, b.Definitions...)
	}
	return defs
}

// Block is the part of a language section covering one part of speech.
type Block struct {
	PartOfSpeech PartOfSpeech `json:"partOfSpeech"`
	Heading      string       `json:"heading"`
	Headword     Headword     `json:"headword"`
	Definitions  []Definition `json:"definitions"`
}

// Headword is the lemma of a block with its morphological annotations.
type Headword struct {
	Lemma  string `json:"lemma"`
	Gender Gender `json:"gender,omitempty"`
	Forms  Forms  `json:"forms,omitempty"`
}

// Form is one labelled inflected form, e.g. "plural" → "seres".
type Form struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Forms is an insertion-ordered mapping from form label to surface string.
type Forms []Form

// Add appends a form unless the label is already present.
// Reports whether the form was added.
func (f *Forms) Add(label, value string) bool {
	if _, ok := f.Get(label); ok {
		return false
	}
	*f = append(*f, Form{Label: label, Value: value})
	return true
}

// Get returns the form recorded for label.
func (f Forms) Get(label string) (string, bool) {
	for _, form := range f {
		if form.Label == label {
			return form.Value, true
		}
	}
	return "", false
}

// Definition is one sense of a block.
type Definition struct {
	Labels []string `json:"labels"`
	Gloss  string   `json:"gloss"`
}

// SkippedSegment records a part-of-speech segment dropped during extraction.
type SkippedSegment struct {
	Heading string `json:"heading"`
	Err     error  `json:"-"`
}

// MarshalJSON encodes the segment with the code and reason of its error.
func (s SkippedSegment) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Heading string `json:"heading"`
		Code    string `json:"code"`
		Reason  string `json:"reason"`
	}{
		Heading: s.Heading,
		Code:    ErrorCode(s.Err),
		Reason:  s.Reason(),
	})
}

// UnmarshalJSON restores Err as an application error from code and reason.
func (s *SkippedSegment) UnmarshalJSON(data []byte) error {
	var v struct {
		Heading string `json:"heading"`
		Code    string `json:"code"`
		Reason  string `json:"reason"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	s.Heading = v.Heading
	s.Err = nil
	if v.Code != "" {
		s.Err = Errorf(v.Code, "%s", v.Reason)
	}
	return nil
}

// Reason returns the user-facing reason the segment was dropped.
func (s SkippedSegment) Reason() string {
	return ErrorMessage(s.Err)
}
