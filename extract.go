package palabras

// Extract assembles the entries of the language section of a parsed page.
//
// Segments whose headword or definitions cannot be parsed are dropped and
// recorded in WordResult.Skipped; the remaining segments are still used.
// Returns ENOTFOUND if the section is missing, has no part-of-speech
// heading, or every segment was dropped. No other error is returned.
//
// The Word of the result is the lemma of the first block; callers that
// know the queried word may overwrite it.
func Extract(root Node, language string) (*WordResult, error) {
	section, err := LocateSection(root, language)
	if err != nil {
		return nil, Errorf(ENOTFOUND, "No %s entry found from Wiktionary page", language)
	}

	segments := SegmentSection(section)
	if len(segments) == 0 {
		return nil, Errorf(ENOTFOUND, "No %s entry found from Wiktionary page", language)
	}

	result := &WordResult{}
	for _, seg := range segments {
		block, err := assembleBlock(seg)
		if err != nil {
			result.Skipped = append(result.Skipped, SkippedSegment{Heading: seg.Heading, Err: err})
			continue
		}
		result.Blocks = append(result.Blocks, block)
	}

	if len(result.Blocks) == 0 {
		return nil, Errorf(ENOTFOUND, "No usable %s entry found from Wiktionary page (%d sections skipped)", language, len(result.Skipped))
	}

	result.Word = result.Blocks[0].Headword.Lemma
	return result, nil
}

func assembleBlock(seg Segment) (Block, error) {
	headword, err := ParseHeadword(seg)
	if err != nil {
		return Block{}, err
	}

	defs, err := ParseDefinitions(seg)
	if err != nil {
		return Block{}, err
	}

	return Block{
		PartOfSpeech: seg.PartOfSpeech,
		Heading:      seg.Heading,
		Headword:     headword,
		Definitions:  defs,
	}, nil
}
