package palabras

import "strings"

// FormatDefinition renders a definition as "(label, label) gloss",
// or just the gloss when it has no labels.
func FormatDefinition(d Definition) string {
	if len(d.Labels) == 0 {
		return d.Gloss
	}
	return "(" + strings.Join(d.Labels, ", ") + ") " + d.Gloss
}

// FormatHeadword renders a headword line, e.g. "ser m (plural seres)".
func FormatHeadword(h Headword) string {
	var b strings.Builder
	b.WriteString(h.Lemma)
	if h.Gender != GenderUnspecified {
		b.WriteString(" ")
		b.WriteString(string(h.Gender))
	}
	if len(h.Forms) > 0 {
		forms := make([]string, 0, len(h.Forms))
		for _, f := range h.Forms {
			forms = append(forms, f.Label+" "+f.Value)
		}
		b.WriteString(" (")
		b.WriteString(strings.Join(forms, ", "))
		b.WriteString(")")
	}
	return b.String()
}

// FormatFull renders every block under its heading and headword line.
// Blocks are separated by blank lines.
func FormatFull(r *WordResult) string {
	if r == nil || len(r.Blocks) == 0 {
		return ""
	}

	parts := make([]string, 0, len(r.Blocks))
	for _, block := range r.Blocks {
		lines := []string{block.Heading + ": " + FormatHeadword(block.Headword)}
		lines = append(lines, bulletList(block.Definitions)...)
		parts = append(parts, strings.Join(lines, "\n"))
	}
	return strings.Join(parts, "\n\n")
}

// FormatCompact renders the word followed by all definitions, one per line.
func FormatCompact(r *WordResult) string {
	if r == nil {
		return ""
	}
	lines := append([]string{r.Word}, bulletList(r.Definitions())...)
	return strings.Join(lines, "\n")
}

func bulletList(defs []Definition) []string {
	lines := make([]string, 0, len(defs))
	for _, d := range defs {
		lines = append(lines, "- "+FormatDefinition(d))
	}
	return lines
}
