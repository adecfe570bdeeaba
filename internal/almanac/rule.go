package almanac

// Rule is one row of a stage's mapping table. It translates the source
// domain [SrcStart, SrcStart+Length) onto [DestStart, DestStart+Length)
// by adding Offset. Rules are immutable once parsed.
type Rule struct {
	DestStart int64
	SrcStart  int64
	Length    int64
}

// Domain returns the source interval this rule covers.
func (ru Rule) Domain() Range {
	return Range{Lo: ru.SrcStart, Hi: ru.SrcStart + ru.Length}
}

// Offset returns the additive translation applied to values in the domain.
func (ru Rule) Offset() int64 {
	return ru.DestStart - ru.SrcStart
}

// Stage is one named category-to-category mapping table in the pipeline,
// e.g. "seed->soil". Stages are kept as an ordered slice because the
// document order defines the pipeline sequence; rule domains within a
// stage are disjoint (guaranteed by the input, not validated), so rule
// order only matters as a first-match-wins tiebreak.
type Stage struct {
	Name  string
	Rules []Rule
}
