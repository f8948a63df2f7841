package scores

// WeightedScore computes a performance's derived weighted-average score
// from its caption scores. It is computed on demand and never stored.
//
// Operation order matters when weights differ per judge context: for each
// caption, each judge's (comp+perf)/2 is weighted by that row's snapshot
// weight/100, the weighted values are summed, and the sum is divided by
// the number of judges who scored the caption. Sheet-aggregated data has
// one implicit judge per caption and degenerates to a plain weighted sum.
func WeightedScore(captionScores []CaptionScore) float64 {
	var order []string
	byCaption := map[string][]CaptionScore{}
	for _, cs := range captionScores {
		if _, seen := byCaption[cs.Caption]; !seen {
			order = append(order, cs.Caption)
		}
		byCaption[cs.Caption] = append(byCaption[cs.Caption], cs)
	}

	total := 0.0
	for _, caption := range order {
		rows := byCaption[caption]
		sum := 0.0
		for _, cs := range rows {
			sum += (cs.CompScore + cs.PerfScore) / 2 * cs.Weight / 100
		}
		total += sum / float64(len(rows))
	}
	return total
}
