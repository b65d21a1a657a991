package pipeline

// Schedule groups translation units into engine-efficient batches. Units
// sharing a source-target language pair are batched together, capped at
// maxBatch; within a group, membership order follows cell read order so
// results stay deterministic. Batching exists purely for inference
// throughput and has no effect on the correctness contract.
func Schedule(units []TranslationUnit, maxBatch int) [][]TranslationUnit {
	if maxBatch < 1 {
		maxBatch = 1
	}

	type pair struct{ source, target string }
	groups := make(map[pair][]TranslationUnit)
	var order []pair

	for _, unit := range units {
		key := pair{unit.Source, unit.Target}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], unit)
	}

	var batches [][]TranslationUnit
	for _, key := range order {
		group := groups[key]
		for start := 0; start < len(group); start += maxBatch {
			end := start + maxBatch
			if end > len(group) {
				end = len(group)
			}
			batches = append(batches, group[start:end:end])
		}
	}
	return batches
}
