package quiz

// Pick draws one id uniformly from candidates, skipping every id in excluded. intn must return a
// value in [0, n). ok is false when nothing is left to draw, which ends the quiz.
func Pick(candidates, excluded []int32, intn func(n int) int) (id int32, ok bool) {
	seen := make(map[int32]struct{}, len(excluded))
	for _, e := range excluded {
		seen[e] = struct{}{}
	}

	remaining := make([]int32, 0, len(candidates))
	for _, c := range candidates {
		if _, skip := seen[c]; !skip {
			remaining = append(remaining, c)
		}
	}
	if len(remaining) == 0 {
		return 0, false
	}
	return remaining[intn(len(remaining))], true
}
