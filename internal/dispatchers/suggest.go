package dispatchers

import (
	"cmp"
	"slices"
	"strings"
)

// maxSuggestionDistance is the largest edit distance still worth suggesting.
const maxSuggestionDistance = 3

// levenshtein returns the case-insensitive edit distance between a and b.
func levenshtein(a, b string) int {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))

	// prev and curr are consecutive rows of the edit matrix.
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

// FindSimilarNames returns up to maxResults names close to the input,
// nearest first, ties in name order. Exact matches and names more than
// three edits away are never suggested. The result is never nil.
func FindSimilarNames(input string, names []string, maxResults int) []string {
	type candidate struct {
		name     string
		distance int
	}

	var candidates []candidate
	for _, name := range names {
		if d := levenshtein(input, name); d > 0 && d <= maxSuggestionDistance {
			candidates = append(candidates, candidate{name, d})
		}
	}

	slices.SortFunc(candidates, func(x, y candidate) int {
		return cmp.Or(cmp.Compare(x.distance, y.distance), strings.Compare(x.name, y.name))
	})

	result := make([]string, 0, min(len(candidates), max(maxResults, 0)))
	for _, c := range candidates {
		if len(result) >= maxResults {
			break
		}
		result = append(result, c.name)
	}
	return result
}

// CollectCommands walks the handler tree and returns every routed command
// path, as typed: prefixes are glued to what follows, names are followed
// by a space. Handlers that are not tables end the walk.
func CollectCommands[S any](h Handler[S], prefix string) []string {
	t, ok := h.(*Table[S])
	if !ok {
		return nil
	}

	var commands []string

	for _, r := range t.routes {
		if r.kind == routeFallback {
			continue
		}
		path := prefix + r.literal
		commands = append(commands, path)

		next := path
		if r.kind == routeName {
			next += " "
		}
		commands = append(commands, CollectCommands(r.handler, next)...)
	}

	return commands
}
