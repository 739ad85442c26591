package player

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ResolveStatus is the outcome kind of a name resolution.
type ResolveStatus string

const (
	ResolveMatched   ResolveStatus = "matched"
	ResolveNotFound  ResolveStatus = "not_found"
	ResolveFiltered  ResolveStatus = "filtered"
	ResolveAmbiguous ResolveStatus = "ambiguous"
)

// Resolution is the typed result of NameIndex.Resolve. Player is set only
// for ResolveMatched, Candidates only for ResolveAmbiguous and Suggestion
// only for ResolveNotFound when a close name exists.
type Resolution struct {
	Status     ResolveStatus
	Player     Player
	Candidates []Player
	Suggestion string
}

// NameIndex is the loose first phase of player resolution: case-insensitive
// display name to every rostered player carrying that name.
type NameIndex struct {
	byName map[string][]Player
	names  []string
}

func NewNameIndex(players []Player) *NameIndex {
	idx := &NameIndex{byName: make(map[string][]Player, len(players))}
	for _, p := range players {
		key := nameKey(p.Name)
		if key == "" {
			continue
		}
		if _, ok := idx.byName[key]; !ok {
			idx.names = append(idx.names, key)
		}
		p.Team = NormalizeTeam(p.Team)
		idx.byName[key] = append(idx.byName[key], p)
	}
	sort.Strings(idx.names)
	return idx
}

func (idx *NameIndex) Len() int {
	return len(idx.names)
}

// Resolve narrows the players named name to those on one of teams and at one
// of positions. Exactly one survivor is a match; several are ambiguous and
// are never guessed between.
func (idx *NameIndex) Resolve(name string, teams []string, positions []Position) Resolution {
	key := nameKey(name)
	candidates := idx.byName[key]
	if len(candidates) == 0 {
		return Resolution{Status: ResolveNotFound, Suggestion: idx.suggest(key)}
	}

	teamSet := make(map[string]struct{}, len(teams))
	for _, team := range teams {
		teamSet[NormalizeTeam(team)] = struct{}{}
	}
	posSet := make(map[Position]struct{}, len(positions))
	for _, pos := range positions {
		posSet[ParsePosition(string(pos))] = struct{}{}
	}

	var filtered []Player
	for _, c := range candidates {
		if _, ok := teamSet[c.Team]; !ok {
			continue
		}
		if _, ok := posSet[ParsePosition(string(c.Position))]; !ok {
			continue
		}
		filtered = append(filtered, c)
	}

	switch len(filtered) {
	case 0:
		return Resolution{Status: ResolveFiltered}
	case 1:
		return Resolution{Status: ResolveMatched, Player: filtered[0]}
	default:
		return Resolution{Status: ResolveAmbiguous, Candidates: filtered}
	}
}

func (idx *NameIndex) suggest(key string) string {
	if key == "" {
		return ""
	}
	ranks := fuzzy.RankFindNormalizedFold(key, idx.names)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}

	best, bestDistance := "", -1
	for _, candidate := range idx.names {
		d := fuzzy.LevenshteinDistance(key, candidate)
		if bestDistance < 0 || d < bestDistance {
			best, bestDistance = candidate, d
		}
	}
	if bestDistance < 0 || bestDistance > len(key)/3 {
		return ""
	}
	return best
}

func nameKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
