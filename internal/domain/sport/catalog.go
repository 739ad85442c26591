package sport

import (
	"sort"
	"strings"

	crerr "github.com/cockroachdb/errors"

	"github.com/frenchfries11234/ff.gg/internal/domain/player"
	"github.com/frenchfries11234/ff.gg/internal/domain/scoring"
)

var ErrUnknownGroup = crerr.New("unknown sport group")

// Group is one projection slate definition: which prop keys make up the stat
// vector, where its odds documents live and how it is scored.
type Group struct {
	key             string
	sportKey        string
	dataDir         string
	props           []string
	prefixes        []string
	profiles        scoring.ProfileSet
	positionsByProp map[string][]player.Position
}

type GroupConfig struct {
	Key      string
	SportKey string
	// DataDir is relative to the odds data root.
	DataDir  string
	Props    []string
	Prefixes []string
	Profiles scoring.ProfileSet
	// PositionsByProp lists the roster positions allowed for each prop. Leave
	// nil for groups that are never resolved against a roster.
	PositionsByProp map[string][]player.Position
}

func NewGroup(cfg GroupConfig) (Group, error) {
	key := strings.TrimSpace(cfg.Key)
	if key == "" {
		return Group{}, crerr.New("group key is required")
	}
	if len(cfg.Props) == 0 {
		return Group{}, crerr.Newf("group %s has no props", key)
	}
	if cfg.Profiles.Len() == 0 {
		return Group{}, crerr.Newf("group %s has no scoring profiles", key)
	}

	seen := make(map[string]struct{}, len(cfg.Props))
	for _, prop := range cfg.Props {
		if _, ok := seen[prop]; ok {
			return Group{}, crerr.Newf("group %s lists prop %s twice", key, prop)
		}
		seen[prop] = struct{}{}
	}

	positions := make(map[string][]player.Position, len(cfg.PositionsByProp))
	for prop, allowed := range cfg.PositionsByProp {
		if _, ok := seen[prop]; !ok {
			return Group{}, crerr.Newf("group %s maps positions for unknown prop %s", key, prop)
		}
		positions[prop] = append([]player.Position(nil), allowed...)
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = key
	}

	return Group{
		key:             key,
		sportKey:        cfg.SportKey,
		dataDir:         dataDir,
		props:           append([]string(nil), cfg.Props...),
		prefixes:        append([]string(nil), cfg.Prefixes...),
		profiles:        cfg.Profiles,
		positionsByProp: positions,
	}, nil
}

func (g Group) Key() string      { return g.key }
func (g Group) SportKey() string { return g.sportKey }
func (g Group) DataDir() string  { return g.dataDir }

// MatchesSport reports whether a document tagged with sportKey belongs to the
// group. Untagged documents always match.
func (g Group) MatchesSport(sportKey string) bool {
	sportKey = strings.TrimSpace(sportKey)
	return sportKey == "" || g.sportKey == "" || strings.EqualFold(sportKey, g.sportKey)
}

func (g Group) Props() []string {
	return append([]string(nil), g.props...)
}

func (g Group) Prefixes() []string {
	return append([]string(nil), g.prefixes...)
}

func (g Group) Profiles() scoring.ProfileSet {
	return g.profiles
}

// PositionsFor returns the positions allowed for prop, or nil when the group
// has no roster mapping for it.
func (g Group) PositionsFor(prop string) []player.Position {
	return append([]player.Position(nil), g.positionsByProp[prop]...)
}

// RosterPositions is the union of every position the group resolves against,
// sorted.
func (g Group) RosterPositions() []player.Position {
	set := make(map[player.Position]struct{})
	for _, allowed := range g.positionsByProp {
		for _, pos := range allowed {
			set[pos] = struct{}{}
		}
	}
	out := make([]player.Position, 0, len(set))
	for pos := range set {
		out = append(out, pos)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Catalog is an immutable set of groups keyed by Group.Key.
type Catalog struct {
	groups map[string]Group
	order  []string
}

func NewCatalog(groups ...Group) (*Catalog, error) {
	c := &Catalog{groups: make(map[string]Group, len(groups))}
	for _, g := range groups {
		if g.key == "" {
			return nil, crerr.New("group is not initialized")
		}
		if _, exists := c.groups[g.key]; exists {
			return nil, crerr.Newf("group %s is already registered", g.key)
		}
		c.groups[g.key] = g
		c.order = append(c.order, g.key)
	}
	return c, nil
}

// Lookup returns the group for key, marked ErrUnknownGroup when absent.
func (c *Catalog) Lookup(key string) (Group, error) {
	g, ok := c.groups[strings.TrimSpace(key)]
	if !ok {
		return Group{}, crerr.Mark(crerr.Newf("group %q (known: %s)", key, strings.Join(c.order, ", ")), ErrUnknownGroup)
	}
	return g, nil
}

// Keys returns group keys in registration order.
func (c *Catalog) Keys() []string {
	return append([]string(nil), c.order...)
}
