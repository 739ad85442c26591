package scoring

import (
	"sort"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

var ErrInvalidProfile = crerr.New("invalid scoring profile")

// Profile maps prop keys to fantasy points per unit of the stat. A Profile is
// immutable once built; use Weight and Props to read it.
type Profile struct {
	name    string
	weights map[string]float64
}

// NewProfile copies weights into a new Profile.
func NewProfile(name string, weights map[string]float64) (Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Profile{}, crerr.Mark(crerr.New("profile name is required"), ErrInvalidProfile)
	}
	if len(weights) == 0 {
		return Profile{}, crerr.Mark(crerr.Newf("profile %s has no weights", name), ErrInvalidProfile)
	}

	copied := make(map[string]float64, len(weights))
	for prop, weight := range weights {
		prop = strings.TrimSpace(prop)
		if prop == "" {
			return Profile{}, crerr.Mark(crerr.Newf("profile %s has an empty prop key", name), ErrInvalidProfile)
		}
		copied[prop] = weight
	}
	return Profile{name: name, weights: copied}, nil
}

// MustProfile is NewProfile for package-level defaults.
func MustProfile(name string, weights map[string]float64) Profile {
	p, err := NewProfile(name, weights)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Profile) Name() string {
	return p.name
}

// Weight returns 0 for props the profile does not score.
func (p Profile) Weight(prop string) float64 {
	return p.weights[prop]
}

// Props returns the scored prop keys sorted by name.
func (p Profile) Props() []string {
	out := make([]string, 0, len(p.weights))
	for prop := range p.weights {
		out = append(out, prop)
	}
	sort.Strings(out)
	return out
}

// ProfileSet is an ordered, duplicate-free list of profiles.
type ProfileSet struct {
	profiles []Profile
}

func NewProfileSet(profiles ...Profile) (ProfileSet, error) {
	if len(profiles) == 0 {
		return ProfileSet{}, crerr.Mark(crerr.New("at least one profile is required"), ErrInvalidProfile)
	}

	seen := make(map[string]struct{}, len(profiles))
	out := make([]Profile, 0, len(profiles))
	for _, p := range profiles {
		if p.name == "" {
			return ProfileSet{}, crerr.Mark(crerr.New("profile is not initialized"), ErrInvalidProfile)
		}
		if _, ok := seen[p.name]; ok {
			return ProfileSet{}, crerr.Mark(crerr.Newf("duplicate profile %s", p.name), ErrInvalidProfile)
		}
		seen[p.name] = struct{}{}
		out = append(out, p)
	}
	return ProfileSet{profiles: out}, nil
}

func MustProfileSet(profiles ...Profile) ProfileSet {
	set, err := NewProfileSet(profiles...)
	if err != nil {
		panic(err)
	}
	return set
}

func (s ProfileSet) Len() int {
	return len(s.profiles)
}

func (s ProfileSet) Profiles() []Profile {
	return append([]Profile(nil), s.profiles...)
}

func (s ProfileSet) Names() []string {
	out := make([]string, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, p.name)
	}
	return out
}

func (s ProfileSet) Lookup(name string) (Profile, bool) {
	for _, p := range s.profiles {
		if p.name == name {
			return p, true
		}
	}
	return Profile{}, false
}
