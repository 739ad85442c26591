package odds

import "strings"

// LinePrices holds the quoted prices for one player/prop/line triple.
type LinePrices struct {
	Line       float64
	OverPrice  float64
	UnderPrice float64
	HasOver    bool
	HasUnder   bool
}

// Complete reports whether both sides were quoted for the line.
func (l LinePrices) Complete() bool {
	return l.HasOver && l.HasUnder
}

type propLines struct {
	order []float64
	byLn  map[float64]*LinePrices
}

type playerLines struct {
	props map[string]*propLines
}

// PlayerPropLines maps player name -> prop key -> line -> prices. Players and
// lines keep the order in which they first appeared in the document.
type PlayerPropLines struct {
	order   []string
	players map[string]*playerLines
}

// CollectLines walks every bookmaker and market of doc and gathers the quotes
// for the requested prop keys. Markets outside props are ignored, as are
// outcomes without a player name, line or price. When the same
// player/prop/line/side is quoted more than once the last quote wins.
func CollectLines(doc Document, props []string) PlayerPropLines {
	wanted := make(map[string]struct{}, len(props))
	for _, prop := range props {
		wanted[prop] = struct{}{}
	}

	out := PlayerPropLines{players: make(map[string]*playerLines)}
	for _, book := range doc.Bookmakers {
		for _, market := range book.Markets {
			if _, ok := wanted[market.Key]; !ok {
				continue
			}
			for _, outcome := range market.Outcomes {
				name := strings.TrimSpace(outcome.Description)
				if name == "" || !outcome.Point.Valid || !outcome.Price.Valid {
					continue
				}
				out.set(name, market.Key, outcome.Point.Value, ClassifySide(outcome.Name), outcome.Price.Value)
			}
		}
	}
	return out
}

func (p *PlayerPropLines) set(name, prop string, line float64, side Side, price float64) {
	player, ok := p.players[name]
	if !ok {
		player = &playerLines{props: make(map[string]*propLines)}
		p.players[name] = player
		p.order = append(p.order, name)
	}

	group, ok := player.props[prop]
	if !ok {
		group = &propLines{byLn: make(map[float64]*LinePrices)}
		player.props[prop] = group
	}

	prices, ok := group.byLn[line]
	if !ok {
		prices = &LinePrices{Line: line}
		group.byLn[line] = prices
		group.order = append(group.order, line)
	}

	switch side {
	case SideOver:
		prices.OverPrice = price
		prices.HasOver = true
	default:
		prices.UnderPrice = price
		prices.HasUnder = true
	}
}

// Players returns player names in first-seen order.
func (p PlayerPropLines) Players() []string {
	return append([]string(nil), p.order...)
}

func (p PlayerPropLines) Len() int {
	return len(p.order)
}

// Lines returns the quoted lines of one player and prop in first-seen order.
func (p PlayerPropLines) Lines(player, prop string) []LinePrices {
	entry, ok := p.players[player]
	if !ok {
		return nil
	}
	group, ok := entry.props[prop]
	if !ok {
		return nil
	}
	out := make([]LinePrices, 0, len(group.order))
	for _, line := range group.order {
		out = append(out, *group.byLn[line])
	}
	return out
}
