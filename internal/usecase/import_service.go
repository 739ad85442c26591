package usecase

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/frenchfries11234/ff.gg/internal/domain/gameprojection"
	"github.com/frenchfries11234/ff.gg/internal/domain/odds"
	"github.com/frenchfries11234/ff.gg/internal/domain/player"
	"github.com/frenchfries11234/ff.gg/internal/domain/sport"
	"github.com/frenchfries11234/ff.gg/internal/platform/logging"
)

// ImportService attaches odds projections to rostered players and stores them
// per game.
type ImportService struct {
	catalog *sport.Catalog
	source  odds.Source
	players player.Repository
	games   gameprojection.Repository
	logger  *logging.Logger
}

func NewImportService(
	catalog *sport.Catalog,
	source odds.Source,
	players player.Repository,
	games gameprojection.Repository,
	logger *logging.Logger,
) *ImportService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ImportService{
		catalog: catalog,
		source:  source,
		players: players,
		games:   games,
		logger:  logger.Named("import"),
	}
}

type ImportRequest struct {
	Group     string
	Bookmaker string
}

type ImportResult struct {
	Documents  int
	Skipped    []SkippedDocument
	Inserted   int
	Updated    int
	Unresolved int
	Filtered   int
	Ambiguous  int
}

// ImportGroup resolves every (player, prop) estimate of the group's documents
// against the roster and upserts one record per resolved player and game.
// Names that resolve to several players are skipped, never guessed.
func (s *ImportService) ImportGroup(ctx context.Context, req ImportRequest) (_ ImportResult, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ImportGroup", attribute.String("odds.bookmaker", req.Bookmaker))
	defer func() { endUsecaseSpan(span, err) }()

	group, err := s.catalog.Lookup(req.Group)
	if err != nil {
		return ImportResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	positions := group.RosterPositions()
	if len(positions) == 0 {
		return ImportResult{}, fmt.Errorf("%w: group %s has no roster positions", ErrInvalidInput, group.Key())
	}
	span.SetAttributes(attribute.String("projection.group", group.Key()))

	roster, err := s.players.ListByPositions(ctx, positions)
	if err != nil {
		return ImportResult{}, fmt.Errorf("%w: list roster players: %v", ErrDependencyUnavailable, err)
	}
	index := player.NewNameIndex(roster)

	docs, err := s.source.Load(ctx, group.DataDir())
	if err != nil {
		return ImportResult{}, sourceError(group.Key(), err)
	}

	result := ImportResult{Documents: len(docs)}
	for _, raw := range docs {
		doc, commence, err := decodeForImport(group, raw)
		if err != nil {
			s.logger.WarnContext(ctx, "skip odds document", "document", raw.Name, "error", err)
			result.Skipped = append(result.Skipped, SkippedDocument{Name: raw.Name, Err: err})
			continue
		}
		if err := s.importDocument(ctx, group, index, doc.WithBookmaker(req.Bookmaker), commence, &result); err != nil {
			return result, err
		}
	}

	s.logger.InfoContext(ctx, "import finished",
		"group", group.Key(),
		"documents", result.Documents,
		"skipped", len(result.Skipped),
		"inserted", result.Inserted,
		"updated", result.Updated,
		"unresolved", result.Unresolved,
		"filtered", result.Filtered,
		"ambiguous", result.Ambiguous,
	)
	return result, nil
}

func decodeForImport(group sport.Group, raw odds.RawDocument) (odds.Document, time.Time, error) {
	doc, err := odds.Decode(raw.Body)
	if err != nil {
		return odds.Document{}, time.Time{}, err
	}
	if err := doc.ValidateForImport(); err != nil {
		return odds.Document{}, time.Time{}, err
	}
	if err := checkSport(group, doc); err != nil {
		return odds.Document{}, time.Time{}, err
	}
	commence, err := time.Parse(time.RFC3339, doc.CommenceTime)
	if err != nil {
		return odds.Document{}, time.Time{}, fmt.Errorf("parse commence_time %q: %w", doc.CommenceTime, err)
	}
	return doc, commence.UTC(), nil
}

func (s *ImportService) importDocument(
	ctx context.Context,
	group sport.Group,
	index *player.NameIndex,
	doc odds.Document,
	commence time.Time,
	result *ImportResult,
) error {
	home := player.NormalizeTeam(doc.HomeTeam)
	away := player.NormalizeTeam(doc.AwayTeam)
	teams := []string{home, away}
	lines := odds.CollectLines(doc, group.Props())

	projections := make(map[int64]map[string]float64)
	var order []int64
	for _, name := range lines.Players() {
		for _, prop := range group.Props() {
			est := odds.Aggregate(prop, lines.Lines(name, prop))
			if !est.OK {
				continue
			}

			res := index.Resolve(name, teams, group.PositionsFor(prop))
			switch res.Status {
			case player.ResolveMatched:
			case player.ResolveAmbiguous:
				result.Ambiguous++
				s.logger.WarnContext(ctx, "ambiguous player name",
					"player", name,
					"prop", prop,
					"teams", teams,
					"candidates", len(res.Candidates),
				)
				continue
			case player.ResolveFiltered:
				result.Filtered++
				continue
			default:
				result.Unresolved++
				s.logger.DebugContext(ctx, "unresolved player name", "player", name, "prop", prop, "suggestion", res.Suggestion)
				continue
			}

			id := res.Player.ESPNID
			if _, ok := projections[id]; !ok {
				projections[id] = make(map[string]float64)
				order = append(order, id)
			}
			projections[id][prop] = est.Value
		}
	}

	for _, id := range order {
		item := gameprojection.GameProjection{
			PlayerESPNID: id,
			GameID:       doc.ID,
			CommenceTime: commence,
			HomeTeam:     home,
			AwayTeam:     away,
			Projections:  projections[id],
		}
		outcome, err := s.games.UpsertProjections(ctx, item)
		if err != nil {
			return fmt.Errorf("%w: upsert projections player=%d game=%s: %v", ErrDependencyUnavailable, id, doc.ID, err)
		}
		switch outcome {
		case gameprojection.UpsertInserted:
			result.Inserted++
		default:
			result.Updated++
		}
		s.logger.DebugContext(ctx, "game projection stored", "player_espn_id", id, "game_id", doc.ID, "result", string(outcome))
	}
	return nil
}

// ImportRoster stores valid players and reports how many were written.
func (s *ImportService) ImportRoster(ctx context.Context, players []player.Player) (_ int, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ImportRoster", attribute.Int("roster.players", len(players)))
	defer func() { endUsecaseSpan(span, err) }()

	valid := make([]player.Player, 0, len(players))
	for _, p := range players {
		if err := p.Validate(); err != nil {
			s.logger.WarnContext(ctx, "skip roster player", "espn_id", p.ESPNID, "error", err)
			continue
		}
		p.Team = player.NormalizeTeam(p.Team)
		p.Position = player.ParsePosition(string(p.Position))
		valid = append(valid, p)
	}
	if len(valid) == 0 {
		return 0, fmt.Errorf("%w: no valid roster players", ErrInvalidInput)
	}

	if err := s.players.UpsertPlayers(ctx, valid); err != nil {
		return 0, fmt.Errorf("%w: upsert roster players: %v", ErrDependencyUnavailable, err)
	}
	return len(valid), nil
}
