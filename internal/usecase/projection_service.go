package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc/iter"
	"go.opentelemetry.io/otel/attribute"

	"github.com/frenchfries11234/ff.gg/internal/domain/odds"
	"github.com/frenchfries11234/ff.gg/internal/domain/projection"
	"github.com/frenchfries11234/ff.gg/internal/domain/sport"
	"github.com/frenchfries11234/ff.gg/internal/platform/logging"
)

type ProjectionService struct {
	catalog *sport.Catalog
	source  odds.Source
	workers int
	logger  *logging.Logger
}

func NewProjectionService(catalog *sport.Catalog, source odds.Source, workers int, logger *logging.Logger) *ProjectionService {
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &ProjectionService{
		catalog: catalog,
		source:  source,
		workers: workers,
		logger:  logger.Named("projection"),
	}
}

type SlateRequest struct {
	Group string
	// Bookmaker restricts quotes to one book; empty keeps every book.
	Bookmaker string
}

// SkippedDocument is a document that contributed no rows.
type SkippedDocument struct {
	Name string
	Err  error
}

type Slate struct {
	Group    sport.Group
	Header   []string
	Rows     []projection.ResultRow
	Skipped  []SkippedDocument
	Excluded []string
	Fills    []projection.ColumnFill
}

// BuildSlate loads every document of the group's directory and turns it into
// scored rows.
func (s *ProjectionService) BuildSlate(ctx context.Context, req SlateRequest) (_ Slate, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProjectionService.BuildSlate", attribute.String("odds.bookmaker", req.Bookmaker))
	defer func() { endUsecaseSpan(span, err) }()

	group, err := s.lookupGroup(req.Group)
	if err != nil {
		return Slate{}, err
	}
	span.SetAttributes(attribute.String("projection.group", group.Key()))

	docs, err := s.source.Load(ctx, group.DataDir())
	if err != nil {
		return Slate{}, sourceError(group.Key(), err)
	}

	return s.buildSlate(ctx, group, docs, req.Bookmaker), nil
}

// BuildFromDocuments is BuildSlate over documents the caller already holds.
func (s *ProjectionService) BuildFromDocuments(ctx context.Context, req SlateRequest, docs []odds.RawDocument) (_ Slate, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProjectionService.BuildFromDocuments", attribute.Int("odds.documents", len(docs)))
	defer func() { endUsecaseSpan(span, err) }()

	group, err := s.lookupGroup(req.Group)
	if err != nil {
		return Slate{}, err
	}
	return s.buildSlate(ctx, group, docs, req.Bookmaker), nil
}

func (s *ProjectionService) lookupGroup(key string) (sport.Group, error) {
	if strings.TrimSpace(key) == "" {
		return sport.Group{}, fmt.Errorf("%w: sport group is required", ErrInvalidInput)
	}
	group, err := s.catalog.Lookup(key)
	if err != nil {
		return sport.Group{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return group, nil
}

type decodedDocument struct {
	name string
	doc  odds.Document
	err  error
}

// decodeDocuments decodes concurrently and keeps the input order.
func (s *ProjectionService) decodeDocuments(docs []odds.RawDocument) []decodedDocument {
	mapper := iter.Mapper[odds.RawDocument, decodedDocument]{MaxGoroutines: s.workers}
	return mapper.Map(docs, func(raw *odds.RawDocument) decodedDocument {
		doc, err := odds.Decode(raw.Body)
		return decodedDocument{name: raw.Name, doc: doc, err: err}
	})
}

func (s *ProjectionService) buildSlate(ctx context.Context, group sport.Group, docs []odds.RawDocument, bookmaker string) Slate {
	props := group.Props()
	profiles := group.Profiles()
	slate := Slate{
		Group:  group,
		Header: projection.TableHeader(props, group.Prefixes(), profiles.Names()),
	}

	var batch []projection.RawRow
	for _, decoded := range s.decodeDocuments(docs) {
		err := decoded.err
		if err == nil {
			err = checkSport(group, decoded.doc)
		}
		if err != nil {
			s.logger.WarnContext(ctx, "skip odds document", "document", decoded.name, "error", err)
			slate.Skipped = append(slate.Skipped, SkippedDocument{Name: decoded.name, Err: err})
			continue
		}
		batch = append(batch, collectRawRows(decoded.doc.WithBookmaker(bookmaker), props)...)
	}

	// Imputation needs the whole batch, so it runs only after every document
	// has been collected.
	imputed := projection.Impute(batch, len(props))
	for _, row := range imputed.Excluded {
		s.logger.InfoContext(ctx, "exclude player with missing props",
			"player", row.Name,
			"game", row.Game,
			"missing", row.Missing(),
		)
		slate.Excluded = append(slate.Excluded, row.Name)
	}
	slate.Fills = imputed.Fills
	slate.Rows = projection.Score(imputed.Rows, props, profiles)

	s.logger.DebugContext(ctx, "slate built",
		"group", group.Key(),
		"documents", len(docs),
		"skipped", len(slate.Skipped),
		"rows", len(slate.Rows),
		"excluded", len(slate.Excluded),
	)
	return slate
}

// checkSport rejects a document whose sport_key names another sport than the
// group's, e.g. an NFL file dropped into the MLB directory.
func checkSport(group sport.Group, doc odds.Document) error {
	if group.MatchesSport(doc.SportKey) {
		return nil
	}
	return fmt.Errorf("%w: document sport %q does not match group sport %q", ErrInvalidInput, doc.SportKey, group.SportKey())
}

func collectRawRows(doc odds.Document, props []string) []projection.RawRow {
	lines := odds.CollectLines(doc, props)
	game := doc.GameLabel()

	out := make([]projection.RawRow, 0, lines.Len())
	for _, name := range lines.Players() {
		out = append(out, projection.RawRow{
			Name:  name,
			Game:  game,
			Stats: lines.Estimate(name, props),
		})
	}
	return out
}
