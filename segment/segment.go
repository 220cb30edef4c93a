package segment

import (
	"log/slog"

	"github.com/edulab/atividades/activity"
	"github.com/edulab/atividades/metadata"
)

// Strategy is one segmentation approach. TrySegment reports whether the
// strategy applies; a strategy that applies but finds nothing returns an
// empty map and true only when it positively determined there are no
// sections — returning false hands over to the next strategy.
type Strategy interface {
	Name() string
	TrySegment(rawText, richHTML string) (*activity.SectionMap, bool)
}

// Segmenter runs the strategy cascade. Strategies are tried in strict
// order and the first one yielding at least one section short-circuits
// the rest — results are never blended.
type Segmenter struct {
	strategies []Strategy
	logger     *slog.Logger
}

// New creates a Segmenter with the default strategy order: divider-icon
// detection over rich HTML, content fingerprints over text, delimiter
// splitting with keyword scoring, then generic heading detection.
func New(logger *slog.Logger) *Segmenter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Segmenter{
		strategies: []Strategy{
			&dividerStrategy{},
			&fingerprintStrategy{},
			&delimiterStrategy{},
			&headingStrategy{},
		},
		logger: logger,
	}
}

// NewWithStrategies creates a Segmenter with a custom cascade, mostly
// for testing strategies in isolation.
func NewWithStrategies(logger *slog.Logger, strategies ...Strategy) *Segmenter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Segmenter{strategies: strategies, logger: logger}
}

// Segment partitions the document body into named sections. An empty
// SectionMap is a valid outcome, not an error. Deadlines are extracted
// independently of which strategy ran and always injected.
func (s *Segmenter) Segment(rawText, richHTML string) *activity.SectionMap {
	result := activity.NewSectionMap()

	for _, strat := range s.strategies {
		sm, ok := strat.TrySegment(rawText, richHTML)
		if !ok || sm == nil || sm.Len() == 0 {
			continue
		}
		s.logger.Debug("segmentation strategy selected",
			"strategy", strat.Name(), "sections", sm.Len())
		result = sm
		break
	}

	if result.Len() == 0 {
		s.logger.Debug("no sections identified")
	}

	result.Prazos = metadata.ExtractPrazos(rawText)
	return result
}
