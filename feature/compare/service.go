package compare

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tablediff/core/dataset"
	"tablediff/core/reconcile"
	"tablediff/core/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidRequest means a request lacks a source or key columns.
var ErrInvalidRequest = errors.New("invalid request")

// Request compares two dataset locations.
type Request struct {
	Source1     string   `json:"source1" example:"s3://exports/2024-01-01/people.csv"`
	Source2     string   `json:"source2" example:"db://people"`
	PrimaryKeys []string `json:"primary_keys" example:"id"`
	// OnlyRight and StrictKeys override the configured defaults when set.
	OnlyRight  *bool `json:"only_right,omitempty"`
	StrictKeys *bool `json:"strict_keys,omitempty"`
	// Refresh reloads both locations instead of using cached datasets.
	Refresh bool `json:"refresh,omitempty"`
}

// Upload compares two in-memory datasets. Names select the format
// (".xlsx" with an optional "#Sheet", CSV otherwise).
type Upload struct {
	Name1       string
	Data1       io.Reader
	Name2       string
	Data2       io.Reader
	PrimaryKeys []string
	OnlyRight   *bool
	StrictKeys  *bool
}

// Response is the comparison report.
type Response struct {
	Source1     string   `json:"source1"`
	Source2     string   `json:"source2"`
	PrimaryKeys []string `json:"primary_keys"`
	// Equal is true when no discrepancy was found.
	Equal bool `json:"equal"`
	*reconcile.DiffResult
}

// Service runs comparisons.
type Service struct {
	opener   *dataset.Opener
	cache    *dataset.Cache
	defaults reconcile.Config
	dataDir  string
	logger   *zap.Logger
}

// NewService creates a new compare service. Local paths are only read from
// dataDir; an empty dataDir allows s3:// and db:// locations only.
func NewService(opener *dataset.Opener, cache *dataset.Cache, defaults reconcile.Config, dataDir string, logger *zap.Logger) *Service {
	return &Service{
		opener:   opener,
		cache:    cache,
		defaults: defaults,
		dataDir:  dataDir,
		logger:   logger,
	}
}

// Compare loads both locations and reconciles them.
func (s *Service) Compare(ctx context.Context, req Request) (*Response, error) {
	keys := utils.SplitList(req.PrimaryKeys)
	if req.Source1 == "" || req.Source2 == "" {
		return nil, fmt.Errorf("%w: source1 and source2 are required", ErrInvalidRequest)
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: primary_keys is required", ErrInvalidRequest)
	}

	source1, err := resolveLocation(s.dataDir, req.Source1)
	if err != nil {
		return nil, err
	}
	source2, err := resolveLocation(s.dataDir, req.Source2)
	if err != nil {
		return nil, err
	}

	if req.Refresh {
		s.cache.Invalidate(source1)
		s.cache.Invalidate(source2)
	}

	var left, right *dataset.Dataset
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		left, err = s.load(gctx, source1)
		return err
	})
	g.Go(func() error {
		var err error
		right, err = s.load(gctx, source2)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return s.run(ctx, left, right, keys, req.OnlyRight, req.StrictKeys)
}

// CompareUpload parses both uploads and reconciles them. Uploads bypass the cache.
func (s *Service) CompareUpload(ctx context.Context, up Upload) (*Response, error) {
	keys := utils.SplitList(up.PrimaryKeys)
	if up.Data1 == nil || up.Data2 == nil {
		return nil, fmt.Errorf("%w: source1 and source2 files are required", ErrInvalidRequest)
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: primary_keys is required", ErrInvalidRequest)
	}

	left, err := dataset.Read(up.Name1, up.Data1)
	if err != nil {
		return nil, err
	}
	right, err := dataset.Read(up.Name2, up.Data2)
	if err != nil {
		return nil, err
	}

	return s.run(ctx, left, right, keys, up.OnlyRight, up.StrictKeys)
}

func (s *Service) load(ctx context.Context, location string) (*dataset.Dataset, error) {
	return s.cache.GetOrLoad(ctx, location, func(ctx context.Context) (*dataset.Dataset, error) {
		s.logger.Debug("Loading dataset", zap.String("location", location), zap.Int("cached", s.cache.Len()))
		return s.opener.Load(ctx, location)
	})
}

func (s *Service) run(ctx context.Context, left, right *dataset.Dataset, keys []string, onlyRight, strictKeys *bool) (*Response, error) {
	cfg := s.defaults
	if onlyRight != nil {
		cfg.ShowOnlyRight = *onlyRight
	}
	if strictKeys != nil {
		cfg.StrictKeys = *strictKeys
	}

	result, err := reconcile.Compare(ctx, left, right, keys, cfg.Options())
	if err != nil {
		return nil, err
	}

	// Hidden keys still count in the summary
	if !cfg.ShowOnlyRight {
		result.OnlyRight = []reconcile.KeyTuple{}
	}

	s.logger.Info("Comparison finished",
		zap.String("source1", left.Name),
		zap.String("source2", right.Name),
		zap.Strings("primary_keys", keys),
		zap.Int("only_left", result.Summary.OnlyLeft),
		zap.Int("only_right", result.Summary.OnlyRight),
		zap.Int("mismatches", result.Summary.Mismatches),
	)

	return &Response{
		Source1:     left.Name,
		Source2:     right.Name,
		PrimaryKeys: keys,
		Equal:       result.Equal(),
		DiffResult:  result,
	}, nil
}
