package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"tablediff/core/config"
	"tablediff/core/database"
	"tablediff/core/dataset"
	"tablediff/core/logger"
	"tablediff/core/reconcile"
	"tablediff/core/report"
	"tablediff/core/storage"
	"tablediff/core/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type compareFlags struct {
	source1     string
	source2     string
	primaryKeys []string
	format      string
	onlyRight   bool
	strictKeys  bool
	sequential  bool
	configPath  string
}

var compareOpts compareFlags

// compareCmd compares two datasets and prints the discrepancies.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare two datasets by primary key",
	Long: `Compare two datasets that share the same columns and report:
  - keys only present in dataset 1
  - keys only present in dataset 2
  - keys present in both whose values differ

Dataset locations:
  people.csv            CSV file with a header row
  book.xlsx#Sheet2      spreadsheet sheet (first sheet when omitted)
  s3://bucket/key.csv   object storage (STORAGE_* settings)
  db://table            database table (DATABASE_* settings)

The command exits non-zero when a dataset cannot be read or the schemas
do not line up. Discrepancies alone are not an error.

Examples:
  tablediff compare --source1 a.csv --source2 b.csv --primarykeys id
  tablediff compare --source1 s3://exports/people.csv --source2 db://people --primarykeys id --format json
  tablediff compare --source1 a.csv --source2 b.csv --primarykeys order,line --strict-keys`,
	RunE: runCompare,
}

func init() {
	f := compareCmd.Flags()
	f.StringVar(&compareOpts.source1, "source1", "", "Location of dataset 1")
	f.StringVar(&compareOpts.source2, "source2", "", "Location of dataset 2")
	f.StringSliceVar(&compareOpts.primaryKeys, "primarykeys", nil, "Primary key columns (comma separated or repeated)")
	f.StringVar(&compareOpts.format, "format", "", "Report format: text or json (default from COMPARE_FORMAT)")
	f.BoolVar(&compareOpts.onlyRight, "only-right", true, "Report keys only present in dataset 2")
	f.BoolVar(&compareOpts.strictKeys, "strict-keys", false, "Fail when a primary key repeats within a dataset")
	f.BoolVar(&compareOpts.sequential, "sequential", false, "Index the datasets one after the other")
	f.StringVar(&compareOpts.configPath, "config", ".", "Directory holding the .env file")

	_ = compareCmd.MarkFlagRequired("source1")
	_ = compareCmd.MarkFlagRequired("source2")
	_ = compareCmd.MarkFlagRequired("primarykeys")

	RootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(compareOpts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyCompareFlags(cmd, &cfg.Compare)

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	opener, err := openBackends(cfg, l, compareOpts.source1, compareOpts.source2)
	if err != nil {
		return err
	}

	return runComparison(cmd.Context(), opener, cfg.Compare, compareOpts, cmd.OutOrStdout(), l)
}

// applyCompareFlags lets explicit flags win over configuration.
func applyCompareFlags(cmd *cobra.Command, cfg *reconcile.Config) {
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = compareOpts.format
	}
	if flags.Changed("only-right") {
		cfg.ShowOnlyRight = compareOpts.onlyRight
	}
	if flags.Changed("strict-keys") {
		cfg.StrictKeys = compareOpts.strictKeys
	}
	if flags.Changed("sequential") {
		cfg.Sequential = compareOpts.sequential
	}
}

// openBackends connects only to the backends the locations need.
func openBackends(cfg *config.Config, l *zap.Logger, locations ...string) (*dataset.Opener, error) {
	opener := &dataset.Opener{}

	for _, loc := range locations {
		switch {
		case strings.HasPrefix(loc, "s3://") && opener.Storage == nil:
			client, err := storage.NewClient(cfg.Storage)
			if err != nil {
				return nil, fmt.Errorf("failed to create storage client: %w", err)
			}
			opener.Storage = client
			l.Debug("Storage client ready", zap.String("endpoint", cfg.Storage.Endpoint))

		case strings.HasPrefix(loc, "db://") && opener.DB == nil:
			db, err := database.Connect(cfg.Database)
			if err != nil {
				return nil, fmt.Errorf("failed to connect to database: %w", err)
			}
			opener.DB = db
			l.Debug("Database connected", zap.String("driver", cfg.Database.Driver))
		}
	}

	return opener, nil
}

// runComparison loads both datasets, reconciles them and writes the report to out.
func runComparison(ctx context.Context, opener *dataset.Opener, cfg reconcile.Config, flags compareFlags, out io.Writer, l *zap.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}

	writer, err := report.New(cfg.Format, out, report.Options{ShowOnlyRight: cfg.ShowOnlyRight})
	if err != nil {
		return err
	}

	keys := utils.SplitList(flags.primaryKeys)

	var left, right *dataset.Dataset
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		left, err = opener.Load(gctx, flags.source1)
		return err
	})
	g.Go(func() error {
		var err error
		right, err = opener.Load(gctx, flags.source2)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	l.Debug("Datasets loaded",
		zap.String("source1", left.Name),
		zap.Int("rows1", len(left.Rows)),
		zap.String("source2", right.Name),
		zap.Int("rows2", len(right.Rows)),
	)

	result, err := reconcile.Compare(ctx, left, right, keys, cfg.Options())
	if err != nil {
		return err
	}

	if result.Summary.LeftDuplicates > 0 || result.Summary.RightDuplicates > 0 {
		l.Warn("Duplicate primary keys, later rows replaced earlier ones",
			zap.Int("dataset1", result.Summary.LeftDuplicates),
			zap.Int("dataset2", result.Summary.RightDuplicates),
		)
	}

	if err := writer.Write(result); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	l.Info("Comparison finished",
		zap.Int("only_left", result.Summary.OnlyLeft),
		zap.Int("only_right", result.Summary.OnlyRight),
		zap.Int("mismatches", result.Summary.Mismatches),
		zap.Int("matched", result.Summary.Matched),
	)

	return nil
}
