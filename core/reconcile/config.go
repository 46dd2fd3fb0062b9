package reconcile

// Config holds the comparison defaults loaded from configuration.
type Config struct {
	// Format selects the report output (text or json).
	Format string `mapstructure:"format" default:"text"`
	// ShowOnlyRight reports keys found only in dataset 2.
	ShowOnlyRight bool `mapstructure:"show_only_right" default:"true"`
	// StrictKeys turns a repeated primary key into an error instead of last-write-wins.
	StrictKeys bool `mapstructure:"strict_keys" default:"false"`
	// Sequential indexes the two datasets one after the other.
	Sequential bool `mapstructure:"sequential" default:"false"`
}

// Options returns the pipeline options derived from the configuration.
func (c Config) Options() Options {
	return Options{
		StrictKeys: c.StrictKeys,
		Sequential: c.Sequential,
	}
}
