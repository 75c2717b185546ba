package export

// RunCounters tracks the files seen and updated during an export run,
// per category for the locale in progress and in total across locales.
type RunCounters struct {
	localeSeen    map[string]int
	localeUpdated map[string]int
	localeFiles   int
	localeChanged int
	totalFiles    int
	totalChanged  int
}

// NewRunCounters returns zeroed counters.
func NewRunCounters() *RunCounters {
	return &RunCounters{
		localeSeen:    make(map[string]int),
		localeUpdated: make(map[string]int),
	}
}

// BeginLocale resets the per-locale counters. Run totals persist.
func (c *RunCounters) BeginLocale() {
	c.localeSeen = make(map[string]int)
	c.localeUpdated = make(map[string]int)
	c.localeFiles = 0
	c.localeChanged = 0
}

// CountFile records one generated file under a category.
func (c *RunCounters) CountFile(category string, updated bool) {
	c.localeSeen[category]++
	c.localeFiles++
	c.totalFiles++
	if updated {
		c.localeUpdated[category]++
		c.localeChanged++
		c.totalChanged++
	}
}

// LocaleFiles returns the number of files generated for the locale in
// progress.
func (c *RunCounters) LocaleFiles() int { return c.localeFiles }

// LocaleUpdated returns the number of files whose content changed for
// the locale in progress.
func (c *RunCounters) LocaleUpdated() int { return c.localeChanged }

// LocaleCategoryFiles returns the per-category file count for the
// locale in progress.
func (c *RunCounters) LocaleCategoryFiles(category string) int {
	return c.localeSeen[category]
}

// LocaleCategoryUpdated returns the per-category update count for the
// locale in progress.
func (c *RunCounters) LocaleCategoryUpdated(category string) int {
	return c.localeUpdated[category]
}

// TotalFiles returns the file count across all locales.
func (c *RunCounters) TotalFiles() int { return c.totalFiles }

// TotalUpdated returns the update count across all locales.
func (c *RunCounters) TotalUpdated() int { return c.totalChanged }
