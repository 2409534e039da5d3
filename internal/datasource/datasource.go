// Package datasource produces the records shown in the grid.
package datasource

import (
	"iter"
	"slices"

	"gridfilter/internal/config"
	"gridfilter/internal/domain"
)

// Source names reported in RecordsLoadedEvent
const (
	SourceSeed   = "seed"
	SourceConfig = "config"
)

var seed = [...]domain.Record{
	{Field1: "Full Mode A", Field2: "defgh"},
	{Field1: "5", Field2: "hijkl"},
	{Field1: "5", Field2: "mnopq"},
	{Field1: "mnopq", Field2: "2"},
	{Field1: "Diag Mode B Init @ Umin", Field2: "5"},
	{Field1: "Part Mode A", Field2: "2"},
	{Field1: "Full Mode A", Field2: "5"},
	{Field1: "5", Field2: "Part Mode B"},
	{Field1: "2", Field2: "Full Mode A - Init@Unom"},
	{Field1: "2", Field2: "Part Mode B- Diag Int @ Umin"},
	{Field1: "Part Mode prop2", Field2: "2"},
	{Field1: "Full Mode A - Init@Unom prop2", Field2: "5"},
	{Field1: "Part Mode B- Diag Int @ Umi prop2n", Field2: "5"},
}

// Seed yields the built-in demo records. Every range over the returned
// sequence produces the same records in the same order.
func Seed() iter.Seq[domain.Record] {
	return func(yield func(domain.Record) bool) {
		for _, r := range seed {
			if !yield(r) {
				return
			}
		}
	}
}

// FromEntries yields records declared in the config file
func FromEntries(entries []config.RecordEntry) iter.Seq[domain.Record] {
	return func(yield func(domain.Record) bool) {
		for _, e := range entries {
			if !yield(domain.Record{Field1: e.Field1, Field2: e.Field2}) {
				return
			}
		}
	}
}

// Load collects the records to display and names where they came from.
// Config records win over the seed when any are present.
func Load(cfg *config.Config) ([]domain.Record, string) {
	if cfg != nil && len(cfg.Records) > 0 {
		return slices.Collect(FromEntries(cfg.Records)), SourceConfig
	}
	return slices.Collect(Seed()), SourceSeed
}
