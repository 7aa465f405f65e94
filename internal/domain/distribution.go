package domain

import (
	"fmt"
	"sort"
)

type DistributionEntry struct {
	Key         string
	DisplayName string
	Category    Category
	Count       int
}

// Distribution counts surviving incidents per "name [category]" key and remembers the order in
// which keys were first seen.
type Distribution struct {
	index   map[string]int
	entries []DistributionEntry
}

func NewDistribution() *Distribution {
	return &Distribution{index: map[string]int{}}
}

func DistributionKey(displayName string, category Category) string {
	return fmt.Sprintf("%s [%d]", displayName, category)
}

func (d *Distribution) Increment(displayName string, category Category) {
	key := DistributionKey(displayName, category)
	if i, ok := d.index[key]; ok {
		d.entries[i].Count++
		return
	}

	d.index[key] = len(d.entries)
	d.entries = append(d.entries, DistributionEntry{
		Key:         key,
		DisplayName: displayName,
		Category:    category,
		Count:       1,
	})
}

func (d *Distribution) Count(key string) int {
	if d == nil {
		return 0
	}
	i, ok := d.index[key]
	if !ok {
		return 0
	}
	return d.entries[i].Count
}

func (d *Distribution) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

func (d *Distribution) Total() int {
	if d == nil {
		return 0
	}
	total := 0
	for _, entry := range d.entries {
		total += entry.Count
	}
	return total
}

// Entries returns the counters in first-insertion order.
func (d *Distribution) Entries() []DistributionEntry {
	if d == nil {
		return nil
	}
	out := make([]DistributionEntry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Counts returns the key -> count mapping.
func (d *Distribution) Counts() map[string]int {
	out := make(map[string]int, d.Len())
	for _, entry := range d.Entries() {
		out[entry.Key] = entry.Count
	}
	return out
}

// Ranked returns the counters by descending count; equal counts keep first-insertion order.
func (d *Distribution) Ranked() []DistributionEntry {
	return RankEntries(d.Entries())
}

func RankEntries(entries []DistributionEntry) []DistributionEntry {
	ranked := make([]DistributionEntry, len(entries))
	copy(ranked, entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}
