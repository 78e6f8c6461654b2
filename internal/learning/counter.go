package learning

import (
	"math"
	"sort"
)

// TagCount pairs a tag with its frequency. Rankings are most frequent
// first; ties resolve to the tag seen earliest.
type TagCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// counter tallies string keys while remembering first-seen order.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// top returns the n most frequent keys, ties in first-seen order.
func (c *counter) top(n int) []TagCount {
	ranked := make([]TagCount, 0, len(c.order))
	for _, key := range c.order {
		ranked = append(ranked, TagCount{Name: key, Count: c.counts[key]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// round1 rounds to one decimal place; every accuracy percentage in the
// analysis output is stored this way.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
