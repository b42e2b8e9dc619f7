package server

import (
	"sync"

	"github.com/iwvelando/supervision-roi/internal/roi"
)

// Pricing holds the price table served to requests. It is safe for
// concurrent use and can be swapped while the server is running.
type Pricing struct {
	mu    sync.RWMutex
	table roi.PriceTable
}

// NewPricing returns a Pricing store seeded with table overlaid on the
// default prices.
func NewPricing(table roi.PriceTable) *Pricing {
	return &Pricing{table: table.Merge()}
}

// Get returns a copy of the current price table.
func (p *Pricing) Get() roi.PriceTable {
	p.mu.RLock()
	defer p.mu.RUnlock()

	table := make(roi.PriceTable, len(p.table))
	for plan, price := range p.table {
		table[plan] = price
	}
	return table
}

// Set replaces the current price table, filling unset plans from the
// defaults.
func (p *Pricing) Set(table roi.PriceTable) {
	merged := table.Merge()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.table = merged
}
