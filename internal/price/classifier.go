package price

import (
	"context"
	"fmt"
	"pricerelay/internal/domain"
)

// Route pairs a category predicate with the fetch that serves it.
type Route struct {
	Category domain.Category
	Match    func(ctx context.Context, base string) bool
	Fetch    func(ctx context.Context, pair domain.AssetPair) (domain.PriceRecord, error)
}

// Classifier picks the first route whose predicate accepts the base symbol.
// Route order is the category priority.
type Classifier struct {
	routes []Route
}

func (c *Classifier) Classify(ctx context.Context, base string) (Route, error) {
	for _, r := range c.routes {
		if r.Match(ctx, base) {
			return r, nil
		}
	}
	return Route{}, domain.UnsupportedAsset(fmt.Sprintf("unsupported asset: %s", base))
}

// Categories lists the categories in priority order.
func (c *Classifier) Categories() []domain.Category {
	out := make([]domain.Category, 0, len(c.routes))
	for _, r := range c.routes {
		out = append(out, r.Category)
	}
	return out
}

func NewClassifier(routes ...Route) *Classifier {
	return &Classifier{routes: routes}
}
