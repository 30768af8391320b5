package itinerary

import (
	"log"

	"tripdesk/models"
)

// ResolveSelections maps stored option ids back to the option objects a
// multi-select can edit. Ids with no matching option are dropped from the
// result; the record itself is left alone, so an unmatched id only
// disappears from storage if the operator saves again.
func ResolveSelections(ids []string, options []models.Option) []models.Option {
	byValue := make(map[string]models.Option, len(options))
	for _, opt := range options {
		byValue[opt.Value] = opt
	}

	resolved := []models.Option{}
	for _, id := range ids {
		opt, ok := byValue[id]
		if !ok {
			log.Printf("itinerary: selection %q has no matching option, omitting", id)
			continue
		}
		resolved = append(resolved, opt)
	}
	return resolved
}

// SelectionValues flattens option objects back to their stored id list.
func SelectionValues(options []models.Option) []string {
	values := make([]string, 0, len(options))
	for _, opt := range options {
		values = append(values, opt.Value)
	}
	return values
}
