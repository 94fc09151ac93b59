// Package layout builds the draw order for a canvas's elements from their
// linkedTo anchors, and tracks each rendered element's resolved position
// and measured height for later elements to anchor against.
package layout

import (
	"fmt"

	"deepprint/internal/schema"
)

// CycleError reports a linkedTo cycle discovered during the topological
// sort. It is fatal at render start.
type CycleError struct {
	ElementID string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("layout: circular linkedTo dependency at element %q", e.ElementID)
}

// color marks a node's visitation state during the depth-first sort.
type color int

const (
	white color = iota
	grey
	black
)

// Sort returns elements in an order where every element's linkedTo target
// (if any, and if it resolves to a known id) appears before it. Ties are
// broken by declared canvas order: elements are visited in that order, and
// within a visit the element's single dependency is emitted first. An
// element whose linkedTo references an unknown id is treated as unlinked
// (absolute positioning) rather than erroring.
func Sort(elements []schema.Element) ([]schema.Element, error) {
	byID := make(map[string]*schema.Element, len(elements))
	for i := range elements {
		byID[elements[i].ID] = &elements[i]
	}

	state := make(map[string]color, len(elements))
	result := make([]schema.Element, 0, len(elements))

	var visit func(el *schema.Element) error
	visit = func(el *schema.Element) error {
		switch state[el.ID] {
		case black:
			return nil
		case grey:
			return &CycleError{ElementID: el.ID}
		}
		state[el.ID] = grey

		if el.LinkedTo != nil {
			if target, ok := byID[*el.LinkedTo]; ok {
				if err := visit(target); err != nil {
					return err
				}
			}
		}

		state[el.ID] = black
		result = append(result, *el)
		return nil
	}

	for i := range elements {
		if state[elements[i].ID] == white {
			if err := visit(&elements[i]); err != nil {
				return nil, err
			}
		}
	}

	return result, nil
}

// Entry is a rendered element's resolved top-left Y coordinate and the
// height it actually measured to, which may exceed its declared h for
// auto-sizing elements.
type Entry struct {
	Y      float64
	Height float64
}

// Cache maps element id to its resolved (y, height). It is write-once per
// element per render and is created fresh for each Render call — no
// process-wide state.
type Cache struct {
	entries map[string]Entry
}

// NewCache returns an empty layout cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]Entry)}
}

// Store records an element's resolved position after it has been drawn.
func (c *Cache) Store(id string, entry Entry) {
	c.entries[id] = entry
}

// Lookup returns a previously stored entry for id, if any.
func (c *Cache) Lookup(id string) (Entry, bool) {
	e, ok := c.entries[id]
	return e, ok
}

// ResolveY computes an element's actual top-left Y coordinate: flush below
// its linkedTo anchor's measured bottom plus its own y as a gap, or its
// declared y from the canvas top if unlinked (including when linkedTo
// references an id absent from the cache — unknown-anchor elements are
// positioned absolutely, never erroring).
func (c *Cache) ResolveY(el schema.Element) float64 {
	if el.LinkedTo != nil {
		if target, ok := c.Lookup(*el.LinkedTo); ok {
			return target.Y + target.Height + el.Y
		}
	}
	return el.Y
}
