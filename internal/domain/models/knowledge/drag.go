package knowledge

import "encoding/json"

// DragPayload describes one grabbed node for the duration of a single
// drag gesture. For directories it carries the full descendant-id set
// (the node itself plus every transitive child) so drop validation is a
// set lookup, not a tree walk. Documents have no descendants and omit
// the set entirely.
type DragPayload struct {
	Kind          NodeKind `json:"kind"`
	ID            int      `json:"id"`
	DescendantIDs []int    `json:"descendant_ids,omitempty"`

	descendantSet map[int]struct{}
}

// NewDragPayload builds a payload with its lookup set populated.
func NewDragPayload(kind NodeKind, id int, descendantIDs []int) *DragPayload {
	p := &DragPayload{Kind: kind, ID: id, DescendantIDs: descendantIDs}
	p.rebuildSet()
	return p
}

// HasDescendant reports whether id is the payload node or one of its
// transitive children.
func (p *DragPayload) HasDescendant(id int) bool {
	if id == p.ID {
		return true
	}
	_, ok := p.descendantSet[id]
	return ok
}

// UnmarshalJSON restores the lookup set after decoding a transferred
// payload.
func (p *DragPayload) UnmarshalJSON(data []byte) error {
	type alias DragPayload
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*p = DragPayload(a)
	p.rebuildSet()
	return nil
}

func (p *DragPayload) rebuildSet() {
	p.descendantSet = make(map[int]struct{}, len(p.DescendantIDs))
	for _, id := range p.DescendantIDs {
		p.descendantSet[id] = struct{}{}
	}
}
