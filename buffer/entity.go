package buffer

import "strconv"

// EntityKey references an entry in a Document's entity table.
// The zero value means "no entity".
type EntityKey string

// Mutability describes how an entity reacts to edits of its text. The
// buffer records it but never enforces it; that is up to the caller.
type Mutability uint8

const (
	Mutable Mutability = iota
	Immutable
	Segmented
)

func (m Mutability) String() string {
	switch m {
	case Mutable:
		return "MUTABLE"
	case Immutable:
		return "IMMUTABLE"
	case Segmented:
		return "SEGMENTED"
	default:
		return "UNKNOWN"
	}
}

// Entity is a typed annotation attached to a run of characters.
type Entity struct {
	Type       string
	Mutability Mutability
	Data       map[string]string
}

func (e Entity) clone() Entity {
	if len(e.Data) == 0 {
		e.Data = nil
		return e
	}
	data := make(map[string]string, len(e.Data))
	for k, v := range e.Data {
		data[k] = v
	}
	e.Data = data
	return e
}

// Entity returns the entity stored under key.
func (d Document) Entity(key EntityKey) (Entity, bool) {
	if key == "" || d.entities == nil {
		return Entity{}, false
	}
	e, ok := d.entities[key]
	if !ok {
		return Entity{}, false
	}
	return e.clone(), true
}

// CreateEntity returns a copy of d whose entity table holds one more entity,
// and the key of that entity. Keys are minted sequentially from d's counter,
// so they are unique within one document. Sibling documents, such as the one
// restored by undo and then edited again, may mint the same key; each
// resolves it against its own table.
func (d Document) CreateEntity(typ string, mut Mutability, data map[string]string) (Document, EntityKey) {
	next := d.lastEntity + 1
	key := EntityKey(strconv.Itoa(next))

	entities := make(map[EntityKey]Entity, len(d.entities)+1)
	for k, v := range d.entities {
		entities[k] = v
	}
	entities[key] = Entity{Type: typ, Mutability: mut, Data: data}.clone()

	d.entities = entities
	d.lastEntity = next
	return d, key
}

// LastCreatedEntityKey returns the key minted by the most recent CreateEntity
// call in this document's lineage, or "" when none was created.
func (d Document) LastCreatedEntityKey() EntityKey {
	if d.lastEntity == 0 {
		return ""
	}
	return EntityKey(strconv.Itoa(d.lastEntity))
}

// EntityRangeAt returns the maximal run of characters in row that share the
// entity key of the character at col. ok is false when that character has no
// entity or col is out of range.
func (d Document) EntityRangeAt(row, col int) (start, end int, key EntityKey, ok bool) {
	blk := d.Block(row)
	if col < 0 || col >= blk.Len() {
		return 0, 0, "", false
	}
	key = blk.chars[col].Entity
	if key == "" {
		return 0, 0, "", false
	}
	start, end = col, col+1
	for start > 0 && blk.chars[start-1].Entity == key {
		start--
	}
	for end < blk.Len() && blk.chars[end].Entity == key {
		end++
	}
	return start, end, key, true
}
