package entity

import "github.com/EngoEngine/ecs"

type opKind int

const (
	opSpawn opKind = iota
	opDestroy
)

type op struct {
	kind       opKind
	basic      ecs.BasicEntity
	id         ID
	components []Component
}

// Commands buffers spawn and destroy requests issued while a system scans
// the store. Nothing is applied until Flush, so iteration never observes a
// half mutated entity set.
type Commands struct {
	store     *Store
	ops       []op
	destroyed map[ID]struct{}
}

// Commands returns an empty command buffer bound to s
func (s *Store) Commands() *Commands {
	return &Commands{
		store:     s,
		destroyed: make(map[ID]struct{}),
	}
}

// Spawn queues the creation of an entity. The id is reserved immediately.
func (c *Commands) Spawn(components ...Component) ID {
	basic := ecs.NewBasic()
	c.ops = append(c.ops, op{kind: opSpawn, basic: basic, components: components})
	return ID(basic.ID())
}

// Destroy queues the removal of id. Queuing the same id twice is harmless.
func (c *Commands) Destroy(id ID) {
	if _, dup := c.destroyed[id]; dup {
		return
	}
	c.destroyed[id] = struct{}{}
	c.ops = append(c.ops, op{kind: opDestroy, id: id})
}

// Destroyed reports whether id is queued for removal
func (c *Commands) Destroyed(id ID) bool {
	_, ok := c.destroyed[id]
	return ok
}

// Len returns the number of queued operations
func (c *Commands) Len() int {
	return len(c.ops)
}

// Flush applies the queued operations in the order they were issued and
// empties the buffer.
func (c *Commands) Flush() {
	for _, o := range c.ops {
		switch o.kind {
		case opSpawn:
			c.store.insert(o.basic, o.components)
		case opDestroy:
			c.store.Destroy(o.id)
		}
	}
	c.ops = c.ops[:0]
	clear(c.destroyed)
}
