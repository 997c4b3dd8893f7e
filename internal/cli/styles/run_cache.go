package styles

import "container/list"

// runCacheSize bounds the styled runs kept between frames. A full-screen
// board repaints the same border and label runs every frame.
const runCacheSize = 1024

type runKey struct {
	kind cellKind
	text string
}

type runEntry struct {
	key      runKey
	rendered string
}

// runCache is an LRU of rendered cell runs. Front is the most recently
// used entry. It is not safe for concurrent use.
type runCache struct {
	capacity int
	items    map[runKey]*list.Element
	order    *list.List
}

func newRunCache(capacity int) *runCache {
	if capacity <= 0 {
		capacity = 1
	}
	return &runCache{
		capacity: capacity,
		items:    make(map[runKey]*list.Element),
		order:    list.New(),
	}
}

// render returns the styled form of text, calling style on a miss.
func (c *runCache) render(kind cellKind, text string, style func(string) string) string {
	key := runKey{kind: kind, text: text}
	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(*runEntry).rendered
	}

	if c.order.Len() >= c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			c.order.Remove(oldest)
			delete(c.items, oldest.Value.(*runEntry).key)
		}
	}
	rendered := style(text)
	c.items[key] = c.order.PushFront(&runEntry{key: key, rendered: rendered})
	return rendered
}

func (c *runCache) len() int { return c.order.Len() }
