package selection

// Listener receives every pointer sample dispatched through a Hub.
type Listener func(Pointer)

// Hub fans pointer samples out to its listeners in subscription order.
// It stands in for document-level input listeners: engines subscribe on
// Attach and must unsubscribe on Teardown.
//
// Hub is not safe for concurrent use; it is driven from the UI loop.
type Hub struct {
	nextID    int
	order     []int
	listeners map[int]Listener
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{listeners: make(map[int]Listener)}
}

// Subscribe registers l and returns a function that removes it.
// The returned function may be called any number of times.
func (h *Hub) Subscribe(l Listener) (unsubscribe func()) {
	if l == nil {
		return func() {}
	}
	if h.listeners == nil {
		h.listeners = make(map[int]Listener)
	}

	id := h.nextID
	h.nextID++
	h.listeners[id] = l
	h.order = append(h.order, id)

	return func() {
		if _, ok := h.listeners[id]; !ok {
			return
		}
		delete(h.listeners, id)
		for i, v := range h.order {
			if v == id {
				h.order = append(h.order[:i], h.order[i+1:]...)
				break
			}
		}
	}
}

// Dispatch delivers p to every listener. Listeners added or removed while
// dispatching take effect on the next sample.
func (h *Hub) Dispatch(p Pointer) {
	ids := make([]int, len(h.order))
	copy(ids, h.order)
	for _, id := range ids {
		if l, ok := h.listeners[id]; ok {
			l(p)
		}
	}
}

// Len returns the number of active listeners.
func (h *Hub) Len() int {
	return len(h.listeners)
}
