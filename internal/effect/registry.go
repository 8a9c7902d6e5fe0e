package effect

// Registry keeps routines in selection order.
type Registry struct {
	list []Effect
	m    map[string]int
}

func NewRegistry() *Registry { return &Registry{m: map[string]int{}} }

// Register appends e, replacing any routine already registered under the same name.
func (r *Registry) Register(e Effect) {
	if e == nil {
		return
	}
	if i, ok := r.m[e.Name()]; ok {
		r.list[i] = e
		return
	}
	r.m[e.Name()] = len(r.list)
	r.list = append(r.list, e)
}

// Index returns the selection index for name.
func (r *Registry) Index(name string) (int, bool) {
	i, ok := r.m[name]
	return i, ok
}

func (r *Registry) At(i int) Effect {
	if i < 0 || i >= len(r.list) {
		return nil
	}
	return r.list[i]
}

func (r *Registry) Len() int { return len(r.list) }

func (r *Registry) List() []string {
	out := make([]string, 0, len(r.list))
	for _, e := range r.list {
		out = append(out, e.Name())
	}
	return out
}
