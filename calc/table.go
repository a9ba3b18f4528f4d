package calc

// Def is one function definition.
type Def struct {
	Name string
	Body string
}

// Table keeps definitions in insertion order. Redefining a name appends a
// new entry; Lookup still returns the first one.
type Table struct {
	defs []Def
}

func (t *Table) Define(name, body string) {
	t.defs = append(t.defs, Def{Name: name, Body: body})
}

func (t *Table) Lookup(name string) (string, bool) {
	for _, d := range t.defs {
		if d.Name == name {
			return d.Body, true
		}
	}
	return "", false
}

func (t *Table) Len() int { return len(t.defs) }

// Definitions returns a copy of all entries in insertion order.
func (t *Table) Definitions() []Def {
	return append([]Def(nil), t.defs...)
}
