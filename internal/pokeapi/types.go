package pokeapi

// Resource is a named link to another PokéAPI resource.
type Resource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type TypeSlot struct {
	Slot int      `json:"slot"`
	Type Resource `json:"type"`
}

type StatEntry struct {
	BaseStat int      `json:"base_stat"`
	Effort   int      `json:"effort"`
	Stat     Resource `json:"stat"`
}

// Creature is the subset of GET /pokemon/{id} the viewer renders.
type Creature struct {
	ID    int         `json:"id"`
	Name  string      `json:"name"`
	Types []TypeSlot  `json:"types"`
	Stats []StatEntry `json:"stats"`
}

// TypeNames returns the type labels in response order.
func (c *Creature) TypeNames() []string {
	names := make([]string, 0, len(c.Types))
	for _, t := range c.Types {
		names = append(names, t.Type.Name)
	}
	return names
}
