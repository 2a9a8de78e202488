package domain

// PersistCommand instructs the caller to replace the durable snapshot with
// Snapshot. Mutations that change nothing return a nil command.
type PersistCommand struct {
	Snapshot []ConcertPlan
}

// Collection is the ordered plan list, newest first. Its methods never modify
// the receiver; they return the next state.
type Collection []ConcertPlan

func (c Collection) Clone() Collection {
	out := make(Collection, len(c))
	for i, p := range c {
		out[i] = p.Clone()
	}
	return out
}

func (c Collection) Find(id string) (ConcertPlan, bool) {
	for _, p := range c {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return ConcertPlan{}, false
}

func (c Collection) Add(plan ConcertPlan) (Collection, *PersistCommand) {
	return c.Prepend([]ConcertPlan{plan})
}

// Prepend inserts plans ahead of the existing ones, keeping their order.
func (c Collection) Prepend(plans []ConcertPlan) (Collection, *PersistCommand) {
	if len(plans) == 0 {
		return c, nil
	}

	next := make(Collection, 0, len(plans)+len(c))
	for _, p := range plans {
		next = append(next, p.Clone())
	}
	next = append(next, c...)

	return next, next.persist()
}

// Update applies patch to every plan with the given id and returns the first
// of them. An unknown id returns the receiver unchanged with a nil plan and a
// nil command. If the patch is invalid for any match nothing changes.
func (c Collection) Update(id string, patch PlanPatch, newID IDFunc) (Collection, *ConcertPlan, *PersistCommand, error) {
	var first *ConcertPlan
	next := make(Collection, len(c))
	copy(next, c)

	for i, p := range c {
		if p.ID != id {
			continue
		}

		updated, err := p.Apply(patch, newID)
		if err != nil {
			return c, nil, nil, err
		}
		next[i] = updated

		if first == nil {
			out := updated.Clone()
			first = &out
		}
	}

	if first == nil {
		return c, nil, nil, nil
	}

	return next, first, next.persist(), nil
}

// Delete removes every plan with the given id. Imports may leave duplicates.
func (c Collection) Delete(id string) (Collection, *PersistCommand) {
	next := make(Collection, 0, len(c))
	for _, p := range c {
		if p.ID != id {
			next = append(next, p)
		}
	}

	if len(next) == len(c) {
		return c, nil
	}

	return next, next.persist()
}

func (c Collection) persist() *PersistCommand {
	return &PersistCommand{Snapshot: c.Clone()}
}
