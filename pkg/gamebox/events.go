package gamebox

// EventKind identifies which part of the model changed.
type EventKind int

const (
	EventMetadataChanged EventKind = iota
	EventTargetChanged
	EventLaunchersChanged
	EventDocumentationChanged
	EventRefreshed
)

func (k EventKind) String() string {
	switch k {
	case EventMetadataChanged:
		return "metadata-changed"
	case EventTargetChanged:
		return "target-changed"
	case EventLaunchersChanged:
		return "launchers-changed"
	case EventDocumentationChanged:
		return "documentation-changed"
	case EventRefreshed:
		return "refreshed"
	default:
		return "unknown"
	}
}

// Event is delivered to observers after a mutation has been applied, so
// external controllers can resynchronize without polling.
type Event struct {
	Kind EventKind
}

// Subscribe registers an observer for model changes and returns a cancel
// function that removes it.
func (g *Gamebox) Subscribe(observer func(Event)) func() {
	g.nextObserverID++
	id := g.nextObserverID
	g.observers[id] = observer
	return func() {
		delete(g.observers, id)
	}
}

func (g *Gamebox) notify(event Event) {
	for _, observer := range g.observers {
		observer(event)
	}
}
