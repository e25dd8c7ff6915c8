// Package vacuum simulates a simple reflex vacuum agent in a two-room world.
// The environment charges one point per action and pays ten per cell of dirt
// removed.
package vacuum

// Room identifies one of the two rooms.
type Room int

const (
	RoomA Room = iota
	RoomB
)

func (r Room) String() string {
	if r == RoomA {
		return "A"
	}
	return "B"
}

func (r Room) other() Room {
	if r == RoomA {
		return RoomB
	}
	return RoomA
}

// Status is a room's cleanliness.
type Status int

const (
	Clean Status = iota
	Dirty
)

func (s Status) String() string {
	if s == Dirty {
		return "Dirty"
	}
	return "Clean"
}

// Action is what the agent can do on one tick.
type Action int

const (
	Suck Action = iota
	MoveToA
	MoveToB
	NoOp
)

var actionNames = map[Action]string{
	Suck:    "Suck",
	MoveToA: "MoveToA",
	MoveToB: "MoveToB",
	NoOp:    "NoOp",
}

func (a Action) String() string { return actionNames[a] }

// Percept is what the agent senses: where it is and whether that room is
// dirty.
type Percept struct {
	Location Room
	Status   Status
}

// Environment holds room statuses, the agent's location, and the running
// performance score.
type Environment struct {
	status [2]Status
	agent  Room
	score  int
}

// NewEnvironment places the agent and sets the initial room statuses.
func NewEnvironment(a, b Status, agent Room) *Environment {
	return &Environment{status: [2]Status{a, b}, agent: agent}
}

// Percept reports the agent's current sensor reading.
func (e *Environment) Percept() Percept {
	return Percept{Location: e.agent, Status: e.status[e.agent]}
}

// AllClean reports whether both rooms are clean.
func (e *Environment) AllClean() bool {
	return e.status[RoomA] == Clean && e.status[RoomB] == Clean
}

// Score returns the accumulated performance score.
func (e *Environment) Score() int { return e.score }

// Agent returns the agent's current room.
func (e *Environment) Agent() Room { return e.agent }

// Step applies one action: every action costs a point, a Suck in a dirty
// room earns ten.
func (e *Environment) Step(action Action) {
	e.score--
	switch action {
	case Suck:
		if e.status[e.agent] == Dirty {
			e.status[e.agent] = Clean
			e.score += 10
		}
	case MoveToA:
		e.agent = RoomA
	case MoveToB:
		e.agent = RoomB
	case NoOp:
	}
}

// Agent picks an action from a percept.
type Agent interface {
	Act(p Percept) Action
}

// ReflexAgent is the textbook rule table: suck dirt, otherwise move to the
// other room.
type ReflexAgent struct{}

func (ReflexAgent) Act(p Percept) Action {
	if p.Status == Dirty {
		return Suck
	}
	if p.Location == RoomA {
		return MoveToB
	}
	return MoveToA
}

// TraceEntry records one tick of the simulation.
type TraceEntry struct {
	Step    int
	Percept Percept
	Action  Action
	Score   int
}

// Run drives the agent for at most maxSteps ticks, stopping with a final
// NoOp once both rooms are clean. It returns the tick-by-tick trace.
func Run(env *Environment, agent Agent, maxSteps int) []TraceEntry {
	var trace []TraceEntry
	for step := 1; step <= maxSteps; step++ {
		percept := env.Percept()
		action := agent.Act(percept)
		if env.AllClean() {
			action = NoOp
		}
		env.Step(action)
		trace = append(trace, TraceEntry{Step: step, Percept: percept, Action: action, Score: env.Score()})
		if action == NoOp {
			break
		}
	}
	return trace
}
