package symplectic

// Phase is the global phase of a Pauli operator: one of +1, +i, -1, -i.
type Phase int

const (
	// PhaseOne is +1.
	PhaseOne Phase = iota
	// PhaseI is +i.
	PhaseI
	// PhaseMinusOne is -1.
	PhaseMinusOne
	// PhaseMinusI is -i.
	PhaseMinusI
)

// phaseMulTable[a][b] is the product a*b within the four-element phase group.
var phaseMulTable = [4][4]Phase{
	PhaseOne:      {PhaseOne, PhaseI, PhaseMinusOne, PhaseMinusI},
	PhaseI:        {PhaseI, PhaseMinusOne, PhaseMinusI, PhaseOne},
	PhaseMinusOne: {PhaseMinusOne, PhaseMinusI, PhaseOne, PhaseI},
	PhaseMinusI:   {PhaseMinusI, PhaseOne, PhaseI, PhaseMinusOne},
}

// Mul returns p*q.
func (p Phase) Mul(q Phase) Phase {
	return phaseMulTable[p][q]
}

// String renders the phase as it appears in Pauli-string notation.
func (p Phase) String() string {
	switch p {
	case PhaseOne:
		return "+"
	case PhaseI:
		return "+i"
	case PhaseMinusOne:
		return "-"
	case PhaseMinusI:
		return "-i"
	default:
		return "?"
	}
}
