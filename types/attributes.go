package types

// NumAttributes is the number of skill dimensions carried by players and teams.
const NumAttributes = 4

// MaxAttributeValue bounds the magnitude of every attribute component.
// Within it a Dot of NumAttributes products always fits in an int64.
const MaxAttributeValue = 1 << 30

// Attributes is a vector over the four game categories.
//
// A player's Attributes are its skill levels; a team's Attributes are the
// strategy weights it applies to those skills. Higher weights mark a
// category as more important to the team.
type Attributes struct {
	Attack             int `json:"attack" yaml:"attack"`
	Defense            int `json:"defense" yaml:"defense"`
	Intelligence       int `json:"intelligence" yaml:"intelligence"`
	ResourceProduction int `json:"resourceProduction" yaml:"resourceProduction"`
}

// Vector returns the attributes in canonical order
// (attack, defense, intelligence, resource production).
func (a Attributes) Vector() [NumAttributes]int {
	return [NumAttributes]int{a.Attack, a.Defense, a.Intelligence, a.ResourceProduction}
}

// Dot returns the dot product of two attribute vectors.
//
// The product is computed in int64. It cannot overflow while every component
// lies within ±MaxAttributeValue, which validation enforces.
func (a Attributes) Dot(b Attributes) int64 {
	av, bv := a.Vector(), b.Vector()

	var sum int64
	for i := range av {
		sum += int64(av[i]) * int64(bv[i])
	}

	return sum
}

// Add returns the component-wise sum of a and b.
func (a Attributes) Add(b Attributes) Attributes {
	return Attributes{
		Attack:             a.Attack + b.Attack,
		Defense:            a.Defense + b.Defense,
		Intelligence:       a.Intelligence + b.Intelligence,
		ResourceProduction: a.ResourceProduction + b.ResourceProduction,
	}
}

// Total returns the sum of all four components.
func (a Attributes) Total() int {
	return a.Attack + a.Defense + a.Intelligence + a.ResourceProduction
}
