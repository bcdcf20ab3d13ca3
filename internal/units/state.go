package units

// State is the mutable part of a conversion session: which way we convert and
// against which root font size.
type State struct {
	Direction Direction
	BaseSize  float64
}

// NewState returns px→rem against the default base size.
func NewState() State {
	return State{Direction: PxToRemDir, BaseSize: DefaultBaseSize}
}

func (s *State) Toggle() { s.Direction = s.Direction.Toggle() }

func (s State) InputUnit() string  { return s.Direction.InputUnit() }
func (s State) OutputUnit() string { return s.Direction.OutputUnit() }

func (s State) Convert(value float64) (float64, error) {
	return Convert(s.Direction, s.BaseSize, value)
}

func (s State) BatchConvert(text string) ([]Line, error) {
	return BatchConvert(s.Direction, s.BaseSize, text)
}

// SetBaseSize updates the base size; an invalid candidate leaves it unchanged.
func (s *State) SetBaseSize(candidate float64) error {
	v, err := SetBaseSize(s.BaseSize, candidate)
	s.BaseSize = v
	return err
}

// ParseBaseSize updates the base size from text input.
func (s *State) ParseBaseSize(text string) error {
	v, err := ParseBaseSize(s.BaseSize, text)
	s.BaseSize = v
	return err
}
