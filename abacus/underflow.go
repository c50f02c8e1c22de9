package abacus

// Underflow is the policy applied when decrementing a register that is
// already zero. This can only happen when an ifzdec tests one register and
// decrements another.
type Underflow int

//go:generate go tool stringer -linecomment -type=Underflow
const (
	UNDERFLOW_FAULT  = Underflow(0) // fault
	UNDERFLOW_CLAMP  = Underflow(1) // clamp
	UNDERFLOW_SIGNED = Underflow(2) // signed
)

// ParseUnderflow returns the policy for a name.
func ParseUnderflow(name string) (policy Underflow, err error) {
	for policy = UNDERFLOW_FAULT; policy <= UNDERFLOW_SIGNED; policy++ {
		if policy.String() == name {
			return
		}
	}

	policy = UNDERFLOW_FAULT
	err = ErrUnderflowName
	return
}
