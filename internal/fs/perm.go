package fs

// Perm is a three bit permission mask.
type Perm int

const (
	PermExecute Perm = 1 << iota
	PermWrite
	PermRead

	PermFile Perm = PermRead | PermWrite
	PermDir  Perm = PermRead | PermWrite | PermExecute
)

func (p Perm) Valid() bool {
	return p >= 0 && p <= PermDir
}

// String renders the mask the way listings show it, e.g. "rw-".
func (p Perm) String() string {
	b := []byte("---")
	if p&PermRead != 0 {
		b[0] = 'r'
	}
	if p&PermWrite != 0 {
		b[1] = 'w'
	}
	if p&PermExecute != 0 {
		b[2] = 'x'
	}
	return string(b)
}
