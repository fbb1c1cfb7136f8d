package ringtone

// Identity is the closed set of ringtone-reference semantics an alarm can
// carry. Exactly four variants exist; the interface is sealed by the
// unexported marker method.
type Identity interface {
	isIdentity()
}

// Silent is the explicit "no sound" choice.
type Silent struct{}

// SystemDefault means "use the platform's default alarm sound". It is the
// meaning of a default locator in settings contexts.
type SystemDefault struct{}

// Default means "use this application's internal default sound". It only
// arises while editing an alarm; outside that context it degrades to
// SystemDefault (see Encode).
type Default struct{}

// Sound is an explicit sound reference carrying its locator.
type Sound struct {
	// URI locates the sound resource, passed through verbatim by the codec.
	URI string
}

func (Silent) isIdentity()        {}
func (SystemDefault) isIdentity() {}
func (Default) isIdentity()       {}
func (Sound) isIdentity()         {}

// String implementations keep log output readable.

func (Silent) String() string        { return "silent" }
func (SystemDefault) String() string { return "system default" }
func (Default) String() string       { return "app default" }
func (s Sound) String() string       { return "sound " + s.URI }
