package scenario

// Document is a parsed scenario fixture.
type Document struct {
	// Version is the fixture schema version. Currently always "1".
	Version string `json:"version" yaml:"version"`

	// Name is an optional human-readable fixture name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Mocks are the mock definitions, applied by name.
	Mocks []MockDef `json:"mocks" yaml:"mocks"`
}

// MockDef declares the setups for one named mock.
type MockDef struct {
	// Name identifies the target handler.
	Name string `json:"name" yaml:"name"`

	// Behavior selects "loose" (default) or "strict". Only honored when the
	// handler is created by Build; Apply configures existing handlers and
	// leaves their behavior alone.
	Behavior string `json:"behavior,omitempty" yaml:"behavior,omitempty"`

	// Setups are registered in document order, which is also the dispatch
	// tie-break order.
	Setups []SetupDef `json:"setups" yaml:"setups"`
}

// SetupDef declares one setup. Throws, ReturnsInOrder, and Returns are
// mutually exclusive; the first one present in that order wins.
type SetupDef struct {
	// Signature is the member signature, e.g. "GetUser" or "get_Name".
	Signature string `json:"signature" yaml:"signature"`

	// Args holds one literal or matcher spec per argument position.
	Args []any `json:"args,omitempty" yaml:"args,omitempty"`

	// Returns is a fixed return value.
	Returns any `json:"returns,omitempty" yaml:"returns,omitempty"`

	// ReturnsInOrder is a return value sequence; the last value repeats.
	ReturnsInOrder []any `json:"returnsInOrder,omitempty" yaml:"returnsInOrder,omitempty"`

	// Throws is an error message to surface on every selection.
	Throws string `json:"throws,omitempty" yaml:"throws,omitempty"`

	// Out maps parameter index (as a string, for JSON compatibility) to the
	// value injected into that out/ref parameter.
	Out map[string]any `json:"out,omitempty" yaml:"out,omitempty"`

	// Verifiable marks the setup required-to-be-called for VerifyAll.
	Verifiable bool `json:"verifiable,omitempty" yaml:"verifiable,omitempty"`
}
