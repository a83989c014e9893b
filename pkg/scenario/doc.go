// Package scenario loads declarative mock setup fixtures from YAML or JSON
// documents and applies them to mock handlers.
//
// A scenario document names one or more mocks and the setups to register on
// each. Argument positions take either a literal value or a matcher spec:
//
//	version: "1"
//	mocks:
//	  - name: userService
//	    behavior: strict
//	    setups:
//	      - signature: GetUser
//	        args:
//	          - 42
//	        returns: {id: 42, name: alice}
//	      - signature: GetUser
//	        args:
//	          - any: true
//	        throws: "user not found"
//	        verifiable: true
//
// Matcher specs: {any: true}, {notNil: true}, {eq: v}, {regexp: s},
// {expr: s}, {in: [...]}, {notIn: [...]},
// {range: {min: n, max: n, exclusive: bool}}, and
// {jsonPath: {path: s, value: v}}.
//
// Documents are validated against an embedded JSON Schema before decoding,
// so malformed fixtures fail loading with a path-qualified error instead of
// silently configuring nothing. Fixtures configure mocks; they are not a
// persistence format for mock state.
package scenario
