// Types shared between containers and the lifecycle driver that
// must not be reachable from user code.
package hook

type key struct{}

var driverKey = &key{}

// A capability to run the automatic initialization pass.
//
// Only packages of this module can import this package, so only they can
// obtain a valid token. The zero value is rejected by `Valid`.
type Token struct {
	key *key
}

// Mint a token for the lifecycle driver.
func Mint() Token {
	return Token{key: driverKey}
}

// Return `true` if this token was obtained through `Mint`.
func (t Token) Valid() bool {
	return t.key == driverKey
}

// A value that takes part in the automatic initialization pass.
type AutoInitializer interface {
	TriggerAutoInit(Token)
}
