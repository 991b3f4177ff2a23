package greeting

import "fmt"

// Hello returns a greeting message for the given name.
// The name is greeted verbatim; the "World" default is supplied by
// the flag definition, not here.
func Hello(name string) string {
	return fmt.Sprintf("Hello, %s!", name)
}
