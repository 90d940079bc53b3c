package option

import "fmt"

// Option is a name/value pair handed to the constructors and runners
// in this module. Each package declares the names it understands.
type Option interface {
	Name() string
	Value() interface{}
}

type option struct {
	name  string
	value interface{}
}

func New(n string, v interface{}) Option {
	return &option{
		name:  n,
		value: v,
	}
}

func (o option) Name() string       { return o.name }
func (o option) Value() interface{} { return o.value }

func (o option) String() string {
	return fmt.Sprintf("%s=%v", o.name, o.value)
}
