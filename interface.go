package sqlscript

// Option is a generic interface for objects that passes
// optional parameters to the various functions in this module
type Option interface {
	Name() string
	Value() interface{}
}
