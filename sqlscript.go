// Package sqlscript splits SQL script files into individual statements.
//
// The segmenter works in two passes over the whole script. The first pass
// strips "--" line comments and "/* ... */" block comments line by line,
// and the second pass cuts the remaining text after every ';'. Neither pass
// understands SQL: quoted strings are not recognized, so a ';' inside a
// string literal ends the statement.
package sqlscript

// Version is the version of this module and the isql command.
const Version = "v0.1.0"
