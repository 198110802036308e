// Package manifest handles parsing and validation of build declaration
// files. A declaration file lists targets of the five kinds (library,
// dynamic_library, object, unittest, app) with their options in declaration
// order, and may pin the talkbuild versions it works with. Files are
// validated against the JSON Schema embedded in this package, and option
// names are checked against the names the component builder understands.
package manifest
