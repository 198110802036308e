// Package version reads product version files and checks tool version
// requirements declared by build files.
//
// A version file holds `key = value` bindings, one per line:
//
//	# talk plugin version
//	version = "1,0,0,42"
//
// The version binding is a comma separated tuple. Read joins it with dots,
// replacing the last field with GOOGLE_VERSION_BUILDNUMBER when that
// variable is set.
package version
