package environment

import "github.com/talkbuild/talkbuild/internal/platform"

// Defaults returns the built-in construction variables for bits.
func Defaults(bits platform.Bits) Settings {
	var s Settings

	if bits.Debug {
		s.CPPDefines = append(s.CPPDefines, "_DEBUG")
	} else {
		s.CPPDefines = append(s.CPPDefines, "NDEBUG")
	}
	s.CPPPath = []string{"$MAIN_DIR"}

	if bits.Windows {
		s.CPPDefines = append(s.CPPDefines, "WIN32", "_WINDOWS", "UNICODE", "_UNICODE")
		s.CCFlags = append(s.CCFlags, "/W3", "/EHsc")
		if bits.Debug {
			s.CCFlags = append(s.CCFlags, "/MTd", "/Od", "/Zi")
			s.LinkFlags = append(s.LinkFlags, "/DEBUG")
		} else {
			s.CCFlags = append(s.CCFlags, "/MT", "/O2")
		}
	}
	if bits.Posix {
		s.CPPDefines = append(s.CPPDefines, "POSIX")
		s.CCFlags = append(s.CCFlags, "-Wall", "-fno-exceptions")
		if bits.Debug {
			s.CCFlags = append(s.CCFlags, "-g", "-O0")
		} else {
			s.CCFlags = append(s.CCFlags, "-O2")
		}
	}
	if bits.Linux {
		s.CPPDefines = append(s.CPPDefines, "LINUX")
	}
	if bits.Mac {
		s.CPPDefines = append(s.CPPDefines, "OSX")
		s.Frameworks = append(s.Frameworks, "CoreServices", "Carbon", "Security", "SystemConfiguration")
	}
	if bits.Coverage {
		if bits.Windows {
			s.LinkFlags = append(s.LinkFlags, "/PROFILE")
		} else {
			s.CCFlags = append(s.CCFlags, "--coverage")
			s.LinkFlags = append(s.LinkFlags, "--coverage")
		}
	}

	return s
}
