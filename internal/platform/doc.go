// Package platform names the target platform families a build declaration
// can be conditioned on and maps each one to the option-name prefix that
// selects it (lin_, mac_, posix_, win_). Bits carries the active platform
// set together with the debug and coverage build-mode switches.
package platform
