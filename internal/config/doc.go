// Package config manages user-level settings stored at ~/.talkbuild/config.yaml.
// Besides plain keys it holds named environment profiles: construction
// variable lists layered onto the built-in defaults of a build.
package config
