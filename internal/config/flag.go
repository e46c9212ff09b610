package config

import "strings"

// Flag is a boolean toggle that is set only by the literal "true", in any case.
// Unlike strconv.ParseBool, values such as "1" or "yes" read as false.
type Flag bool

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Flag) UnmarshalText(text []byte) error {
	*f = Flag(strings.EqualFold(string(text), "true"))
	return nil
}

// Enabled reports whether the flag is set.
func (f Flag) Enabled() bool {
	return bool(f)
}
