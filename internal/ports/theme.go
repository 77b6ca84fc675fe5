package ports

// StyleTarget receives global style variables and descriptive
// attributes, the way a document root receives CSS variables.
type StyleTarget interface {
	SetVariable(name, value string)
	SetAttribute(name, value string)
}

// AppearanceDetector reports the host's light/dark preference.
type AppearanceDetector interface {
	PrefersDark() bool
}
