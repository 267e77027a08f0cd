// Package config loads user settings and interaction table overrides.
//
// Settings live in a TOML file, by default
// $XDG_CONFIG_HOME/viewprofile/config.toml:
//
//	[log]
//	level = "debug"
//	format = "console"
//
//	[session]
//	view = "ortho"
//	profile = "edit"
//
//	[[temp_mode]]
//	handler = "orthoview"
//	mode = "nav"
//	modifiers = "ctrl+alt"
//	target = "pick"
//
//	[[alternate]]
//	handler = "orthoview"
//	mode = "nav"
//	event = "RightMouseDown"
//	target_mode = "pan"
//	target_event = "LeftMouseDown"
//
// Any key can be overridden from the environment with the VIEWPROFILE_
// prefix, for example VIEWPROFILE_LOG_LEVEL=trace.
//
// Overrides are applied onto the built-in tables with Apply. The result is
// validated as a whole and immutable afterwards.
package config
