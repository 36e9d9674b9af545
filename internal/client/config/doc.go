// Package config resolves where the CLI connects and how long it waits.
//
// Values are layered: defaults, then the JSON file named by -c/-config,
// then GOPHPASS_SERVER / GOPHPASS_TIMEOUT, then the -a and -t flags.
// A layer only overrides what it actually sets.
//
//	{"server_endpoint_addr": "10.0.0.5:50051", "request_timeout": "1500ms"}
//
//	gophpass-cli -a 10.0.0.5:50051 -t 2s
package config
