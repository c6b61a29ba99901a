package client

import (
	"dario.cat/mergo"
)

// Params are form fields for a single request. Per-call overrides win
// over client-level fields, which win over the action defaults.
type Params map[string]string

// resolve merges the three parameter tiers. Later tiers override
// earlier ones; the inputs are not modified.
func resolve(tiers ...Params) Params {
	out := Params{}
	for _, t := range tiers {
		if len(t) == 0 {
			continue
		}
		_ = mergo.Merge(&out, t, mergo.WithOverride)
	}
	return out
}

// Config customizes a Client. Zero fields fall back to the official
// server defaults.
type Config struct {
	Server        string
	AccountServer string
	ContentServer string
	Endpoints     Endpoints
	Headers       map[string]string
	Versions      Versions

	// Params are client-level form fields applied to every request,
	// e.g. a custom gdw flag for GD World instances.
	Params Params
}
