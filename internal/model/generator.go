package model

import "github.com/passforge/passforge-go/internal/crypto"

// GenerateRequest is the body of POST /api/v1/generate. Every field is optional; a nil
// class flag or zero length keeps the base setting.
type GenerateRequest struct {
	Length    int   `json:"length"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
}

// Apply overlays the fields the request sets onto base.
func (r GenerateRequest) Apply(base crypto.GeneratorOptions) crypto.GeneratorOptions {
	opts := base
	if r.Length != 0 {
		opts.Length = r.Length
	}
	overlay(&opts.Uppercase, r.Uppercase)
	overlay(&opts.Lowercase, r.Lowercase)
	overlay(&opts.Numbers, r.Numbers)
	overlay(&opts.Symbols, r.Symbols)
	return opts
}

func overlay(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

// GenerateResponse carries a generated password and its length.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
}
