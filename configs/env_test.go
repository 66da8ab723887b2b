package configs

import "testing"

func TestMissingRequired(t *testing.T) {
	cfg := &Config{}
	missing := cfg.MissingRequired()
	if len(missing) != 1 || missing[0] != "JWT_SECRET" {
		t.Errorf("MissingRequired() = %v, want [JWT_SECRET]", missing)
	}

	cfg.JWTSecret = "not-empty"
	if got := cfg.MissingRequired(); len(got) != 0 {
		t.Errorf("MissingRequired() = %v, want none", got)
	}
}
