package obj

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/shadowmario/prefabs"
)

// FireballPolicy decides whether a boss fireball attempt succeeds. The decision
// is a tengo script that reads roll (uniform in [0, 1)), gap (horizontal
// distance to the player) and health, and assigns a bool to throw.
type FireballPolicy struct {
	name     string
	compiled *tengo.Compiled
}

// LoadFireballPolicy compiles the named script from prefabs/scripts.
func LoadFireballPolicy(name string) (*FireballPolicy, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, err
	}
	p, err := NewFireballPolicy(src)
	if err != nil {
		return nil, fmt.Errorf("obj: compile %s: %w", name, err)
	}
	p.name = name
	return p, nil
}

func NewFireballPolicy(src []byte) (*FireballPolicy, error) {
	script := tengo.NewScript(src)
	_ = script.Add("roll", 0.0)
	_ = script.Add("gap", 0)
	_ = script.Add("health", 0.0)
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	if err := compiled.Run(); err != nil {
		return nil, err
	}
	if !compiled.IsDefined("throw") {
		return nil, fmt.Errorf("obj: fireball policy must define throw")
	}
	return &FireballPolicy{compiled: compiled}, nil
}

// Clone returns a policy with its own script state.
func (p *FireballPolicy) Clone() *FireballPolicy {
	if p == nil {
		return nil
	}
	return &FireballPolicy{name: p.name, compiled: p.compiled.Clone()}
}

// Decide runs the script once.
func (p *FireballPolicy) Decide(roll float64, gap int, health float64) (bool, error) {
	if p == nil || p.compiled == nil {
		return roll < 0.5, nil
	}
	if err := p.compiled.Set("roll", roll); err != nil {
		return false, err
	}
	if err := p.compiled.Set("gap", gap); err != nil {
		return false, err
	}
	if err := p.compiled.Set("health", health); err != nil {
		return false, err
	}
	if err := p.compiled.Run(); err != nil {
		return false, fmt.Errorf("obj: run fireball policy %s: %w", p.name, err)
	}
	return p.compiled.Get("throw").Bool(), nil
}
