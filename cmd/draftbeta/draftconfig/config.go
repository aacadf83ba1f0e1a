// Package draftconfig loads a draft template (heroes, roles, schedule,
// reward weights) from a TOML file and applies it to a draftengine.Engine
// via the setup operations of spec.md S6. This is the thin, explicitly
// out-of-core "front-end" spec.md S1 names as an external collaborator --
// assembling the real hero/role/reward data is the preprocessor's job, not
// the engine's; this loader exists only so the cmd/draftbeta driver can
// exercise the engine end to end from a plain file instead of hand-written
// setup calls.
package draftconfig

import (
	"fmt"
	"os"

	"github.com/draftbeta/draftbeta/pkg/draftengine"
	"github.com/draftbeta/draftbeta/pkg/schedule"
	"github.com/pelletier/go-toml/v2"
)

// Stage mirrors schedule.Stage in TOML-friendly form: team and kind are
// spelled out as strings rather than the engine's small integer enums, so a
// draft template reads the way a human would write one.
type Stage struct {
	Team string `toml:"team"`
	Kind string `toml:"kind"`
}

// Hero is one row of the hero-info table (spec.md S6's set_h_info), plus
// the role reward pair for that index.
type Hero struct {
	Index           int   `toml:"index"`
	RoleA           int   `toml:"role_a"`
	RoleB           int   `toml:"role_b"`
	SameRoleAndHero []int `toml:"same_role_and_hero"`
	SameHero        []int `toml:"same_hero"`
}

// Synergy is one synergy-reward slot.
type Synergy struct {
	Slot   int   `toml:"slot"`
	Heroes []int `toml:"heroes"`
	A      int   `toml:"a"`
	B      int   `toml:"b"`
}

// Counter is one counter-reward slot.
type Counter struct {
	Slot   int   `toml:"slot"`
	Heroes []int `toml:"heroes"`
	Foes   []int `toml:"foes"`
	A      int   `toml:"a"`
	B      int   `toml:"b"`
}

// Template is the full TOML document: sizes, schedule, hero info/role
// rewards, and the synergy/counter tables. It is not itself part of the
// engine's configuration state -- Apply replays it through the setup
// operations of spec.md S6, so a Template is discarded after loading.
type Template struct {
	NumHeroes int       `toml:"num_heroes"`
	Schedule  []Stage   `toml:"schedule"`
	Heroes    []Hero    `toml:"heroes"`
	Synergies []Synergy `toml:"synergies"`
	Counters  []Counter `toml:"counters"`
}

// Load reads and parses a Template from a TOML file.
func Load(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("draftconfig: %w", err)
	}

	var t Template
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("draftconfig: %w", err)
	}
	return &t, nil
}

func parseTeam(s string) (schedule.Side, error) {
	switch s {
	case "A":
		return schedule.A, nil
	case "B":
		return schedule.B, nil
	default:
		return 0, fmt.Errorf("draftconfig: unknown team %q (want A or B)", s)
	}
}

func parseKind(s string) (schedule.Kind, error) {
	switch s {
	case "PICK":
		return schedule.Pick, nil
	case "BAN":
		return schedule.Ban, nil
	case "PICK_PICK":
		return schedule.PickPick, nil
	case "PICK_BAN":
		return schedule.PickBan, nil
	case "BAN_PICK":
		return schedule.BanPick, nil
	case "BAN_BAN":
		return schedule.BanBan, nil
	default:
		return 0, fmt.Errorf("draftconfig: unknown selection kind %q", s)
	}
}

// Apply replays the template through e's setup operations, in the order
// spec.md S6 requires (sizes before anything sized off them). A rejected
// setup call aborts immediately and returns its error, per spec.md S7's
// "reject at the setup call before any search can run."
func (t *Template) Apply(e *draftengine.Engine) error {
	if err := e.SetSizes(t.NumHeroes, len(t.Synergies), len(t.Counters), len(t.Schedule)); err != nil {
		return err
	}

	for i, st := range t.Schedule {
		team, err := parseTeam(st.Team)
		if err != nil {
			return err
		}
		kind, err := parseKind(st.Kind)
		if err != nil {
			return err
		}
		if err := e.SetDraftStage(i, team, kind); err != nil {
			return err
		}
	}

	for _, h := range t.Heroes {
		if err := e.SetHeroInfo(h.Index, h.SameRoleAndHero, h.SameHero); err != nil {
			return err
		}
		if err := e.SetRoleReward(h.Index, h.RoleA, h.RoleB); err != nil {
			return err
		}
	}

	for _, s := range t.Synergies {
		if err := e.SetSynergyReward(s.Slot, s.Heroes, s.A, s.B); err != nil {
			return err
		}
	}

	for _, c := range t.Counters {
		if err := e.SetCounterReward(c.Slot, c.Heroes, c.Foes, c.A, c.B); err != nil {
			return err
		}
	}

	return nil
}
