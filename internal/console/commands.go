package console

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Command describes one console command
type Command struct {
	Name    string
	Aliases []string
	Args    string // usage suffix, empty when the command takes none
	MinArgs int
	Help    string
}

// Usage renders the command with its argument placeholder
func (c Command) Usage() string {
	if c.Args == "" {
		return c.Name
	}
	return c.Name + " " + c.Args
}

// DefaultCommands returns the console command table
func DefaultCommands() []Command {
	return []Command{
		{Name: CmdExplore, Aliases: []string{"e", "x", "rover"}, Help: "send the rover out for water, nutrients and ice"},
		{Name: CmdPlant, Aliases: []string{"p"}, Help: "plant one potato by hand"},
		{Name: CmdBuy, Aliases: []string{"b", "purchase"}, Args: "<n>", MinArgs: 1, Help: "buy upgrade number n"},
		{Name: CmdUpgrades, Aliases: []string{"u", "shop"}, Help: "list the upgrades on offer"},
		{Name: CmdStatus, Aliases: []string{"s", "state"}, Help: "show resources and production"},
		{Name: CmdRate, Aliases: []string{"r"}, Args: "<x>", MinArgs: 1, Help: "set the autonomous exploration rate"},
		{Name: CmdSave, Help: "save the game now"},
		{Name: CmdHelp, Aliases: []string{"h", "?"}, Help: "show this list"},
		{Name: CmdQuit, Aliases: []string{"q", "exit"}, Help: "save and leave"},
	}
}

// Resolver maps typed words to commands: exact names and aliases first,
// then unambiguous prefixes, then the closest name within a small edit distance.
type Resolver struct {
	commands []Command
	lookup   map[string]Command
}

// NewResolver indexes commands by name and alias
func NewResolver(commands []Command) *Resolver {
	r := &Resolver{commands: commands, lookup: make(map[string]Command)}
	for _, c := range commands {
		r.lookup[c.Name] = c
		for _, a := range c.Aliases {
			r.lookup[a] = c
		}
	}
	return r
}

// Resolve returns the command for word. corrected is true when the match was not exact.
func (r *Resolver) Resolve(word string) (cmd Command, corrected bool, ok bool) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return Command{}, false, false
	}
	if c, found := r.lookup[word]; found {
		return c, false, true
	}

	if len(word) >= 2 {
		var matches []Command
		for _, c := range r.commands {
			if strings.HasPrefix(c.Name, word) {
				matches = append(matches, c)
			}
		}
		if len(matches) == 1 {
			return matches[0], true, true
		}
	}

	if len(word) < 3 {
		return Command{}, false, false
	}

	type candidate struct {
		cmd  Command
		dist int
	}
	var cands []candidate
	for _, c := range r.commands {
		dist := levenshtein.ComputeDistance(word, c.Name)
		if dist <= editLimit(len(c.Name)) {
			cands = append(cands, candidate{c, dist})
		}
	}
	if len(cands) == 0 {
		return Command{}, false, false
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].dist < cands[j].dist })
	if len(cands) > 1 && cands[0].dist == cands[1].dist {
		// ambiguous
		return Command{}, false, false
	}
	return cands[0].cmd, true, true
}

func editLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 7:
		return 2
	default:
		return 3
	}
}
