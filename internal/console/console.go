// Package console is a line-oriented front end for playing in a terminal.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/MartianPotato_Go/internal/domain"
	"github.com/osse101/MartianPotato_Go/internal/event"
	"github.com/osse101/MartianPotato_Go/internal/logger"
)

// Game is the slice of the game the console drives
type Game interface {
	State() domain.GameState
	Explore(ctx context.Context) (domain.ExploreResult, error)
	Plant(ctx context.Context) (domain.PlantResult, error)
	Purchase(ctx context.Context, index int) (domain.PurchaseResult, error)
	AvailableUpgrades() []domain.UpgradeOffer
	SetExplorationRate(ctx context.Context, rate float64) error
	Save(ctx context.Context, source string) error
}

// Console reads commands from in and writes results and notices to out
type Console struct {
	game     Game
	resolver *Resolver
	in       io.Reader
	title    cases.Caser

	outMu sync.Mutex
	out   io.Writer
}

// New creates a console over the given streams
func New(game Game, in io.Reader, out io.Writer) *Console {
	return &Console{
		game:     game,
		resolver: NewResolver(DefaultCommands()),
		in:       in,
		out:      out,
		title:    cases.Title(language.English),
	}
}

// Subscribe prints every notice published on bus
func (c *Console) Subscribe(bus event.Bus) {
	bus.Subscribe(event.NoticeShown, c.handleNotice)
}

func (c *Console) handleNotice(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.NoticeShownPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	n := payload.Notice
	c.println(fmt.Sprintf(MsgFmtNotice, c.title.String(string(n.Severity)), n.Title, n.Message))
	return nil
}

// Run processes commands until quit, end of input or ctx is cancelled
func (c *Console) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	c.println(MsgWelcome)
	for {
		c.print(Prompt)
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			if quit := c.Execute(ctx, line); quit {
				return nil
			}
		}
	}
}

// Execute runs one command line. It reports whether the player asked to quit.
func (c *Console) Execute(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	cmd, corrected, ok := c.resolver.Resolve(fields[0])
	if !ok {
		c.println(fmt.Sprintf(MsgFmtUnknown, fields[0]))
		return false
	}
	if corrected {
		c.println(fmt.Sprintf(MsgFmtDidYouMean, fields[0], cmd.Name))
	}
	args := fields[1:]
	if len(args) < cmd.MinArgs {
		c.println(fmt.Sprintf(MsgFmtUsage, cmd.Usage()))
		return false
	}

	logger.FromContext(ctx).Debug("Console command", "command", cmd.Name, "args", args)

	switch cmd.Name {
	case CmdExplore:
		// the outcome arrives as a notice
		if _, err := c.game.Explore(ctx); err != nil {
			c.printError(err)
		}
	case CmdPlant:
		c.plant(ctx)
	case CmdBuy:
		c.buy(ctx, cmd, args[0])
	case CmdUpgrades:
		c.listUpgrades()
	case CmdStatus:
		c.status()
	case CmdRate:
		c.rate(ctx, cmd, args[0])
	case CmdSave:
		if err := c.game.Save(ctx, event.SaveSourceManual); err != nil {
			c.printError(err)
			return false
		}
		c.println(MsgSaved)
	case CmdHelp:
		c.help()
	case CmdQuit:
		c.println(MsgGoodbye)
		return true
	}
	return false
}

func (c *Console) plant(ctx context.Context) {
	res, err := c.game.Plant(ctx)
	if err != nil {
		c.printError(err)
		return
	}
	if res.Planted {
		c.println(fmt.Sprintf(MsgFmtPlanted, humanize.Comma(res.Potatoes)))
	}
}

func (c *Console) buy(ctx context.Context, cmd Command, arg string) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		c.println(fmt.Sprintf(MsgFmtUsage, cmd.Usage()))
		return
	}

	res, err := c.game.Purchase(ctx, n-1)
	if err != nil {
		c.printError(err)
		return
	}
	if !res.Purchased {
		c.println(fmt.Sprintf(MsgFmtNotAffordable,
			res.Upgrade.Name, humanize.Comma(res.Price), humanize.Comma(res.Potatoes)))
	}
}

func (c *Console) rate(ctx context.Context, cmd Command, arg string) {
	rate, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		c.println(fmt.Sprintf(MsgFmtUsage, cmd.Usage()))
		return
	}
	if err := c.game.SetExplorationRate(ctx, rate); err != nil {
		c.printError(err)
		return
	}
	c.println(fmt.Sprintf(MsgFmtRateSet, humanize.FtoaWithDigits(rate, 2)))
}

func (c *Console) listUpgrades() {
	offers := c.game.AvailableUpgrades()
	if len(offers) == 0 {
		c.println(MsgNoUpgrades)
		return
	}

	var b strings.Builder
	for i, o := range offers {
		mark := ""
		if o.Affordable {
			mark = MsgAffordableMark
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, MsgFmtUpgradeLine, o.Index+1, o.Name, humanize.Comma(o.Price), mark)
	}
	c.println(b.String())
}

func (c *Console) status() {
	s := c.game.State()
	r := s.Resources

	dormant := 0
	for _, u := range s.Planting.AutoPlanters {
		if !u.Active {
			dormant++
		}
	}

	c.println(strings.Join([]string{
		fmt.Sprintf(MsgFmtStatusLine,
			humanize.Comma(r.Potatoes),
			humanize.FtoaWithDigits(r.Water, StatusDigits),
			humanize.FtoaWithDigits(r.Nutrients, StatusDigits),
			humanize.FtoaWithDigits(r.Ice, StatusDigits)),
		fmt.Sprintf(MsgFmtPlantingLine,
			s.Planting.PlantingDelay,
			humanize.Comma(int64(len(s.Planting.AutoPlanters))),
			humanize.Comma(int64(dormant)),
			humanize.Comma(s.Planting.NextUnitCost)),
		fmt.Sprintf(MsgFmtRoverLine, humanize.FtoaWithDigits(s.Exploration.Rate, 2), s.Exploration.Ticker),
	}, "\n"))
}

func (c *Console) help() {
	var b strings.Builder
	for i, cmd := range DefaultCommands() {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "  %-14s %s", cmd.Usage(), cmd.Help)
	}
	c.println(b.String())
}

func (c *Console) printError(err error) {
	c.println(fmt.Sprintf(MsgFmtError, err))
}

func (c *Console) println(s string) {
	c.print(s + "\n")
}

func (c *Console) print(s string) {
	c.outMu.Lock()
	defer c.outMu.Unlock()
	_, _ = io.WriteString(c.out, s)
}
