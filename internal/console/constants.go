package console

// Command names
const (
	CmdExplore  = "explore"
	CmdPlant    = "plant"
	CmdBuy      = "buy"
	CmdUpgrades = "upgrades"
	CmdStatus   = "status"
	CmdRate     = "rate"
	CmdSave     = "save"
	CmdHelp     = "help"
	CmdQuit     = "quit"
)

// Prompt is printed before every command
const Prompt = "> "

// Player-facing output
const (
	MsgWelcome          = "Martian Potato. Type 'help' for commands."
	MsgGoodbye          = "Saving and heading back to the habitat."
	MsgFmtUnknown       = "Unknown command %q. Type 'help' for commands."
	MsgFmtDidYouMean    = "(reading %q as %q)"
	MsgFmtUsage         = "Usage: %s"
	MsgFmtPlanted       = "Planted a potato. You now have %s."
	MsgFmtNotAffordable = "%s costs %s potatoes; you have %s."
	MsgFmtRateSet       = "Exploration rate set to %s."
	MsgSaved            = "Game saved."
	MsgFmtError         = "Something went wrong: %v"
	MsgNoUpgrades       = "No upgrades on offer."
	MsgFmtUpgradeLine   = "  [%d] %-20s %8s potatoes%s"
	MsgAffordableMark   = "  *"
	MsgFmtStatusLine    = "Potatoes: %s  Water: %s  Nutrients: %s  Ice: %s"
	MsgFmtPlantingLine  = "Planting: %s per potato, %s auto-planters (%s dormant), next costs %s"
	MsgFmtRoverLine     = "Rover: rate %s, %s"
	MsgFmtNotice        = "[%s] %s: %s"
)

// StatusDigits is the precision for resource amounts
const StatusDigits = 1
