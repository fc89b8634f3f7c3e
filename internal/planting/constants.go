package planting

// NoTier is the tier before any linear upgrade is bought
const NoTier = -1

// Notice text
const (
	NoticeTitlePlanting = "Planting"
	NoticeTitleUpgrade  = "Upgrade"

	MsgFmtPlantWait         = "Please wait %d seconds before planting again."
	MsgNotEnoughToPlant     = "Not enough water, nutrients or ice to plant."
	MsgFmtUpgradeBought     = "%s installed. Planting now takes %s."
	MsgFmtAutoPlanterBought = "Auto-Planter #%s is online. The next one costs %s potatoes."
	MsgPlanterStalled       = "An auto-planter ran out of water, nutrients or ice and stopped."
	MsgFmtPlantersRestarted = "%s auto-planter(s) are back to work."
)

// Log messages
const (
	LogMsgUpgradePurchased    = "Upgrade purchased"
	LogMsgUpgradeUnaffordable = "Upgrade not affordable"
	LogMsgUnitStarted         = "Auto-planter started"
	LogMsgUnitDormant         = "Auto-planter went dormant"
	LogMsgUnitsRestarted      = "Auto-planters restarted"
	LogMsgPlantRefused        = "Manual planting refused by cooldown"
	LogMsgPlantShort          = "Manual planting lacked resources"
	LogMsgStateRestored       = "Planting state restored"
	LogMsgStopped             = "Planting timers stopped"
)
