package entity

const (
	// SettingsScope is the fixed key of the singleton settings record
	SettingsScope = "global"

	// DefaultBudget is the lending budget used until an operator sets one
	DefaultBudget float64 = 30000000

	// DefaultRankProfit is the rank profit used until an operator sets one
	DefaultRankProfit float64 = 0
)

// SettingsField names a numeric field of the singleton settings record
type SettingsField string

const (
	SettingsBudget     SettingsField = "budget"
	SettingsRankProfit SettingsField = "rankProfit"
)

// Settings holds system-wide values
type Settings struct {
	Budget     float64 `json:"budget"`
	RankProfit float64 `json:"rankProfit"`
}

// DefaultSettings returns the settings a fresh deployment starts with
func DefaultSettings() Settings {
	return Settings{
		Budget:     DefaultBudget,
		RankProfit: DefaultRankProfit,
	}
}
