package domain

// GameState is the full read model handed to displays and API clients.
type GameState struct {
	Resources   Resources        `json:"resources"`
	Planting    PlantingState    `json:"planting"`
	Exploration ExplorationState `json:"exploration"`
	Settings    Settings         `json:"settings"`
}
