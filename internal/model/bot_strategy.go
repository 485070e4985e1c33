package model

// Bot strategy constants
const (
	// BotStrategySmart ranks the longest feasible tier by tile value and
	// takes the highest-scoring placement
	BotStrategySmart = "smart"
	// BotStrategyLongest plays the first legal placement of the longest word
	BotStrategyLongest = "longest"
	// BotStrategyRandom plays a random feasible word at a random cell
	BotStrategyRandom = "random"
	// BotStrategyCustom uses the configured placement policy and word ordering
	BotStrategyCustom = "custom"
)

// BotStrategyDisplayName returns a human-readable label for a strategy
func BotStrategyDisplayName(strategy string) string {
	switch strategy {
	case BotStrategySmart:
		return "Smart"
	case BotStrategyLongest:
		return "Longest Word"
	case BotStrategyRandom:
		return "Random"
	case BotStrategyCustom:
		return "Custom"
	default:
		return strategy
	}
}

// ValidBotStrategies returns all valid bot strategy names
func ValidBotStrategies() []string {
	return []string{BotStrategySmart, BotStrategyLongest, BotStrategyRandom, BotStrategyCustom}
}

// IsValidBotStrategy reports whether name is a known strategy
func IsValidBotStrategy(name string) bool {
	for _, s := range ValidBotStrategies() {
		if s == name {
			return true
		}
	}
	return false
}
