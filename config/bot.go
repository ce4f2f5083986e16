package config

// BotDifficulty affects how well the server autoplayer keeps time
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

// BotDifficultyConfig holds tuning values for bot behavior at a specific difficulty
type BotDifficultyConfig struct {
	BeatsPerTrigger int     // trigger an instrument every N beats
	CounterChance   float64 // probability a counter window gets resolved
	ReactionMs      int64   // delay before the bot reacts to a counter window
	UseUltimate     bool
}

// BotConfigData holds all bot-related configuration
type BotConfigData struct {
	Difficulties map[BotDifficulty]BotDifficultyConfig
	// Beat progress above which the bot considers itself "on the beat"
	OnBeatProgress float64
}

// Bot holds bot AI configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		OnBeatProgress: 0.9,
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				BeatsPerTrigger: 2,
				CounterChance:   0.4,
				ReactionMs:      900,
				UseUltimate:     false,
			},
			BotDifficultyNormal: {
				BeatsPerTrigger: 1,
				CounterChance:   0.75,
				ReactionMs:      500,
				UseUltimate:     true,
			},
			BotDifficultyHard: {
				BeatsPerTrigger: 1,
				CounterChance:   1.0,
				ReactionMs:      200,
				UseUltimate:     true,
			},
		},
	}
}
