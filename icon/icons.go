package icon

type Icon int

const (
	Fail Icon = iota
	Success
	Progress
	Mark
	Link
	Upload
	Play
	Search
)

var icons = map[Icon]*iconDef{
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "X",
		kaomoji: "(×_×)",
		squares: "🟥",
	},
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "✓",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "~",
		kaomoji: "(・_・;)",
		squares: "🟨",
	},
	Mark: {
		emoji:   "✅",
		nerd:    "",
		plain:   "*",
		kaomoji: "(*^▽^*)",
		squares: "🟪",
	},
	Link: {
		emoji:   "🔗",
		nerd:    "",
		plain:   "->",
		kaomoji: "(‿‿)",
		squares: "🟦",
	},
	Upload: {
		emoji:   "📤",
		nerd:    "",
		plain:   "^",
		kaomoji: "(ノ°▽°)ノ",
		squares: "🟧",
	},
	Play: {
		emoji:   "▶️",
		nerd:    "",
		plain:   ">",
		kaomoji: "(▰˘◡˘▰)",
		squares: "⬛",
	},
	Search: {
		emoji:   "🔍",
		nerd:    "",
		plain:   "?",
		kaomoji: "(・・?)",
		squares: "🟫",
	},
}
