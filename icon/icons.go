package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Fail Icon = iota
	Success
	Warn
	Info
	Question
	Playing
	Paused
	Stopped
	Watched
	Progress
	History
	Trash
	Link
	Key
)

var icons = map[Icon]*iconDef{
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "x",
		kaomoji: "(×_×)",
		squares: "🟥",
	},
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "✓",
		kaomoji: "(ᵔᴥᵔ)",
		squares: "🟩",
	},
	Warn: {
		emoji:   "⚠️",
		nerd:    "",
		plain:   "!",
		kaomoji: "(ー_ー)!!",
		squares: "🟨",
	},
	Info: {
		emoji:   "ℹ️",
		nerd:    "",
		plain:   "i",
		kaomoji: "(°ロ°)",
		squares: "🟦",
	},
	Question: {
		emoji:   "❓",
		nerd:    "",
		plain:   "?",
		kaomoji: "(・・?)",
		squares: "🟪",
	},
	Playing: {
		emoji:   "▶️",
		nerd:    "",
		plain:   ">",
		kaomoji: "(ﾉ◕ヮ◕)ﾉ",
		squares: "🟩",
	},
	Paused: {
		emoji:   "⏸️",
		nerd:    "",
		plain:   "||",
		kaomoji: "(￣o￣) zzZ",
		squares: "🟨",
	},
	Stopped: {
		emoji:   "⏹️",
		nerd:    "",
		plain:   "[]",
		kaomoji: "(-_-)",
		squares: "⬛",
	},
	Watched: {
		emoji:   "✅",
		nerd:    "",
		plain:   "*",
		kaomoji: "(⌐■_■)",
		squares: "🟩",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "~",
		kaomoji: "(・_・)",
		squares: "🟨",
	},
	History: {
		emoji:   "📜",
		nerd:    "",
		plain:   "#",
		kaomoji: "(｀・ω・´)",
		squares: "🟫",
	},
	Trash: {
		emoji:   "🗑️",
		nerd:    "",
		plain:   "-",
		kaomoji: "(╯°□°)╯",
		squares: "🟥",
	},
	Link: {
		emoji:   "🔗",
		nerd:    "",
		plain:   "@",
		kaomoji: "(•‿•)",
		squares: "🟦",
	},
	Key: {
		emoji:   "🔑",
		nerd:    "",
		plain:   "k",
		kaomoji: "(¬‿¬)",
		squares: "🟧",
	},
}
