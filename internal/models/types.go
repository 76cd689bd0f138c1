package models

// Choice is one selectable answer for a question, pairing the numeric
// score (1..4) with its display label.
type Choice struct {
	Score int    `json:"score"`
	Label string `json:"text"`
}

// Question is a single survey item. Reverse records whether the item is
// worded so that a higher raw answer means lower stress; it is carried
// for display and documentation, the scoring engine keeps its own
// authoritative reverse table.
type Question struct {
	ID      int      `json:"id"`
	Text    string   `json:"text"`
	Reverse bool     `json:"reverse"`
	Choices []Choice `json:"scores"`
}

// Block groups consecutive questions under an optional sub-instruction
// (e.g. "how freely can you talk to the following people?").
type Block struct {
	Title     string     `json:"title,omitempty"`
	Questions []Question `json:"questions"`
}

// Theme is a top-level survey section with its instruction text.
type Theme struct {
	Theme  string  `json:"theme"`
	Blocks []Block `json:"questions"`
}
