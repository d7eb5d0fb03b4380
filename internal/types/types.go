package types

type WordEntry struct {
	Word   string `yaml:"word" json:"word"`
	Prefix string `yaml:"prefix" json:"prefix"`
}

type WordList struct {
	Words []WordEntry `yaml:"words" json:"words"`
}

type Stats struct {
	Score  int `json:"score"`
	Lives  int `json:"lives"`
	Streak int `json:"streak"`
}
