package domain

import "strconv"

const PromptSeparator = "\n\n###\n\n"

type TrainingEntry struct {
	Prompt     string
	Completion string
}

func NewTrainingEntry(title string, category Category) TrainingEntry {
	return TrainingEntry{
		Prompt:     title + PromptSeparator,
		Completion: " " + strconv.Itoa(int(category)),
	}
}
