package service

import (
	"regexp"
	"strconv"
	"strings"
)

// BlockKind is the role of one line of recipe markup.
type BlockKind string

const (
	BlockHeading1  BlockKind = "heading1"
	BlockHeading2  BlockKind = "heading2"
	BlockHeading3  BlockKind = "heading3"
	BlockBullet    BlockKind = "bullet"
	BlockStep      BlockKind = "step"
	BlockParagraph BlockKind = "paragraph"
)

type RecipeBlock struct {
	Kind   BlockKind `json:"kind"`
	Text   string    `json:"text"`
	Number int       `json:"number,omitempty"` // steps only
}

var stepPrefix = regexp.MustCompile(`^(\d+)\.\s*(.*)$`)

// ParseRecipeMarkup splits text into blocks by line prefix: "###", "##",
// "#" headings, "-" bullets, "N." steps, anything else a paragraph.
// Blank lines are dropped.
func ParseRecipeMarkup(text string) []RecipeBlock {
	var blocks []RecipeBlock
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		blocks = append(blocks, classifyLine(line))
	}
	return blocks
}

func classifyLine(line string) RecipeBlock {
	switch {
	case strings.HasPrefix(line, "###"):
		return RecipeBlock{Kind: BlockHeading3, Text: strings.TrimSpace(line[3:])}
	case strings.HasPrefix(line, "##"):
		return RecipeBlock{Kind: BlockHeading2, Text: strings.TrimSpace(line[2:])}
	case strings.HasPrefix(line, "#"):
		return RecipeBlock{Kind: BlockHeading1, Text: strings.TrimSpace(line[1:])}
	case strings.HasPrefix(line, "-"):
		return RecipeBlock{Kind: BlockBullet, Text: strings.TrimSpace(line[1:])}
	}
	if m := stepPrefix.FindStringSubmatch(line); m != nil {
		n, _ := strconv.Atoi(m[1])
		return RecipeBlock{Kind: BlockStep, Number: n, Text: strings.TrimSpace(m[2])}
	}
	return RecipeBlock{Kind: BlockParagraph, Text: strings.TrimSpace(line)}
}
