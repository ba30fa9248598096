package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/OnurLexa/DreamGen/models"
)

const (
	embedColor     = 0x2ecc71
	maxPromptChars = 3500
	maxFieldChars  = 1024
)

// resultEmbed builds the settings summary attached to every delivered image.
// seed is the seed the artifact actually used (may be nil).
func resultEmbed(req models.GenerationRequest, seed *int64) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "🖼️ Image generated",
		Description: fmt.Sprintf("**Prompt:** %s", truncate(req.Prompt, maxPromptChars)),
		Color:       embedColor,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Generated with Stability AI"},
	}

	if req.NegativePrompt != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Negative prompt",
			Value: truncate(req.NegativePrompt, maxFieldChars),
		})
	}

	seedText := "random"
	if seed != nil {
		seedText = fmt.Sprintf("%d", *seed)
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name: "Settings",
		Value: fmt.Sprintf("Model: `%s`\nSeed: `%s`\n%dx%dpx • Steps: `%d` • Samples: `%d` • CFG: `%.1f`",
			req.Model, seedText, req.Width, req.Height, req.Steps, req.Samples, req.CfgScale),
	})

	return embed
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
