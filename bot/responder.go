package bot

import (
	"bytes"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/OnurLexa/DreamGen/models"
)

// interactionResponder adapts one Discord interaction to logic.Responder.
// Rejections and notices are ephemeral, delivered images are public.
type interactionResponder struct {
	session     *discordgo.Session
	interaction *discordgo.InteractionCreate
	acked       bool
}

func (r *interactionResponder) Ack() error {
	err := r.session.InteractionRespond(r.interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err == nil {
		r.acked = true
	}
	return err
}

func (r *interactionResponder) Reject(msg string) error {
	return r.sendEphemeral(msg)
}

func (r *interactionResponder) Notify(msg string) error {
	return r.sendEphemeral(msg)
}

func (r *interactionResponder) Deliver(idx int, art models.Artifact, req models.GenerationRequest) error {
	filename := fmt.Sprintf("stability_%d_%d.png", time.Now().Unix(), idx+1)
	_, err := r.session.FollowupMessageCreate(r.interaction.Interaction, true, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{resultEmbed(req, art.Seed)},
		Files: []*discordgo.File{{
			Name:        filename,
			ContentType: "image/png",
			Reader:      bytes.NewReader(art.Data),
		}},
	})
	return err
}

// sendEphemeral picks the right send primitive depending on whether the
// interaction was already acknowledged.
func (r *interactionResponder) sendEphemeral(msg string) error {
	if !r.acked {
		return r.session.InteractionRespond(r.interaction.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: msg,
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
	}
	_, err := r.session.FollowupMessageCreate(r.interaction.Interaction, true, &discordgo.WebhookParams{
		Content: msg,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	return err
}
