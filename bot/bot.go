package bot

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/OnurLexa/DreamGen/logic"
	"github.com/OnurLexa/DreamGen/models"
)

const commandName = "resim"

// Bot owns the Discord session and forwards the /resim slash command into
// the generation pipeline. It is thin plumbing: every decision happens in
// logic.Pipeline.
type Bot struct {
	session  *discordgo.Session
	pipeline *logic.Pipeline
	guildID  string // when set, commands register per-guild (instant sync)
}

func New(token string, pipeline *logic.Pipeline, guildID string) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}
	return &Bot{session: session, pipeline: pipeline, guildID: guildID}, nil
}

// Start opens the gateway connection and registers the slash command.
func (b *Bot) Start() error {
	b.session.AddHandler(b.onInteraction)
	b.session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		zap.L().Info("bot ready",
			zap.String("username", r.User.Username),
			zap.String("id", r.User.ID))
	})

	if err := b.session.Open(); err != nil {
		return err
	}

	_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.guildID, resimCommand())
	if err != nil {
		b.session.Close()
		return fmt.Errorf("register command failed: %w", err)
	}
	return nil
}

func (b *Bot) Close() {
	_ = b.session.Close()
}

func resimCommand() *discordgo.ApplicationCommand {
	dimensionChoices := []*discordgo.ApplicationCommandOptionChoice{
		{Name: "256", Value: 256},
		{Name: "512", Value: 512},
		{Name: "768", Value: 768},
		{Name: "1024", Value: 1024},
	}

	return &discordgo.ApplicationCommand{
		Name:        commandName,
		Description: "Generate an image with Stability AI (text-to-image)",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "prompt",
				Description: "Prompt for the image (required)",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "negative_prompt",
				Description: "Things you do not want in the image",
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "steps",
				Description: "Denoise steps (20-80 recommended)",
			},
			{
				Type:        discordgo.ApplicationCommandOptionNumber,
				Name:        "cfg_scale",
				Description: "How closely to follow the prompt (4-20 recommended)",
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "width",
				Description: "Width (256/512/768/1024)",
				Choices:     dimensionChoices,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "height",
				Description: "Height (256/512/768/1024)",
				Choices:     dimensionChoices,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "samples",
				Description: "How many images per request (1-4)",
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "seed",
				Description: "Optional seed, the same seed reproduces the result",
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "model",
				Description: "Model id (optional, defaults to STABILITY_MODEL)",
			},
		},
	}
}

func (b *Bot) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	data := i.ApplicationCommandData()
	if data.Name != commandName {
		return
	}

	req := parseOptions(i, data.Options)
	resp := &interactionResponder{session: s, interaction: i}

	if err := b.pipeline.Handle(context.Background(), req, resp); err != nil {
		zap.L().Warn("resim request ended with error",
			zap.String("user_id", req.UserID), zap.Error(err))
	}
}

// parseOptions maps the slash-command options onto a GenerationRequest,
// applying the same defaults the command advertises.
func parseOptions(i *discordgo.InteractionCreate, opts []*discordgo.ApplicationCommandInteractionDataOption) models.GenerationRequest {
	user := interactionUser(i)
	req := models.GenerationRequest{
		UserID:   user.ID,
		Username: user.String(),
	}

	for _, opt := range opts {
		switch opt.Name {
		case "prompt":
			req.Prompt = opt.StringValue()
		case "negative_prompt":
			req.NegativePrompt = opt.StringValue()
		case "steps":
			req.Steps = int(opt.IntValue())
		case "cfg_scale":
			req.CfgScale = opt.FloatValue()
		case "width":
			req.Width = int(opt.IntValue())
		case "height":
			req.Height = int(opt.IntValue())
		case "samples":
			req.Samples = int(opt.IntValue())
		case "seed":
			seed := opt.IntValue()
			req.Seed = &seed
		case "model":
			req.Model = opt.StringValue()
		}
	}
	return req
}

func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}
