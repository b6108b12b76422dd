package handlers

import (
	"github.com/priscillalife/site-api/internal/content"
	"github.com/priscillalife/site-api/internal/mailer"
	"github.com/priscillalife/site-api/internal/ratelimit"
	"github.com/priscillalife/site-api/pkg/config"
)

type Handlers struct {
	cfg     *config.Config
	limiter *ratelimit.Limiter
	mail    mailer.Mailer
	content *content.Client // nil when no content store is configured
}

func New(cfg *config.Config, limiter *ratelimit.Limiter, mail mailer.Mailer, contentClient *content.Client) *Handlers {
	return &Handlers{
		cfg:     cfg,
		limiter: limiter,
		mail:    mail,
		content: contentClient,
	}
}
