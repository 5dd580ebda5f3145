package handlers

import (
	"context"

	"nf-demos/go_backend/internal/app/config"
	"nf-demos/go_backend/internal/domain/catalog"
	"nf-demos/go_backend/internal/domain/contact"
	"nf-demos/go_backend/internal/domain/quote"
	"nf-demos/go_backend/internal/infra/mail"
)

// Store is what the handlers need from the database. *postgres.DB satisfies it.
type Store interface {
	SearchProducts(ctx context.Context, search string) ([]catalog.Product, error)
	InsertContact(ctx context.Context, c contact.Contact) error
}

type Handlers struct {
	Store   Store
	Cfg     config.Config
	Pricing quote.Pricing
	Mail    *mail.Mailer
}

func New(store Store, cfg config.Config) *Handlers {
	return &Handlers{
		Store: store,
		Cfg:   cfg,
		Pricing: quote.Pricing{
			FreeRadiusKm: cfg.TravelFreeRadiusKm,
			RatePerKm:    cfg.TravelRatePerKm,
		},
		Mail: &mail.Mailer{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUser,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		},
	}
}
