package whatsapp

import (
	"context"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/skip2/go-qrcode"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	"google.golang.org/protobuf/proto"
)

type Config struct {
	DataDir string
	// CountryCode is prepended to national numbers, e.g. "1" or "972"
	CountryCode string
}

// Service shares contact cards over a linked WhatsApp device
type Service struct {
	client *whatsmeow.Client
	cfg    *Config
	log    zerolog.Logger
}

// NewService creates a new WhatsApp service backed by a SQLite device store in DataDir
func NewService(ctx context.Context, cfg *Config, logger zerolog.Logger) (*Service, error) {
	container, err := sqlstore.New(ctx, "sqlite3", fmt.Sprintf("file:%s/whatsmeow.db?_foreign_keys=on", cfg.DataDir), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create database: %w", err)
	}

	deviceStore, err := container.GetFirstDevice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get device: %w", err)
	}

	service := &Service{
		client: whatsmeow.NewClient(deviceStore, nil),
		cfg:    cfg,
		log:    logger.With().Str("component", "WhatsApp").Logger(),
	}
	service.client.AddEventHandler(service.eventHandler)

	return service, nil
}

// NormalizePhoneNumber reduces a phone number to the digits WhatsApp expects.
// Numbers written with a leading "+" or "00", or longer than ten digits, are taken
// as international; anything else is national and gets countryCode in place of
// its trunk "0".
func NormalizePhoneNumber(phoneNumber, countryCode string) string {
	trimmed := strings.TrimSpace(phoneNumber)
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, trimmed)

	switch {
	case strings.HasPrefix(trimmed, "+"):
		return digits
	case strings.HasPrefix(digits, "00"):
		return digits[2:]
	case countryCode == "" || len(digits) > 10:
		return digits
	}
	return countryCode + strings.TrimPrefix(digits, "0")
}

// Connect connects to WhatsApp, printing a login QR code when the device is not linked yet
func (s *Service) Connect(ctx context.Context) error {
	if s.client.Store.ID != nil {
		if err := s.client.Connect(); err != nil {
			return fmt.Errorf("failed to connect: %w", err)
		}
		return nil
	}

	qrChan, err := s.client.GetQRChannel(ctx)
	if err != nil {
		return fmt.Errorf("failed to get QR channel: %w", err)
	}
	if err := s.client.Connect(); err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	for evt := range qrChan {
		if evt.Event != "code" {
			s.log.Info().Str("event", evt.Event).Msg("Login event")
			continue
		}
		q, err := qrcode.New(evt.Code, qrcode.Medium)
		if err != nil {
			fmt.Printf("QR Code: %s\n", evt.Code)
			continue
		}
		fmt.Println("\n" + q.ToSmallString(false))
		fmt.Println("📱 Scan the QR code above from WhatsApp > Settings > Linked Devices")
	}
	return nil
}

// Disconnect disconnects from WhatsApp
func (s *Service) Disconnect() {
	s.client.Disconnect()
}

// ShareContact sends a contact card message to a phone number
func (s *Service) ShareContact(ctx context.Context, phoneNumber, displayName, vcard string) error {
	jid, err := s.resolve(ctx, phoneNumber)
	if err != nil {
		return err
	}

	s.log.Debug().Str("jid", jid.String()).Str("contact", displayName).Msg("Sending contact card")

	resp, err := s.client.SendMessage(ctx, jid, &waE2E.Message{
		ContactMessage: &waE2E.ContactMessage{
			DisplayName: proto.String(displayName),
			Vcard:       proto.String(vcard),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send contact card to %s: %w", jid.String(), err)
	}

	s.log.Info().Str("id", string(resp.ID)).Time("timestamp", resp.Timestamp).Msg("Contact card sent")
	return nil
}

// resolve verifies the number is registered on WhatsApp and returns its JID
func (s *Service) resolve(ctx context.Context, phoneNumber string) (types.JID, error) {
	phoneNumber = NormalizePhoneNumber(phoneNumber, s.cfg.CountryCode)

	resp, err := s.client.IsOnWhatsApp(ctx, []string{"+" + phoneNumber})
	if err != nil {
		return types.JID{}, fmt.Errorf("failed to verify number on WhatsApp: %w", err)
	}
	if len(resp) == 0 || !resp[0].IsIn {
		return types.JID{}, fmt.Errorf("number %s is not registered on WhatsApp", phoneNumber)
	}
	return resp[0].JID, nil
}

// eventHandler logs connection events; incoming messages are not handled
func (s *Service) eventHandler(evt interface{}) {
	switch evt := evt.(type) {
	case *events.Message:
		if !evt.Info.IsFromMe {
			s.log.Debug().Str("sender", evt.Info.Sender.String()).Msg("Ignoring incoming message")
		}
	case *events.Connected:
		s.log.Info().Msg("Connected to WhatsApp")
	case *events.Disconnected:
		s.log.Info().Msg("Disconnected from WhatsApp")
	case *events.LoggedOut:
		s.log.Info().Msg("Logged out from WhatsApp")
	}
}
