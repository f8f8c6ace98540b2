package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/rs/zerolog"

	"contacts-book/internal/collation"
	"contacts-book/internal/config"
	"contacts-book/internal/handler"
	"contacts-book/internal/models"
	"contacts-book/internal/storage"
	"contacts-book/internal/whatsapp"
)

func main() {
	fmt.Println("📇 Contacts")
	fmt.Println("===========")

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	level, _ := cfg.Level()
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load the initial contacts once; a bad bundle only leaves the list short
	store := storage.NewStore(collation.English(), logger)
	store.Seed(ctx, contactSource(cfg))

	var sharer handler.Sharer
	if cfg.WhatsAppEnabled {
		service, err := whatsapp.NewService(ctx, &whatsapp.Config{
			DataDir:     cfg.WhatsAppDataDir,
			CountryCode: cfg.WhatsAppCountryCode,
		}, logger)
		if err != nil {
			logger.Error().Err(err).Msg("WhatsApp sharing unavailable")
		} else if err := service.Connect(ctx); err != nil {
			logger.Error().Err(err).Msg("WhatsApp sharing unavailable")
		} else {
			defer service.Disconnect()
			sharer = service
		}
	}

	list := handler.NewListHandler(store, sharer, logger)

	done := make(chan struct{})
	go func() {
		startCLI(ctx, list)
		close(done)
	}()

	select {
	case <-ctx.Done():
		fmt.Println("\n\nShutting down...")
	case <-done:
	}
	fmt.Println("Goodbye! 👋")
}

func contactSource(cfg *config.Config) storage.Source {
	switch {
	case cfg.SeedDatabase != "":
		return storage.SQLiteSeed(cfg.SeedDatabase)
	case cfg.ContactsFile != "":
		return storage.FileBundle(cfg.ContactsFile)
	}
	return storage.EmbeddedBundle()
}

func startCLI(ctx context.Context, list *handler.ListHandler) {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Println("\nCommands:")
		fmt.Println("  1. List contacts")
		fmt.Println("  2. Search")
		fmt.Println("  3. New contact")
		fmt.Println("  4. Edit contact")
		fmt.Println("  5. Delete contact")
		fmt.Println("  6. Jump to letter")
		fmt.Println("  7. Show contact QR code")
		fmt.Println("  8. Share contact via WhatsApp")
		fmt.Println("  9. Exit")
		fmt.Print("\nEnter command (1-9): ")

		if !scanner.Scan() {
			return
		}

		switch strings.TrimSpace(scanner.Text()) {
		case "1":
			printList(list)
		case "2":
			search(scanner, list)
		case "3":
			editContact(scanner, list, models.NewContact())
		case "4":
			if c, ok := pickContact(scanner, list); ok {
				editContact(scanner, list, c)
			}
		case "5":
			if c, ok := pickContact(scanner, list); ok && list.Delete(c) {
				fmt.Printf("🗑  Deleted %s\n", c.DisplayText())
			}
		case "6":
			jumpToLetter(scanner, list)
		case "7":
			showQRCode(scanner, list)
		case "8":
			share(ctx, scanner, list)
		case "9":
			return
		default:
			fmt.Println("Invalid command. Please try again.")
		}
	}
}

func prompt(scanner *bufio.Scanner, label string) (string, bool) {
	fmt.Print(label)
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}

func printList(list *handler.ListHandler) {
	rows := list.Rows()
	if len(rows) == 0 {
		fmt.Println("\nNo Contacts")
		return
	}

	lastSection := -1
	for i, row := range rows {
		if row.Section != lastSection {
			lastSection = row.Section
			if row.Header != "" {
				fmt.Printf("\n%s\n%s\n", row.Header, strings.Repeat("-", 40))
			}
		}
		marker := "  "
		if row.Emergency {
			marker = "🚨"
		}
		fmt.Printf("%3d. %s %s\n", i+1, marker, row.Title)
	}
}

func pickContact(scanner *bufio.Scanner, list *handler.ListHandler) (models.Contact, bool) {
	printList(list)
	rows := list.Rows()
	if len(rows) == 0 {
		return models.Contact{}, false
	}

	text, ok := prompt(scanner, "\nEnter contact number: ")
	if !ok {
		return models.Contact{}, false
	}
	n, err := strconv.Atoi(text)
	if err != nil || n < 1 || n > len(rows) {
		fmt.Println("Invalid contact number.")
		return models.Contact{}, false
	}
	return rows[n-1].Contact, true
}

func search(scanner *bufio.Scanner, list *handler.ListHandler) {
	label := "Search (empty to clear): "
	if current := list.SearchText(); current != "" {
		label = fmt.Sprintf("Search [%s] (empty to clear): ", current)
	}
	text, ok := prompt(scanner, label)
	if !ok {
		return
	}
	list.Search(text)
	printList(list)
}

func jumpToLetter(scanner *bufio.Scanner, list *handler.ListHandler) {
	fmt.Println(strings.Join(list.IndexTitles(), " "))
	title, ok := prompt(scanner, "Letter: ")
	if !ok {
		return
	}

	view := list.View()
	section := view.SectionForIndexTitle(strings.ToUpper(title), -1)
	if section < 0 {
		fmt.Printf("No contacts under %q.\n", title)
		return
	}
	for row := 0; row < view.RowCount(section); row++ {
		c, _ := view.ContactAt(section, row)
		fmt.Printf("  %s\n", c.DisplayText())
	}
}

func showQRCode(scanner *bufio.Scanner, list *handler.ListHandler) {
	c, ok := pickContact(scanner, list)
	if !ok {
		return
	}
	qr, err := list.QRCode(c)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		return
	}
	fmt.Println("\n" + qr)
}

func share(ctx context.Context, scanner *bufio.Scanner, list *handler.ListHandler) {
	c, ok := pickContact(scanner, list)
	if !ok {
		return
	}
	phone, ok := prompt(scanner, "Send to phone number: ")
	if !ok {
		return
	}
	if err := list.Share(ctx, c, phone); err != nil {
		fmt.Printf("❌ %v\n", err)
		return
	}
	fmt.Println("✅ Contact shared!")
}

func editContact(scanner *bufio.Scanner, list *handler.ListHandler, c models.Contact) {
	detail := handler.NewDetailHandler(c)

	for {
		printForm(detail)
		key, ok := prompt(scanner, "\nField to edit, 'save', 'delete', 'debug' or 'cancel': ")
		if !ok {
			return
		}

		switch key {
		case "save":
			if err := list.Save(detail.Contact()); err != nil {
				fmt.Printf("❌ %v\n", err)
				continue
			}
			fmt.Println("✅ Saved")
			return
		case "delete":
			if !detail.CanRemove() || !list.Delete(detail.Contact()) {
				fmt.Println("Nothing to delete.")
				continue
			}
			fmt.Println("🗑  Deleted")
			return
		case "debug":
			fmt.Print("\n" + detail.DebugString())
			continue
		case "cancel", "":
			return
		}

		field, known := models.ParseField(key)
		if !known {
			fmt.Println("Unknown field.")
			continue
		}
		editField(scanner, detail, field)
	}
}

func editField(scanner *bufio.Scanner, detail *handler.DetailHandler, field models.Field) {
	switch field {
	case models.FieldEmergency:
		text, ok := prompt(scanner, "Emergency contact (y/n): ")
		if ok {
			detail.SetEmergency(models.ParseBool(text))
		}
	case models.FieldState:
		text, ok := prompt(scanner, "State name or abbreviation (-- to clear): ")
		if !ok {
			return
		}
		index := models.StateOptionIndex(text)
		if state, found := models.StateByAbbreviation(strings.ToUpper(text)); found {
			index = models.StateOptionIndex(state.Name())
		}
		if index == 0 && text != "--" {
			fmt.Println("Unknown state.")
			return
		}
		detail.SelectState(index)
	default:
		text, ok := prompt(scanner, fmt.Sprintf("%s (%s): ", field.Label(), field.InputMode()))
		if ok {
			detail.Update(field, text)
		}
	}
}

func printForm(detail *handler.DetailHandler) {
	invalid := make(map[models.Field]bool)
	for _, field := range detail.InvalidFields() {
		invalid[field] = true
	}

	fmt.Println()
	for _, section := range models.Sections() {
		for _, field := range section {
			value := detail.InputText(field)
			if field == models.FieldEmergency {
				value = strconv.FormatBool(detail.EmergencyFlag())
			}
			mark := " "
			if invalid[field] {
				mark = "✗"
			}
			fmt.Printf("  %s %-10s %-18s %s\n", mark, field.Key(), field.Label(), value)
		}
		fmt.Println()
	}

	if detail.Savable() {
		fmt.Println("Save: enabled")
	} else {
		fmt.Println("Save: disabled")
	}
}
