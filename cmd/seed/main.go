package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"

	"cardledger/internal/config"
	"cardledger/internal/db"
	"cardledger/internal/model"
	"cardledger/internal/repository"
)

// demoCard describes one card to seed.
type demoCard struct {
	BankName    string
	CardName    string
	Network     string
	LastFour    string
	CreditLimit string
	BillDay     int
	DueDay      int
	Color       string
}

var demoCards = []demoCard{
	{"HDFC Bank", "Millennia", "Visa", "4821", "150000", 5, 25, "#1F4B8E"},
	{"ICICI Bank", "Amazon Pay", "Visa", "1907", "200000", 12, 3, "#B8860B"},
	{"State Bank of India (SBI)", "SimplyCLICK", "Mastercard", "7736", "80000", 28, 18, "#2B7A78"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Card{}, &model.BillCycle{}, &model.Payment{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	cardRepo := repository.NewCardRepository(gormDB)
	ctx := context.Background()

	created := 0
	for _, item := range demoCards {
		limit, err := decimal.NewFromString(item.CreditLimit)
		if err != nil {
			log.Printf("Skipping card %s with invalid limit: %s", item.CardName, item.CreditLimit)
			continue
		}

		card := &model.Card{
			BankName:    item.BankName,
			CardName:    item.CardName,
			Network:     item.Network,
			LastFour:    item.LastFour,
			CreditLimit: limit,
			BillDay:     item.BillDay,
			DueDay:      item.DueDay,
			Color:       item.Color,
		}
		if err := cardRepo.Create(ctx, card); err != nil {
			log.Fatalf("Failed to create card %s: %v", item.CardName, err)
		}
		log.Printf("Seeded card %s (%s ****%s)", card.CardName, card.BankName, card.LastFour)
		created++
	}

	log.Printf("Seed complete: %d cards created", created)
}
