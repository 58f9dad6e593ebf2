package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"wisekey/internal/auth"
	"wisekey/internal/config"
	"wisekey/internal/db"
	"wisekey/internal/model"
	"wisekey/internal/repository"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
func boolPtr(b bool) *bool        { return &b }

func main() {
	log.Println("Starting seed script...")

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Property{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	propertyRepo := repository.NewPropertyRepository(gormDB)

	demoUsers := []struct {
		email    string
		password string
		fullName string
		role     string
	}{
		{"seller@example.com", "secret1", "Demo Seller", "seller"},
		{"agent@example.com", "secret2", "Demo Agent", "agent"},
	}

	seeded := make(map[string]uint)
	for _, u := range demoUsers {
		if existing, err := userRepo.FindByEmail(ctx, u.email); err == nil {
			log.Printf("User %s already exists, skipping", u.email)
			seeded[u.email] = existing.ID
			continue
		}
		hash, err := auth.HashPassword(u.password, cfg.BcryptCost)
		if err != nil {
			log.Fatalf("hash password: %v", err)
		}
		user := &model.User{
			Email:        u.email,
			PasswordHash: hash,
			FullName:     u.fullName,
			Role:         u.role,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("create user %s: %v", u.email, err)
		}
		seeded[u.email] = user.ID
		log.Printf("Seeded user %s (id=%d)", u.email, user.ID)
	}

	demoProperties := []*model.Property{
		{
			OwnerID:         seeded["seller@example.com"],
			Title:           "Sunny two-bedroom in Vake",
			TransactionType: strPtr("buy"),
			City:            strPtr("Tbilisi"),
			District:        strPtr("Vake"),
			Currency:        strPtr("USD"),
			Price:           floatPtr(145000),
			AreaSqm:         floatPtr(78.5),
			Rooms:           intPtr(3),
			Bedrooms:        intPtr(2),
			Bathrooms:       intPtr(1),
			Floor:           intPtr(4),
			TotalFloors:     intPtr(9),
			Condition:       strPtr("new_renov"),
			HasBalcony:      boolPtr(true),
		},
		{
			OwnerID:         seeded["agent@example.com"],
			Title:           "Studio for rent near Rustaveli",
			TransactionType: strPtr("rent"),
			City:            strPtr("Tbilisi"),
			District:        strPtr("Mtatsminda"),
			Currency:        strPtr("GEL"),
			Price:           floatPtr(1200),
			AreaSqm:         floatPtr(41),
			Rooms:           intPtr(1),
			PetsAllowed:     boolPtr(false),
			Furnished:       strPtr("full"),
		},
	}

	for _, p := range demoProperties {
		if p.OwnerID == 0 {
			continue
		}
		if err := propertyRepo.Create(ctx, p); err != nil {
			log.Fatalf("create property %q: %v", p.Title, err)
		}
		log.Printf("Seeded property %q (id=%d)", p.Title, p.ID)
	}

	log.Println("Seed completed")
}
