package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with an admin account, default payment methods and the site settings row.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		if clearData {
			for _, table := range []string{"payment_methods", "site_settings", "admin_users"} {
				if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared seedable tables")
		}

		adminEmail := "sanjay@wildfolio.com"
		adminName := "Sanjay"
		password := "changeme"
		hash, err := bcrypt.GenerateFromPassword([]byte(password), cfg.Security.BCryptCost)
		if err != nil {
			log.Fatalf("failed to hash admin password: %v", err)
		}

		var exists int
		adminExists := false
		if err := db.QueryRow("SELECT 1 FROM admin_users WHERE email = $1", adminEmail).Scan(&exists); err == nil {
			fmt.Println("admin user already exists:", adminEmail)
			adminExists = true
		}

		if !adminExists {
			if _, err := db.Exec(
				"INSERT INTO admin_users (email, name, password_hash, is_active, created_at, updated_at) VALUES ($1, $2, $3, true, now(), now())",
				adminEmail, adminName, string(hash),
			); err != nil {
				log.Fatalf("failed to insert admin user: %v", err)
			}
			fmt.Println("Seeded admin user:", adminEmail)
		}

		methods := []struct {
			Name    string
			Type    string
			Details string
		}{
			{"eSewa", "digital", `{"provider": "eSewa", "identifier": "9841000000"}`},
			{"Bank Transfer", "bank", `{"bank_name": "Nabil Bank", "account_number": "0123456789012345"}`},
		}

		for _, m := range methods {
			if err := db.QueryRow("SELECT 1 FROM payment_methods WHERE name = $1", m.Name).Scan(&exists); err == nil {
				continue
			}
			if _, err := db.Exec(
				"INSERT INTO payment_methods (name, type, details, is_active, created_at, updated_at) VALUES ($1, $2, $3, true, now(), now())",
				m.Name, m.Type, m.Details,
			); err != nil {
				log.Fatalf("failed to insert payment method %s: %v", m.Name, err)
			}
			fmt.Println("Seeded payment method:", m.Name)
		}

		if err := db.QueryRow("SELECT 1 FROM site_settings").Scan(&exists); err != nil {
			if _, err := db.Exec(
				"INSERT INTO site_settings (site_title, tagline, about_text, social_links, updated_at) VALUES ($1, $2, $3, $4, now())",
				"Wildfolio", "Wildlife through the lens", "", `{}`,
			); err != nil {
				log.Fatalf("failed to insert site settings: %v", err)
			}
			fmt.Println("Seeded site settings row")
		}

		fmt.Println("Seeding complete")
	},
}
