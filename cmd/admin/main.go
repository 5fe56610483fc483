package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"complaintdesk/backend/internal/config"
	"complaintdesk/backend/internal/models"
	"complaintdesk/backend/internal/storage"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	storageSvc := storage.NewStorageService(db, nil, "") // No redis needed for admin CLI

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		fmt.Println("Commands: show <complaint_id> | recent [limit]")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "show":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin show <complaint_id>")
			os.Exit(1)
		}
		id, err := strconv.Atoi(os.Args[2])
		if err != nil {
			fmt.Println("Invalid complaint ID. Please provide an integer.")
			os.Exit(1)
		}
		complaint, err := storageSvc.GetComplaintByID(uint(id))
		if err != nil {
			log.Fatalf("Error loading complaint: %v", err)
		}
		printComplaint(complaint)
	case "recent":
		limit := 10
		if len(os.Args) > 2 {
			limit, err = strconv.Atoi(os.Args[2])
			if err != nil || limit < 1 {
				fmt.Println("Invalid limit. Please provide a positive integer.")
				os.Exit(1)
			}
		}
		complaints, err := storageSvc.ListRecentComplaints(limit)
		if err != nil {
			log.Fatalf("Error listing complaints: %v", err)
		}
		for i := range complaints {
			printComplaint(&complaints[i])
			fmt.Println("---")
		}
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}

func printComplaint(c *models.Complaint) {
	fmt.Printf("#%d [%s] %s\n", c.ID, c.Status, c.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("  text:      %s\n", c.Text)
	fmt.Printf("  sentiment: %s", c.Sentiment)
	if c.Confidence != nil {
		fmt.Printf(" (%.2f)", *c.Confidence)
	}
	fmt.Println()
	fmt.Printf("  ip:        %s", c.IPAddress)
	if c.IPCountry != nil {
		fmt.Printf(" (%s", *c.IPCountry)
		if c.IPCity != nil && *c.IPCity != "" {
			fmt.Printf(", %s", *c.IPCity)
		}
		fmt.Print(")")
	}
	fmt.Println()
}
