// Seed binary: wipes and repopulates the "services" catalogue.
// Services are created out of band; the API itself never writes them.
package main

import (
	"context"
	"log"
	"time"

	"cardoctor/config"
	"cardoctor/database"
	"cardoctor/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

func main() {
	config.LoadConfig()

	client, err := database.Connect(context.Background(), config.AppConfig)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	serviceColl := client.Database(config.AppConfig.DatabaseName).Collection("services")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Clear existing services.
	if _, err := serviceColl.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear services collection: %v", err)
	}

	catalogue := []struct {
		Title       string
		Price       float64
		Img         string
		Description string
	}{
		{"Full Car Repair", 300, "https://i.ibb.co/Loq9zcy/1.jpg", "Complete mechanical and electrical inspection with repair."},
		{"Engine Repair", 150, "https://i.ibb.co/CmdTPKh/2.jpg", "Engine diagnostics, tuning and component replacement."},
		{"Automatic Gearbox", 250, "https://i.ibb.co/Jt3nKsC/3.jpg", "Transmission service for automatic gearboxes."},
		{"Engine Oil Change", 40, "https://i.ibb.co/rb4tLdn/4.jpg", "Oil and filter change with multipoint check."},
		{"Battery Charge", 25, "https://i.ibb.co/ZHqFsHs/5.jpg", "Battery test, charge and terminal cleaning."},
		{"Wheel Alignment", 60, "https://i.ibb.co/ZcpWKd1/6.jpg", "Four-wheel alignment and balancing."},
	}

	docs := make([]interface{}, 0, len(catalogue))
	for _, item := range catalogue {
		docs = append(docs, models.Service{
			Title:       item.Title,
			Price:       item.Price,
			Img:         item.Img,
			ServiceID:   uuid.New().String(),
			Description: item.Description,
		})
	}

	res, err := serviceColl.InsertMany(ctx, docs)
	if err != nil {
		log.Fatalf("Failed to seed services: %v", err)
	}
	log.Printf("Seeded %d services", len(res.InsertedIDs))
}
