package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"autoloc/internal/config"
	"autoloc/internal/database"
	"autoloc/internal/domain"
	"autoloc/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM consents")
	db.Exec("DELETE FROM favorites")
	db.Exec("DELETE FROM messages")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM vehicle_availability")
	db.Exec("DELETE FROM vehicles")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	vehicles := repository.NewVehicleRepository(db)
	slots := repository.NewAvailabilityRepository(db)
	bookings := repository.NewBookingRepository(db)

	// ================== USERS ==================
	log.Println("Creating users...")

	ownerHash, _ := bcrypt.GenerateFromPassword([]byte("owner123"), bcrypt.DefaultCost)
	owner := domain.User{
		ID:           uuid.NewString(),
		Email:        "marie@autoloc.fr",
		PasswordHash: string(ownerHash),
		Name:         "Marie Dubois",
		Phone:        "+33 6 12 34 56 78",
		Type:         domain.UserOwner,
	}
	if err := users.Create(ctx, &owner); err != nil {
		log.Fatal(err)
	}

	customers := make([]domain.User, 0, 3)
	customerEmails := []string{"pierre@gmail.com", "sophie@orange.fr", "lucas@free.fr"}
	customerNames := []string{"Pierre Martin", "Sophie Bernard", "Lucas Petit"}
	for i, email := range customerEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("client123"), bcrypt.DefaultCost)
		c := domain.User{
			ID:           uuid.NewString(),
			Email:        email,
			PasswordHash: string(hash),
			Name:         customerNames[i],
			Phone:        fmt.Sprintf("+33 6 98 76 54 %02d", 30+i),
			Type:         domain.UserCustomer,
		}
		if err := users.Create(ctx, &c); err != nil {
			log.Fatal(err)
		}
		customers = append(customers, c)
	}

	// ================== VEHICLES ==================
	log.Println("Creating vehicles...")

	lat := func(v float64) *float64 { return &v }

	seedVehicles := []domain.Vehicle{
		{
			Name:        "Renault Clio V",
			Type:        domain.VehicleCitadine,
			Description: "Citadine récente, parfaite pour la ville. Boîte manuelle, faible consommation.",
			PricePerDay: 3500,
			Address:     "12 Rue de la République, 69002 Lyon",
			Lat:         lat(45.7640),
			Lng:         lat(4.8357),
		},
		{
			Name:        "Peugeot 508 SW",
			Type:        domain.VehicleBerline,
			Description: "Berline familiale confortable, idéale pour les longs trajets.",
			PricePerDay: 6500,
			Address:     "45 Avenue des Champs-Élysées, 75008 Paris",
			Lat:         lat(48.8708),
			Lng:         lat(2.3053),
		},
		{
			Name:        "Dacia Duster",
			Type:        domain.VehicleSUV,
			Description: "SUV robuste, coffre spacieux, parfait pour les week-ends.",
			PricePerDay: 4500,
			Address:     "8 Place Bellecour, 69002 Lyon",
			Lat:         lat(45.7578),
			Lng:         lat(4.8320),
		},
		{
			Name:        "Renault Trafic",
			Type:        domain.VehicleUtilitaire,
			Description: "Utilitaire 9m3 pour déménagements. Hayon arrière, permis B.",
			PricePerDay: 8000,
			Address:     "3 Rue Garibaldi, 69003 Lyon",
			Lat:         lat(45.7600),
			Lng:         lat(4.8500),
		},
		{
			Name:        "BMW Série 4 Cabriolet",
			Type:        domain.VehicleCabriolet,
			Description: "Cabriolet élégant pour profiter du soleil. Boîte automatique.",
			PricePerDay: 15000,
			Address:     "20 Promenade des Anglais, 06000 Nice",
			Lat:         lat(43.6950),
			Lng:         lat(7.2650),
		},
	}
	for i := range seedVehicles {
		v := &seedVehicles[i]
		v.ID = uuid.NewString()
		v.OwnerID = owner.ID
		v.IsActive = true
		if err := vehicles.Create(ctx, v); err != nil {
			log.Fatal(err)
		}
	}

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")

	today := time.Now()
	day := func(offset int) string {
		return today.AddDate(0, 0, offset).Format(domain.DateLayout)
	}

	seedBookings := []struct {
		vehicle  int
		customer int
		start    int
		end      int
		status   domain.BookingStatus
	}{
		{0, 0, 3, 5, domain.BookingPending},
		{1, 1, 7, 10, domain.BookingConfirmed},
		{2, 2, -10, -8, domain.BookingCompleted},
		{4, 0, 14, 16, domain.BookingConfirmed},
	}
	for _, sb := range seedBookings {
		v := seedVehicles[sb.vehicle]
		start, end := day(sb.start), day(sb.end)
		days := int64(sb.end - sb.start)
		b := domain.Booking{
			VehicleID:  v.ID,
			CustomerID: customers[sb.customer].ID,
			OwnerID:    owner.ID,
			StartDate:  start,
			EndDate:    end,
			TotalPrice: days * v.PricePerDay,
			Status:     domain.BookingPending,
		}
		if err := bookings.CreateWithSlot(ctx, &b); err != nil {
			log.Fatal(err)
		}
		if sb.status != domain.BookingPending {
			if err := bookings.UpdateStatus(ctx, &b, sb.status); err != nil {
				log.Fatal(err)
			}
		}
	}

	// Owner blocks the utilitaire for maintenance next week
	if err := slots.AddSlot(ctx, &domain.AvailabilitySlot{
		VehicleID: seedVehicles[3].ID,
		StartDate: day(6),
		EndDate:   day(8),
		Reason:    domain.SlotBlocked,
	}); err != nil {
		log.Fatal(err)
	}

	log.Println("Seed completed!")
	log.Println("Test accounts:")
	log.Println("Owner:     marie@autoloc.fr / owner123")
	log.Println("Customers: pierre@gmail.com, sophie@orange.fr, lucas@free.fr / client123")
}
