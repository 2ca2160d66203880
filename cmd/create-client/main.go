package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/config"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/database"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// create-client registers an operator user and an OAuth client against DB_URI
func main() {
	role := flag.String("role", models.RoleAdmin, "User role (admin or user)")
	name := flag.String("name", "", "Client name (defaults to 'Operator <role> Client')")
	scopes := flag.String("scopes", "read write", "Space-separated scopes granted to the client")
	flag.Parse()

	if *role != models.RoleAdmin && *role != models.RoleUser {
		log.Fatalf("Unsupported role %q", *role)
	}
	if *name == "" {
		*name = fmt.Sprintf("Operator %s Client", *role)
	}

	_ = godotenv.Load()
	log.SetFormatter(&log.JSONFormatter{})

	conf, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	db, err := database.Open(conf.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("Failed to migrate database")
	}

	ctx := context.Background()
	email := fmt.Sprintf("%s@pizza.com", *role)
	user, created, err := services.NewUserService(db).GetOrCreateUser(ctx, email, fmt.Sprintf("%s User", *role), *role)
	if err != nil {
		log.WithError(err).Fatal("Failed to get or create user")
	}
	log.WithFields(log.Fields{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"created": created,
	}).Info("Operator user ready")

	client, secret, err := services.NewClientService(db).CreateClient(ctx, user.ID, services.NewClientRequest{
		Name:   *name,
		Domain: "http://localhost",
		Scopes: *scopes,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to create client")
	}

	fmt.Printf("OAuth client created for role '%s'\n", user.Role)
	fmt.Printf("Client ID: %s\n", client.ID)
	fmt.Printf("Client Secret: %s\n", secret)
	fmt.Println("\nThe secret is not stored in clear text, keep it now. Request a token with:")
	fmt.Printf("curl -X POST http://%s/oauth/token \\\n", conf.Address())
	fmt.Printf("  -d 'grant_type=client_credentials' \\\n")
	fmt.Printf("  -d 'client_id=%s' \\\n", client.ID)
	fmt.Printf("  -d 'client_secret=%s'\n", secret)
}
