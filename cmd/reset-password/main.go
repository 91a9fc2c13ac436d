package main

import (
	"flag"
	"log"

	"go-cafe-pos/internal/model"
	"go-cafe-pos/pkg/database"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	correo := flag.String("correo", "admin@cafeteria.local", "correo del usuario")
	password := flag.String("password", "admin123", "nueva contraseña")
	flag.Parse()

	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	// 2. Setup Database
	db := database.ConnectDB()

	// 3. Find user
	var usuario model.Usuario
	if err := db.Where("correo = ?", *correo).First(&usuario).Error; err != nil {
		log.Fatalf("❌ User %s not found in database: %v", *correo, err)
	}

	// 4. Hash new password
	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("❌ Failed to hash password: %v", err)
	}

	// 5. Update, rotating the token version so open sessions drop
	if err := db.Model(&usuario).Updates(map[string]interface{}{
		"password":      string(hashed),
		"token_version": "",
	}).Error; err != nil {
		log.Fatalf("❌ Failed to update password in DB: %v", err)
	}

	log.Printf("✅ Success! Password for %s has been reset", *correo)
}
