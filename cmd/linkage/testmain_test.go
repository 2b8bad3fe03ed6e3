package main

import (
	"os"
	"testing"

	"github.com/joho/godotenv"
)

// TestMain подхватывает .env, если он есть (в CI его нет).
func TestMain(m *testing.M) {
	_ = godotenv.Load()
	os.Exit(m.Run())
}
