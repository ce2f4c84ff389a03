package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var once sync.Once

// Config lê uma variável do ambiente (.env carregado uma única vez)
func Config(key string) string {
	once.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("arquivo .env não encontrado, usando variáveis do sistema")
		}
	})
	return os.Getenv(key)
}
