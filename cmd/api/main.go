package main

import (
	_ "certificados_xpto/docs"
	"certificados_xpto/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Certificados Payment API
// @version         1.0
// @description     Payment orchestration for the digital certificate storefront (PIX, boleto and credit card via Click2Pay).

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /api

func main() {
	routes.Run()
}
