// cmd/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"bytebank-api/app"
	"bytebank-api/config"
	"bytebank-api/model"
	"bytebank-api/service"
)

// @title           Bytebank Ledger API
// @version         1.0
// @description     Account ledger of the Bytebank: accounts, deposits, withdrawals, transfers, statements and reports.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	adminToken := flag.Bool("admin-token", false, "print a signed admin token for the maintenance fee endpoint and exit")
	tokenTTL := flag.Duration("token-ttl", 24*time.Hour, "validity of the token printed by -admin-token")
	flag.Parse()

	if *adminToken {
		config.LoadConfig(".")
		token, err := service.GenerateJWT("bytebank-cli", model.RoleAdmin, *tokenTTL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not generate token: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(token)
		return
	}

	app.Run()
}
