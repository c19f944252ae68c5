// Command chat is a local REPL over the advisory engine, talking straight
// to the embedded database without the HTTP layer.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"finbot/internal/advisor"
	"finbot/internal/config"
	"finbot/internal/database"
	apperrors "finbot/internal/errors"
	"finbot/internal/logger"
	"finbot/internal/models"
	"finbot/internal/services"
)

// localEmail identifies the implicit single user of the local REPL.
const localEmail = "local@finbot"

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbManager, err := database.NewManager(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	db := dbManager.DB()
	userService := services.NewUserService(db)
	transactionService := services.NewTransactionService(db)
	goalService := services.NewGoalService(db)
	budgetService := services.NewBudgetService(db)
	gateway := services.NewFinanceGateway(transactionService, goalService)

	user, err := localUser(userService)
	if err != nil {
		return err
	}

	adv := advisor.New(gateway, transactionService, goalService, budgetService, advisor.Options{
		GeminiAPIKey: appConfig.GeminiAPIKey,
		GeminiModel:  appConfig.GeminiModel,
	})

	fmt.Println("FinBot — digite sua mensagem ('sair' para encerrar)")
	scanner := bufio.NewScanner(os.Stdin)
	ctx := context.Background()

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}
		if strings.EqualFold(message, "sair") {
			fmt.Println("Até logo! 👋")
			break
		}
		fmt.Println(adv.Respond(ctx, user.ID, message))
		fmt.Println()
	}

	return scanner.Err()
}

// localUser finds or creates the REPL's single implicit user.
func localUser(userService services.UserServicer) (*models.User, error) {
	user, err := userService.GetUserByEmail(localEmail)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}
	return userService.CreateUser(localEmail, "local-only-password", "Local")
}
