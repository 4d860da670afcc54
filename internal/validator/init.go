package validator

import (
	"ctchen222/tictactoe-cli/internal/bot"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	// Initialize validation
	validate = validator.New(validator.WithRequiredStructEnabled())

	// difficulty accepts any name bot.ParseDifficulty understands.
	if err := validate.RegisterValidation("difficulty", validateDifficulty); err != nil {
		panic(err)
	}
}

func validateDifficulty(fl validator.FieldLevel) bool {
	_, err := bot.ParseDifficulty(fl.Field().String())
	return err == nil
}

func GetValidator() *validator.Validate {
	return validate
}
