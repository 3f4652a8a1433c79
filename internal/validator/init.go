package validator

import (
	"ctchen222/tictactoe-console/internal/game"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	// Initialize validation
	validate = validator.New(validator.WithRequiredStructEnabled())

	// "playermark" accepts only X or O.
	if err := validate.RegisterValidation("playermark", func(fl validator.FieldLevel) bool {
		mark := game.PlayerMark(fl.Field().String())
		return mark == game.PlayerX || mark == game.PlayerO
	}); err != nil {
		panic(err)
	}
}

func GetValidator() *validator.Validate {
	return validate
}
