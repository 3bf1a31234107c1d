package dto

import (
	"errors"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/SscSPs/financial_reports_app/internal/core/domain"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators adds the custom binding tags used by the request DTOs to
// gin's validator engine. Safe to call more than once.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		registerErr = v.RegisterValidation("viewmode", validateViewMode)
	})
	return registerErr
}

func validateViewMode(fl validator.FieldLevel) bool {
	_, err := domain.ParseViewMode(fl.Field().String())
	return err == nil
}
