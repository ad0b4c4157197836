package utils

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorInstance *validator.Validate
	validatorOnce     sync.Once
)

// Validate runs struct-tag validation on v.
func Validate(v any) error {
	validatorOnce.Do(func() {
		validatorInstance = validator.New()
	})

	return validatorInstance.Struct(v)
}
