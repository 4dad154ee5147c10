package model

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// Validate checks the quote input: discount in [0,100], non-negative day
// counts and non-empty categories.
func (q QuoteData) Validate() error {
	return check("quote", q)
}

// Validate checks the deck input: known project type and language, and
// every image has a file name and a tag.
func (p ProjectContent) Validate() error {
	return check("project content", p)
}

func check(what string, v any) error {
	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("invalid %s: %w", what, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("invalid %s: %s: %w", what, strings.Join(msgs, ", "), err)
}
